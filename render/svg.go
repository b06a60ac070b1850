package render

import (
	"fmt"
	"strings"
)

// SVGPath returns the path-d string drawing every dark module as a
// closed square: "Mx,yls,0 0,s -s,0 0,-sz " with s = cellSize and
// (x, y) the top-left pixel of the module. The consumer wraps it in a
// <path d="..."> element.
func SVGPath(g Grid, cellSize, margin int) string {
	cellSize, margin = options(cellSize, margin, 2)

	n := g.ModuleCount()
	var sb strings.Builder
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !g.IsDark(row, col) {
				continue
			}
			x := (col + margin) * cellSize
			y := (row + margin) * cellSize
			fmt.Fprintf(&sb, "M%d,%dl%d,0 0,%d -%d,0 0,-%dz ",
				x, y, cellSize, cellSize, cellSize, cellSize)
		}
	}
	return sb.String()
}

// SVG wraps SVGPath in a minimal standalone document with a white
// background rectangle.
func SVG(g Grid, cellSize, margin int) string {
	cellSize, margin = options(cellSize, margin, 2)
	side := (g.ModuleCount() + 2*margin) * cellSize
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
		`<rect width="%d" height="%d" fill="#ffffff"/>`+
		`<path d="%s" fill="#000000"/></svg>`,
		side, side, side, side, side, side,
		strings.TrimRight(SVGPath(g, cellSize, margin), " "))
}
