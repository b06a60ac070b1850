package render

import "strings"

// ASCII renders the grid as terminal text. At cell size 2 and above
// every module is cellSize pairs of block characters wide and cellSize
// lines tall. Cell size 0 defaults to 1, which switches to half-block
// compression: one character per module, two module rows per line.
// A negative margin selects the standard quiet zone.
func ASCII(g Grid, cellSize, margin int) string {
	cellSize, margin = options(cellSize, margin, 1)
	if cellSize < 2 {
		return halfBlockASCII(g, margin)
	}

	total := g.ModuleCount() + 2*margin
	var sb strings.Builder
	for row := 0; row < total; row++ {
		var line strings.Builder
		for col := 0; col < total; col++ {
			cell := "  "
			if darkAt(g, row, col, margin) {
				cell = "██"
			}
			line.WriteString(strings.Repeat(cell, cellSize))
		}
		for i := 0; i < cellSize; i++ {
			sb.WriteString(line.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// halfBlockASCII maps two module rows onto one text line using the
// upper/lower half block characters.
func halfBlockASCII(g Grid, margin int) string {
	total := g.ModuleCount() + 2*margin
	var sb strings.Builder
	for row := 0; row < total; row += 2 {
		for col := 0; col < total; col++ {
			up := darkAt(g, row, col, margin)
			down := row+1 < total && darkAt(g, row+1, col, margin)
			switch {
			case up && down:
				sb.WriteRune('█')
			case up:
				sb.WriteRune('▀')
			case down:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
