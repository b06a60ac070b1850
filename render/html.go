package render

import (
	"fmt"
	"strings"
)

const tableStyle = "border-width: 0px; border-style: none; border-collapse: collapse; padding: 0px; margin: 0px;"

// HTMLTable renders the grid as a table with one cell per module and
// inline styles only. Cell size defaults to 2 pixels, a negative
// margin to the standard quiet zone.
func HTMLTable(g Grid, cellSize, margin int) string {
	cellSize, margin = options(cellSize, margin, 2)

	total := g.ModuleCount() + 2*margin
	var sb strings.Builder
	fmt.Fprintf(&sb, "<table style=\"%s\">", tableStyle)
	for row := 0; row < total; row++ {
		sb.WriteString("<tr>")
		for col := 0; col < total; col++ {
			color := "#ffffff"
			if darkAt(g, row, col, margin) {
				color = "#000000"
			}
			fmt.Fprintf(&sb,
				"<td style=\"%s width: %dpx; height: %dpx; background-color: %s;\"></td>",
				tableStyle, cellSize, cellSize, color)
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")
	return sb.String()
}
