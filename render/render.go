// Package render exposes a finished QR module grid as ASCII text, an
// HTML table, an SVG path, and GIF87a / PNG images.
package render

// Grid is the read-only view renderers consume.
type Grid interface {
	// ModuleCount returns the modules per side.
	ModuleCount() int

	// IsDark reports whether the module at (row, col) is dark.
	IsDark(row, col int) bool
}

// defaultMargin is the quiet zone width in modules.
const defaultMargin = 4

// options resolves the shared renderer parameters: cell size defaults
// to defCell, margin to the standard quiet zone.
func options(cellSize, margin, defCell int) (int, int) {
	if cellSize <= 0 {
		cellSize = defCell
	}
	if margin < 0 {
		margin = defaultMargin
	}
	return cellSize, margin
}

// darkAt reads the grid with the margin applied: coordinates are in
// modules relative to the top-left of the quiet zone, and everything
// outside the symbol is light.
func darkAt(g Grid, row, col, margin int) bool {
	row -= margin
	col -= margin
	n := g.ModuleCount()
	return row >= 0 && row < n && col >= 0 && col < n && g.IsDark(row, col)
}
