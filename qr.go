// Package qrgen generates QR code symbols conforming to
// JIS X 0510:1999 / ISO/IEC 18004 and renders them as GIF, PNG, SVG
// path, ASCII text or an HTML table.
package qrgen

import (
	"fmt"

	"github.com/NeaByteLab/QR-Generator/qrcode"
	"github.com/NeaByteLab/QR-Generator/render"
)

// Errors reported by the symbol API. See the qrcode package for the
// full taxonomy.
var (
	ErrBadErrorLevel = qrcode.ErrBadErrorLevel
	ErrBadMode       = qrcode.ErrBadMode
	ErrBadCharacter  = qrcode.ErrBadCharacter
	ErrBadKanji      = qrcode.ErrBadKanji
	ErrCodeOverflow  = qrcode.ErrCodeOverflow
	ErrOutOfRange    = qrcode.ErrOutOfRange
)

// Code is a QR symbol under construction. Append segments with the
// AddData methods, finalise with Make, then read the module grid or
// hand it to a renderer. A Code is not safe for concurrent use.
type Code struct {
	requestedVersion int // 0 selects the smallest version that fits
	level            qrcode.ErrorCorrectionLevel
	segments         []qrcode.Segment

	version int // committed by Make
	mask    int
	data    []byte
	matrix  *qrcode.Matrix
}

// New creates a symbol. version 0 auto-selects the smallest version
// that holds the data; 1..40 force a version. level is one of
// "L", "M", "Q", "H".
func New(version int, level string) (*Code, error) {
	if version < 0 || version > 40 {
		return nil, fmt.Errorf("%w: version %d", ErrOutOfRange, version)
	}
	ecLevel, err := qrcode.ParseErrorCorrectionLevel(level)
	if err != nil {
		return nil, err
	}
	return &Code{requestedVersion: version, level: ecLevel}, nil
}

// AddData appends a Byte mode segment holding the UTF-8 bytes of text.
func (c *Code) AddData(text string) error {
	return c.AddDataMode(text, "Byte")
}

// AddDataMode appends a segment in the named mode: "Numeric",
// "Alphanumeric", "Byte" or "Kanji".
func (c *Code) AddDataMode(text, mode string) error {
	m, err := qrcode.ParseMode(mode)
	if err != nil {
		return err
	}
	seg, err := qrcode.NewSegment(text, m)
	if err != nil {
		return err
	}
	c.appendSegment(seg)
	return nil
}

// AddDataAuto appends a segment in the densest mode that can carry
// text: Numeric, Alphanumeric or Byte.
func (c *Code) AddDataAuto(text string) error {
	seg, err := qrcode.NewSegment(text, qrcode.ChooseMode(text))
	if err != nil {
		return err
	}
	c.appendSegment(seg)
	return nil
}

func (c *Code) appendSegment(seg qrcode.Segment) {
	c.segments = append(c.segments, seg)
	c.data = nil
	c.matrix = nil
}

// Make finalises the symbol: selects the version when auto, builds the
// interleaved codeword stream, and commits the grid with the best of
// the eight mask patterns. It must be called before any read. Calling
// Make again without appending data rebuilds an identical grid.
func (c *Code) Make() error {
	if c.data == nil {
		version := c.requestedVersion
		if version == 0 {
			v, err := qrcode.SmallestVersion(c.level, c.segments)
			if err != nil {
				return err
			}
			version = v
		}
		data, err := qrcode.CreateData(version, c.level, c.segments)
		if err != nil {
			return err
		}
		c.version = version
		c.data = data
	}
	c.matrix, c.mask = qrcode.Build(c.version, c.level, c.data)
	return nil
}

// ModuleCount returns the modules per side, 17 + 4*version. It panics
// with ErrOutOfRange if Make has not been called.
func (c *Code) ModuleCount() int {
	if c.matrix == nil {
		panic(fmt.Errorf("%w: read before Make", ErrOutOfRange))
	}
	return c.matrix.Size()
}

// IsDark reports whether the module at (row, col) is dark. It panics
// with ErrOutOfRange when the coordinate is outside [0, N) or Make has
// not been called.
func (c *Code) IsDark(row, col int) bool {
	n := c.ModuleCount()
	if row < 0 || row >= n || col < 0 || col >= n {
		panic(fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrOutOfRange, row, col, n, n))
	}
	return c.matrix.IsDark(row, col)
}

// Version returns the committed version after Make.
func (c *Code) Version() int {
	if c.matrix == nil {
		panic(fmt.Errorf("%w: read before Make", ErrOutOfRange))
	}
	return c.version
}

// MaskPattern returns the committed mask pattern index after Make.
func (c *Code) MaskPattern() int {
	if c.matrix == nil {
		panic(fmt.Errorf("%w: read before Make", ErrOutOfRange))
	}
	return c.mask
}

// ASCIIText renders the symbol as terminal text. See render.ASCII.
func (c *Code) ASCIIText(cellSize, margin int) string {
	return render.ASCII(c, cellSize, margin)
}

// HTMLTable renders the symbol as an HTML table. See render.HTMLTable.
func (c *Code) HTMLTable(cellSize, margin int) string {
	return render.HTMLTable(c, cellSize, margin)
}

// SVGPath returns the path-d string of the dark modules. See
// render.SVGPath.
func (c *Code) SVGPath(cellSize, margin int) string {
	return render.SVGPath(c, cellSize, margin)
}

// GIFDataURL renders the symbol as a GIF87a data URL. See
// render.GIFDataURL.
func (c *Code) GIFDataURL(cellSize, margin int) string {
	return render.GIFDataURL(c, cellSize, margin)
}

// PNGDataURL renders the symbol as a PNG data URL. See
// render.PNGDataURL.
func (c *Code) PNGDataURL(cellSize, margin int) (string, error) {
	return render.PNGDataURL(c, cellSize, margin, nil, nil)
}
