package render

import (
	"bytes"
	"encoding/base64"
)

// GIF renders the grid as a GIF87a image over the two-colour palette
// black, white. Cell size defaults to 2 pixels, a negative margin to
// the standard quiet zone.
func GIF(g Grid, cellSize, margin int) []byte {
	cellSize, margin = options(cellSize, margin, 2)
	side := (g.ModuleCount() + 2*margin) * cellSize

	// Palette index per pixel: 0 black, 1 white.
	pixels := make([]byte, side*side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if !darkAt(g, y/cellSize, x/cellSize, margin) {
				pixels[y*side+x] = 1
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString("GIF87a")

	// Logical screen descriptor: global colour table present, size
	// bits 0 (a 2-entry palette).
	writeUint16(&buf, side)
	writeUint16(&buf, side)
	buf.WriteByte(0x80)
	buf.WriteByte(0x00)
	buf.WriteByte(0x00)
	buf.Write([]byte{0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF})

	// Image descriptor, no local colour table.
	buf.WriteByte(0x2C)
	writeUint16(&buf, 0)
	writeUint16(&buf, 0)
	writeUint16(&buf, side)
	writeUint16(&buf, side)
	buf.WriteByte(0x00)

	buf.WriteByte(lzwMinCodeSize)
	for data := compressLZW(pixels); len(data) > 0; {
		n := len(data)
		if n > 255 {
			n = 255
		}
		buf.WriteByte(byte(n))
		buf.Write(data[:n])
		data = data[n:]
	}
	buf.WriteByte(0x00)
	buf.WriteByte(';')

	return buf.Bytes()
}

// GIFDataURL renders the grid as a base64 GIF data URL.
func GIFDataURL(g Grid, cellSize, margin int) string {
	return "data:image/gif;base64," + base64.StdEncoding.EncodeToString(GIF(g, cellSize, margin))
}

func writeUint16(buf *bytes.Buffer, v int) {
	buf.WriteByte(byte(v))
	buf.WriteByte(byte(v >> 8))
}

const (
	lzwMinCodeSize = 2
	lzwClearCode   = 1 << lzwMinCodeSize
	lzwEndCode     = lzwClearCode + 1
	lzwMaxEntries  = 0xFFF
)

// compressLZW encodes the pixel indices as raster LZW codes, packed
// LSB-first. The dictionary is seeded with the pixel codes 0..1 plus
// the clear and end codes; the code width starts at 3 bits and grows
// by one whenever the dictionary size reaches 1<<width.
func compressLZW(pixels []byte) []byte {
	table := map[string]int{
		"\x00": 0,
		"\x01": 1,
	}
	nextCode := lzwEndCode + 1
	width := lzwMinCodeSize + 1

	var out lzwBitWriter
	out.write(lzwClearCode, width)

	prefix := string(pixels[:1])
	for _, p := range pixels[1:] {
		extended := prefix + string(p)
		if _, ok := table[extended]; ok {
			prefix = extended
			continue
		}
		out.write(table[prefix], width)
		if nextCode < lzwMaxEntries {
			if nextCode == 1<<width {
				width++
			}
			table[extended] = nextCode
			nextCode++
		}
		prefix = string(p)
	}
	out.write(table[prefix], width)
	out.write(lzwEndCode, width)
	out.flush()
	return out.buf.Bytes()
}

// lzwBitWriter packs variable-width codes LSB-first into bytes.
type lzwBitWriter struct {
	buf  bytes.Buffer
	bits int
	n    int
}

func (w *lzwBitWriter) write(code, width int) {
	w.bits |= code << uint(w.n)
	w.n += width
	for w.n >= 8 {
		w.buf.WriteByte(byte(w.bits))
		w.bits >>= 8
		w.n -= 8
	}
}

func (w *lzwBitWriter) flush() {
	if w.n > 0 {
		w.buf.WriteByte(byte(w.bits))
		w.bits = 0
		w.n = 0
	}
}
