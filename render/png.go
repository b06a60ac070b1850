package render

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"hash/crc32"
	"image/color"
)

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// PNG renders the grid as a PNG image: 8-bit grayscale when no colours
// are given, 8-bit RGB when both a foreground and a background colour
// are provided. Cell size defaults to 2 pixels, a negative margin to
// the standard quiet zone.
func PNG(g Grid, cellSize, margin int, fg, bg *color.RGBA) ([]byte, error) {
	cellSize, margin = options(cellSize, margin, 2)
	side := (g.ModuleCount() + 2*margin) * cellSize

	rgb := fg != nil && bg != nil
	channels := 1
	colorType := byte(0)
	if rgb {
		channels = 3
		colorType = 2
	}

	// Scanlines: filter byte 0 followed by the row pixels.
	raw := make([]byte, 0, side*(1+side*channels))
	for y := 0; y < side; y++ {
		raw = append(raw, 0)
		for x := 0; x < side; x++ {
			dark := darkAt(g, y/cellSize, x/cellSize, margin)
			if rgb {
				c := bg
				if dark {
					c = fg
				}
				raw = append(raw, c.R, c.G, c.B)
			} else if dark {
				raw = append(raw, 0x00)
			} else {
				raw = append(raw, 0xFF)
			}
		}
	}

	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(side))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(side))
	ihdr[8] = 8 // bit depth
	ihdr[9] = colorType
	ihdr[10] = 0 // deflate
	ihdr[11] = 0 // adaptive filtering
	ihdr[12] = 0 // no interlace

	var buf bytes.Buffer
	buf.Write(pngSignature)
	writeChunk(&buf, "IHDR", ihdr)
	writeChunk(&buf, "IDAT", idat.Bytes())
	writeChunk(&buf, "IEND", nil)
	return buf.Bytes(), nil
}

// PNGDataURL renders the grid as a base64 PNG data URL.
func PNGDataURL(g Grid, cellSize, margin int, fg, bg *color.RGBA) (string, error) {
	data, err := PNG(g, cellSize, margin, fg, bg)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// writeChunk frames a PNG chunk: big-endian length, 4-byte type, data,
// CRC-32 over type and data.
func writeChunk(buf *bytes.Buffer, name string, data []byte) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(len(data)))
	buf.Write(tmp[:])
	start := buf.Len()
	buf.WriteString(name)
	buf.Write(data)
	binary.BigEndian.PutUint32(tmp[:], crc32.ChecksumIEEE(buf.Bytes()[start:]))
	buf.Write(tmp[:])
}
