package render

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"hash/crc32"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNGSignatureAndChunks(t *testing.T) {
	g := newFakeGrid(
		"10",
		"01",
	)
	data, err := PNG(g, 2, 1, nil, nil)
	require.NoError(t, err)

	require.Greater(t, len(data), 45)
	assert.Equal(t, pngSignature, data[:8])

	// IHDR: 13 bytes, 8x8 pixels, bit depth 8, grayscale.
	assert.Equal(t, uint32(13), binary.BigEndian.Uint32(data[8:12]))
	assert.Equal(t, "IHDR", string(data[12:16]))
	assert.Equal(t, uint32(8), binary.BigEndian.Uint32(data[16:20]))
	assert.Equal(t, uint32(8), binary.BigEndian.Uint32(data[20:24]))
	assert.Equal(t, byte(8), data[24])
	assert.Equal(t, byte(0), data[25])

	// IHDR CRC covers type || data.
	wantCRC := crc32.ChecksumIEEE(data[12:29])
	assert.Equal(t, wantCRC, binary.BigEndian.Uint32(data[29:33]))

	// zlib header 78 9C at the start of IDAT data.
	assert.Equal(t, "IDAT", string(data[37:41]))
	assert.Equal(t, byte(0x78), data[41])
	assert.Equal(t, byte(0x9C), data[42])

	// The stream ends with an empty IEND chunk.
	tail := data[len(data)-12:]
	assert.Equal(t, uint32(0), binary.BigEndian.Uint32(tail[:4]))
	assert.Equal(t, "IEND", string(tail[4:8]))
}

func TestPNGDecodesGrayscale(t *testing.T) {
	g := newFakeGrid(
		"10",
		"01",
	)
	data, err := PNG(g, 3, 1, nil, nil)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	side := (2 + 2*1) * 3
	assert.Equal(t, side, img.Bounds().Dx())
	assert.Equal(t, side, img.Bounds().Dy())

	gray := func(x, y int) uint32 {
		r, _, _, _ := img.At(x, y).RGBA()
		return r >> 8
	}
	assert.Equal(t, uint32(0xFF), gray(0, 0), "margin is white")
	assert.Equal(t, uint32(0x00), gray(3, 3), "module (0,0) is black")
	assert.Equal(t, uint32(0xFF), gray(6, 3), "module (0,1) is white")
	assert.Equal(t, uint32(0x00), gray(6, 6), "module (1,1) is black")
}

func TestPNGDecodesRGB(t *testing.T) {
	g := newFakeGrid("1")
	fg := &color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}
	bg := &color.RGBA{R: 0xF0, G: 0xE0, B: 0xD0, A: 0xFF}
	data, err := PNG(g, 1, 1, fg, bg)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	r, gg, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0x10), r>>8)
	assert.Equal(t, uint32(0x20), gg>>8)
	assert.Equal(t, uint32(0x30), b>>8)

	r, gg, b, _ = img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xF0), r>>8)
	assert.Equal(t, uint32(0xE0), gg>>8)
	assert.Equal(t, uint32(0xD0), b>>8)
}

func TestPNGDataURL(t *testing.T) {
	g := newFakeGrid("1")
	url, err := PNGDataURL(g, 2, 0, nil, nil)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "data:image/png;base64,iVBORw0KGgo"),
		"got %q", url[:min(len(url), 40)])
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, pngSignature, data[:8])
}
