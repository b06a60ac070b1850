package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPutBit(t *testing.T) {
	b := NewBuffer()
	for i := 0; i < 12; i++ {
		b.PutBit(i%3 == 0)
	}
	if b.Len() != 12 {
		t.Fatalf("Len = %d, want 12", b.Len())
	}
	for i := 0; i < 12; i++ {
		if b.GetAt(i) != (i%3 == 0) {
			t.Errorf("GetAt(%d) = %v, want %v", i, b.GetAt(i), i%3 == 0)
		}
	}
}

func TestPutMSBFirst(t *testing.T) {
	b := NewBuffer()
	b.Put(0b101, 3)
	b.Put(0b0110, 4)
	// 101 0110 0 -> 0xAC
	assert.Equal(t, 7, b.Len())
	assert.Equal(t, []byte{0xAC}, b.Bytes())
}

func TestPutAdvancesByWidth(t *testing.T) {
	b := NewBuffer()
	widths := []int{1, 4, 8, 10, 13, 32}
	total := 0
	for _, w := range widths {
		b.Put(0, w)
		total += w
		assert.Equal(t, total, b.Len())
	}
}

func TestPutByteAlignment(t *testing.T) {
	b := NewBuffer()
	b.Put(0x4, 4) // byte mode indicator
	b.Put(1, 8)   // count
	b.Put('A', 8)
	assert.Equal(t, []byte{0x40, 0x14, 0x10}, b.Bytes())
}

func TestGetAtOutOfRange(t *testing.T) {
	b := NewBuffer()
	b.Put(0xFF, 8)
	assert.False(t, b.GetAt(8), "reads past the end are zero")
	assert.False(t, b.GetAt(-1))
}

func TestBytesPadsFinalByte(t *testing.T) {
	b := NewBuffer()
	b.PutBit(true)
	assert.Equal(t, []byte{0x80}, b.Bytes())
	assert.Equal(t, 1, b.SizeInBytes())
}
