package qrcode

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"

	"github.com/NeaByteLab/QR-Generator/bitutil"
)

// Segment is one input chunk with its encoding mode. Segments are
// immutable values; validation of the content happens when the bits
// are written.
type Segment interface {
	// Mode returns the segment's encoding mode.
	Mode() Mode

	// CharCount returns the character count in mode units: Shift JIS
	// byte pairs for Kanji, characters for all other modes.
	CharCount() int

	// WriteBits emits the mode-specific payload bits.
	WriteBits(buf *bitutil.Buffer) error
}

// NewSegment creates a segment for the given mode. Byte segments
// encode the content as UTF-8; Kanji segments as Shift JIS.
func NewSegment(content string, mode Mode) (Segment, error) {
	switch mode {
	case ModeNumeric:
		return NewNumericSegment(content), nil
	case ModeAlphanumeric:
		return NewAlphanumericSegment(content), nil
	case ModeByte:
		return NewByteSegment(content), nil
	case ModeKanji:
		return NewKanjiSegment(content), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrBadMode, mode)
}

// alphanumericTable maps ASCII values to alphanumeric codes.
var alphanumericTable = [128]int{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	36, -1, -1, -1, 37, 38, -1, -1, -1, -1, 39, 40, -1, 41, 42, 43,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 44, -1, -1, -1, -1, -1,
	-1, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// alphanumericCode returns the alphanumeric code for a character, or -1.
func alphanumericCode(c byte) int {
	if c < 128 {
		return alphanumericTable[c]
	}
	return -1
}

// ChooseMode determines the densest encoding mode for the content.
func ChooseMode(content string) Mode {
	hasNumeric := false
	hasAlphanumeric := false
	for i := 0; i < len(content); i++ {
		c := content[i]
		if c >= '0' && c <= '9' {
			hasNumeric = true
		} else if alphanumericCode(c) != -1 {
			hasAlphanumeric = true
		} else {
			return ModeByte
		}
	}
	if hasAlphanumeric {
		return ModeAlphanumeric
	}
	if hasNumeric {
		return ModeNumeric
	}
	return ModeByte
}

type numericSegment struct {
	content string
}

// NewNumericSegment creates a segment for digits 0-9.
func NewNumericSegment(content string) Segment {
	return &numericSegment{content: content}
}

func (s *numericSegment) Mode() Mode     { return ModeNumeric }
func (s *numericSegment) CharCount() int { return len(s.content) }

// WriteBits emits runs of 3 digits as 10-bit integers; a 2-digit tail
// emits 7 bits, a 1-digit tail 4 bits.
func (s *numericSegment) WriteBits(buf *bitutil.Buffer) error {
	for i := 0; i < len(s.content); i++ {
		if s.content[i] < '0' || s.content[i] > '9' {
			return fmt.Errorf("%w: %v mode, offset %d", ErrBadCharacter, ModeNumeric, i)
		}
	}
	i := 0
	for i+3 <= len(s.content) {
		buf.Put(uint32(digits(s.content[i:i+3])), 10)
		i += 3
	}
	switch len(s.content) - i {
	case 2:
		buf.Put(uint32(digits(s.content[i:i+2])), 7)
	case 1:
		buf.Put(uint32(digits(s.content[i:i+1])), 4)
	}
	return nil
}

func digits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

type alphanumericSegment struct {
	content string
}

// NewAlphanumericSegment creates a segment for the 45-symbol
// alphanumeric alphabet (0-9, A-Z, space, $%*+-./:).
func NewAlphanumericSegment(content string) Segment {
	return &alphanumericSegment{content: content}
}

func (s *alphanumericSegment) Mode() Mode     { return ModeAlphanumeric }
func (s *alphanumericSegment) CharCount() int { return len(s.content) }

// WriteBits emits symbol pairs as 45*first+second in 11 bits; a single
// trailing symbol emits 6 bits.
func (s *alphanumericSegment) WriteBits(buf *bitutil.Buffer) error {
	i := 0
	for i+1 < len(s.content) {
		first := alphanumericCode(s.content[i])
		if first == -1 {
			return fmt.Errorf("%w: %v mode, offset %d", ErrBadCharacter, ModeAlphanumeric, i)
		}
		second := alphanumericCode(s.content[i+1])
		if second == -1 {
			return fmt.Errorf("%w: %v mode, offset %d", ErrBadCharacter, ModeAlphanumeric, i+1)
		}
		buf.Put(uint32(first*45+second), 11)
		i += 2
	}
	if i < len(s.content) {
		code := alphanumericCode(s.content[i])
		if code == -1 {
			return fmt.Errorf("%w: %v mode, offset %d", ErrBadCharacter, ModeAlphanumeric, i)
		}
		buf.Put(uint32(code), 6)
	}
	return nil
}

type byteSegment struct {
	data []byte
	err  error
}

// NewByteSegment creates a segment holding the UTF-8 bytes of content.
func NewByteSegment(content string) Segment {
	return &byteSegment{data: []byte(content)}
}

// NewByteSegmentEncoded creates a byte segment whose content is
// converted with the given encoder before emission.
func NewByteSegmentEncoded(content string, enc *encoding.Encoder) Segment {
	data, err := enc.Bytes([]byte(content))
	return &byteSegment{data: data, err: err}
}

func (s *byteSegment) Mode() Mode     { return ModeByte }
func (s *byteSegment) CharCount() int { return len(s.data) }

func (s *byteSegment) WriteBits(buf *bitutil.Buffer) error {
	if s.err != nil {
		return fmt.Errorf("%w: %v mode: %v", ErrBadCharacter, ModeByte, s.err)
	}
	for _, b := range s.data {
		buf.Put(uint32(b), 8)
	}
	return nil
}

type kanjiSegment struct {
	data []byte
	err  error
}

// NewKanjiSegment creates a segment holding the Shift JIS encoding of
// content. The byte length must be even and every byte pair must fall
// in one of the two Shift JIS double-byte ranges.
func NewKanjiSegment(content string) Segment {
	return NewKanjiSegmentEncoded(content, japanese.ShiftJIS.NewEncoder())
}

// NewKanjiSegmentEncoded creates a Kanji segment using the given
// encoder instead of the default Shift JIS one.
func NewKanjiSegmentEncoded(content string, enc *encoding.Encoder) Segment {
	data, err := enc.Bytes([]byte(content))
	return &kanjiSegment{data: data, err: err}
}

func (s *kanjiSegment) Mode() Mode     { return ModeKanji }
func (s *kanjiSegment) CharCount() int { return len(s.data) / 2 }

// WriteBits emits each 16-bit big-endian Shift JIS pair as a 13-bit
// value: rebase into the contiguous 0xC0-wide rows, then hi*0xC0+lo.
func (s *kanjiSegment) WriteBits(buf *bitutil.Buffer) error {
	if s.err != nil {
		return fmt.Errorf("%w: %v", ErrBadKanji, s.err)
	}
	if len(s.data)%2 != 0 {
		return fmt.Errorf("%w: odd byte length %d", ErrBadKanji, len(s.data))
	}
	for i := 0; i < len(s.data); i += 2 {
		p := int(s.data[i])<<8 | int(s.data[i+1])
		switch {
		case p >= 0x8140 && p <= 0x9FFC:
			p -= 0x8140
		case p >= 0xE040 && p <= 0xEBBF:
			p -= 0xC140
		default:
			return fmt.Errorf("%w: code 0x%04X at offset %d", ErrBadKanji, p, i)
		}
		buf.Put(uint32((p>>8)*0xC0+(p&0xFF)), 13)
	}
	return nil
}
