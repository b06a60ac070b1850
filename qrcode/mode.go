package qrcode

import "fmt"

// Mode represents a QR code data encoding mode. The constant values are
// the 4-bit mode indicators embedded in the bit stream.
type Mode int

const (
	ModeNumeric      Mode = 0x01
	ModeAlphanumeric Mode = 0x02
	ModeByte         Mode = 0x04
	ModeKanji        Mode = 0x08
)

// characterCountBits contains [v1-9, v10-26, v27-40] length-field widths.
var characterCountBits = map[Mode][3]int{
	ModeNumeric:      {10, 12, 14},
	ModeAlphanumeric: {9, 11, 13},
	ModeByte:         {8, 16, 16},
	ModeKanji:        {8, 10, 12},
}

// Bits returns the 4-bit encoding of this mode.
func (m Mode) Bits() int {
	return int(m)
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "Numeric"
	case ModeAlphanumeric:
		return "Alphanumeric"
	case ModeByte:
		return "Byte"
	case ModeKanji:
		return "Kanji"
	}
	return "?"
}

// CharacterCountBits returns the number of bits used to encode the
// character count for this mode in the given version.
func (m Mode) CharacterCountBits(version int) int {
	var offset int
	if version <= 9 {
		offset = 0
	} else if version <= 26 {
		offset = 1
	} else {
		offset = 2
	}
	return characterCountBits[m][offset]
}

// ParseMode returns the Mode for its name.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "Numeric":
		return ModeNumeric, nil
	case "Alphanumeric":
		return ModeAlphanumeric, nil
	case "Byte":
		return ModeByte, nil
	case "Kanji":
		return ModeKanji, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMode, name)
}
