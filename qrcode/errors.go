package qrcode

import "errors"

var (
	// ErrBadErrorLevel is returned for an unknown error correction level name.
	ErrBadErrorLevel = errors.New("qrcode: bad error correction level")

	// ErrBadMode is returned for an unknown encoding mode name.
	ErrBadMode = errors.New("qrcode: bad encoding mode")

	// ErrBadCharacter is returned when input contains a character that is
	// not legal for the segment's mode.
	ErrBadCharacter = errors.New("qrcode: bad character")

	// ErrBadKanji is returned when Kanji input has an odd Shift JIS byte
	// length or a code point outside both Shift JIS ranges.
	ErrBadKanji = errors.New("qrcode: bad kanji")

	// ErrCodeOverflow is returned when the encoded segments do not fit the
	// chosen version.
	ErrCodeOverflow = errors.New("qrcode: code length overflow")

	// ErrOutOfRange reports a grid coordinate outside [0, N), or a read
	// before Make.
	ErrOutOfRange = errors.New("qrcode: out of range")
)
