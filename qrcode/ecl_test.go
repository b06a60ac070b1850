package qrcode

import (
	"errors"
	"testing"
)

func TestErrorCorrectionLevelBits(t *testing.T) {
	// The format-information encoding of the levels is fixed by the
	// standard and XOR-ed into the 15-bit format bits.
	tests := []struct {
		level ErrorCorrectionLevel
		bits  int
	}{
		{ECLevelL, 0x01},
		{ECLevelM, 0x00},
		{ECLevelQ, 0x03},
		{ECLevelH, 0x02},
	}
	for _, tt := range tests {
		if got := tt.level.Bits(); got != tt.bits {
			t.Errorf("%v.Bits() = %#x, want %#x", tt.level, got, tt.bits)
		}
	}
}

func TestParseErrorCorrectionLevel(t *testing.T) {
	for _, name := range []string{"L", "M", "Q", "H"} {
		level, err := ParseErrorCorrectionLevel(name)
		if err != nil {
			t.Fatalf("ParseErrorCorrectionLevel(%q): %v", name, err)
		}
		if level.String() != name {
			t.Errorf("round trip %q = %q", name, level.String())
		}
	}
	if _, err := ParseErrorCorrectionLevel("l"); !errors.Is(err, ErrBadErrorLevel) {
		t.Errorf("lowercase level: err = %v, want ErrBadErrorLevel", err)
	}
}
