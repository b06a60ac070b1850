package qrgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelloWorldAlphanumeric(t *testing.T) {
	code, err := New(1, "H")
	require.NoError(t, err)
	require.NoError(t, code.AddDataMode("HELLO WORLD", "Alphanumeric"))
	require.NoError(t, code.Make())
	assert.Equal(t, 21, code.ModuleCount())
	assert.Equal(t, 1, code.Version())
}

func TestAutoVersionSelection(t *testing.T) {
	code, err := New(0, "L")
	require.NoError(t, err)
	require.NoError(t, code.AddData("https://neabyte.com/"))
	require.NoError(t, code.Make())
	assert.GreaterOrEqual(t, code.Version(), 2)
	assert.Equal(t, 17+4*code.Version(), code.ModuleCount())

	url, err := code.PNGDataURL(0, -1)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,iVBORw0KGgo"),
		"got prefix %q", url[:40])
}

func TestBadErrorLevel(t *testing.T) {
	_, err := New(1, "X")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadErrorLevel))
}

func TestBadMode(t *testing.T) {
	code, err := New(1, "L")
	require.NoError(t, err)
	err = code.AddDataMode("123", "Decimal")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadMode))
}

func TestBadCharacterSurfacesAtMake(t *testing.T) {
	code, err := New(1, "L")
	require.NoError(t, err)
	require.NoError(t, code.AddDataMode("12a", "Numeric"))
	err = code.Make()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadCharacter))
	assert.Contains(t, err.Error(), "offset 2")
}

func TestCodeOverflow(t *testing.T) {
	code, err := New(1, "H")
	require.NoError(t, err)
	require.NoError(t, code.AddData(strings.Repeat("x", 100)))
	err = code.Make()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCodeOverflow))
}

func TestReadBeforeMakePanics(t *testing.T) {
	code, err := New(1, "L")
	require.NoError(t, err)
	assert.Panics(t, func() { code.ModuleCount() })
	assert.Panics(t, func() { code.IsDark(0, 0) })
}

func TestIsDarkOutOfRangePanics(t *testing.T) {
	code, err := New(1, "L")
	require.NoError(t, err)
	require.NoError(t, code.AddData("A"))
	require.NoError(t, code.Make())
	assert.Panics(t, func() { code.IsDark(-1, 0) })
	assert.Panics(t, func() { code.IsDark(0, 21) })
	assert.NotPanics(t, func() { code.IsDark(20, 20) })
}

func TestMakeIdempotent(t *testing.T) {
	code, err := New(2, "M")
	require.NoError(t, err)
	require.NoError(t, code.AddData("idempotent"))
	require.NoError(t, code.Make())

	n := code.ModuleCount()
	first := make([]bool, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			first[r*n+c] = code.IsDark(r, c)
		}
	}

	require.NoError(t, code.Make())
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if code.IsDark(r, c) != first[r*n+c] {
				t.Fatalf("grid changed at (%d,%d) after second Make", r, c)
			}
		}
	}
}

func TestAddDataInvalidatesCache(t *testing.T) {
	code, err := New(0, "L")
	require.NoError(t, err)
	require.NoError(t, code.AddData("A"))
	require.NoError(t, code.Make())
	assert.Equal(t, 1, code.Version())

	require.NoError(t, code.AddData(strings.Repeat("B", 40)))
	require.NoError(t, code.Make())
	assert.Greater(t, code.Version(), 1, "auto version grows with appended data")
}

func TestAddDataAuto(t *testing.T) {
	code, err := New(0, "Q")
	require.NoError(t, err)
	require.NoError(t, code.AddDataAuto("HELLO WORLD"))
	require.NoError(t, code.Make())
	assert.Equal(t, 21, code.ModuleCount())
}

func TestKanjiEndToEnd(t *testing.T) {
	code, err := New(0, "M")
	require.NoError(t, err)
	require.NoError(t, code.AddDataMode("点茗", "Kanji"))
	require.NoError(t, code.Make())
	assert.Equal(t, 21, code.ModuleCount())
}

func TestVersionOutOfRange(t *testing.T) {
	_, err := New(41, "L")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = New(-1, "L")
	require.Error(t, err)
}
