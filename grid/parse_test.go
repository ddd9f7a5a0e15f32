package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/grid"
)

// TestParse_Runes parses a small block and checks dimensions and contents.
func TestParse_Runes(t *testing.T) {
	g, err := grid.Parse("\n...\n.S.\n...\n", grid.Runes)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 'S', g.At(grid.Point{X: 1, Y: 1}))
}

// TestParse_CRLF ensures Windows line endings do not leak into cells.
func TestParse_CRLF(t *testing.T) {
	g, err := grid.Parse("12\r\n34\r\n", grid.Digits)
	require.NoError(t, err)
	assert.Equal(t, "12\n34\n", g.Render(func(v int) rune { return rune('0' + v) }))
}

// TestParse_Malformed checks that bad runes, ragged rows and empty text
// surface as ErrMalformedInput.
func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		cause error
	}{
		{"BadDigit", "12\n3x", nil},
		{"Ragged", "123\n45", grid.ErrNonRectangular},
		{"Empty", "\n\n", grid.ErrEmptyGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.text, grid.Digits)
			assert.ErrorIs(t, err, grid.ErrMalformedInput)
			if tc.cause != nil {
				assert.True(t, errors.Is(err, tc.cause), "want cause %v, got %v", tc.cause, err)
			}
		})
	}
}

// TestParse_NilDecoder rejects a missing decoder up front.
func TestParse_NilDecoder(t *testing.T) {
	_, err := grid.Parse[int]("1", nil)
	assert.ErrorIs(t, err, grid.ErrMalformedInput)
}
