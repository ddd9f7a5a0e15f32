package grid

import (
	"fmt"
	"strings"
)

// Decoder converts a single input rune into a cell value.
type Decoder[T any] func(r rune) (T, error)

// Parse builds a Grid from a text block, one row per line.
// Leading and trailing blank lines are ignored and "\r\n" endings are accepted.
// Every decode failure or ragged line is reported as ErrMalformedInput,
// wrapping the decoder's own error and the 1-based line and column.
// Complexity: O(W×H).
func Parse[T any](text string, decode Decoder[T]) (*Grid[T], error) {
	if decode == nil {
		return nil, fmt.Errorf("%w: nil decoder", ErrMalformedInput)
	}
	text = strings.Trim(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, ErrEmptyGrid)
	}

	lines := strings.Split(text, "\n")
	rows := make([][]T, 0, len(lines))
	for y, line := range lines {
		row := make([]T, 0, len(line))
		col := 0
		for _, r := range line {
			col++
			v, err := decode(r)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d col %d: %w", ErrMalformedInput, y+1, col, err)
			}
			row = append(row, v)
		}
		if y > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d: %w",
				ErrMalformedInput, y+1, len(row), len(rows[0]), ErrNonRectangular)
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// Runes is a Decoder that keeps every rune as-is.
func Runes(r rune) (rune, error) { return r, nil }

// Digits is a Decoder accepting '0'..'9' as their integer values.
func Digits(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("not a digit: %q", r)
	}

	return int(r - '0'), nil
}
