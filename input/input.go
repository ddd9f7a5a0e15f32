// Package input loads puzzle text from disk, transparently decompressing
// zstd files so large inputs can be stored compressed.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ErrEmpty indicates an input with no content after normalization.
var ErrEmpty = errors.New("input: empty")

// Ext is the file extension that marks zstd-compressed input.
const Ext = ".zst"

// Load reads the file at path, decompressing it when its name ends in Ext.
func Load(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	text, err := Read(f, strings.HasSuffix(path, Ext))
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	return text, nil
}

// Read consumes r, decompressing it first when compressed is set.
// Line endings are normalized to "\n" and surrounding blank lines trimmed.
func Read(r io.Reader, compressed bool) (string, error) {
	if compressed {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return "", err
		}
		defer dec.Close()
		r = dec
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	raw = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	text := strings.Trim(string(raw), "\n")
	if strings.TrimSpace(text) == "" {
		return "", ErrEmpty
	}

	return text, nil
}

// Compress writes text to w as a single zstd frame.
func Compress(w io.Writer, text string) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if _, err := io.WriteString(enc, text); err != nil {
		enc.Close()
		return err
	}

	return enc.Close()
}
