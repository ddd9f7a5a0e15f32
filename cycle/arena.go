package cycle

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// ID is the dense identifier an Arena assigns to a distinct state encoding.
// IDs start at 0 and grow by one per new encoding.
type ID int

// Arena interns canonical state encodings. Two encodings receive the same ID
// exactly when they are byte-for-byte equal; hashing only narrows the search.
//
// Time:   O(len(enc)) per Intern on average.
// Memory: O(total bytes interned).
type Arena struct {
	buckets   map[uint64][]ID
	encodings [][]byte
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{buckets: make(map[uint64][]ID)}
}

// Intern returns the ID of enc, assigning a new one on first sight.
// The second result reports whether enc had been interned before.
// The Arena keeps its own copy of enc, so callers may reuse the buffer.
func (a *Arena) Intern(enc []byte) (ID, bool) {
	h := xxhash.Sum64(enc)
	for _, id := range a.buckets[h] {
		if bytes.Equal(a.encodings[id], enc) {
			return id, true
		}
	}

	id := ID(len(a.encodings))
	a.encodings = append(a.encodings, bytes.Clone(enc))
	a.buckets[h] = append(a.buckets[h], id)

	return id, false
}

// Lookup returns the ID of enc without interning it.
func (a *Arena) Lookup(enc []byte) (ID, bool) {
	for _, id := range a.buckets[xxhash.Sum64(enc)] {
		if bytes.Equal(a.encodings[id], enc) {
			return id, true
		}
	}

	return 0, false
}

// Len returns the number of distinct encodings interned.
func (a *Arena) Len() int { return len(a.encodings) }
