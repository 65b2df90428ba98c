// core/sequence/sequence.go
package sequence

import "fmt"

// Alphabet lists the accepted bases in display order.
const Alphabet = "ATGC"

// Sequence is a read-only nucleotide string with its record metadata.
type Sequence struct {
	id      string
	desc    string
	symbols string
}

// New validates symbols against {A,T,G,C} (case-sensitive) and returns a
// Sequence. The empty string is a valid sequence.
func New(id, description, symbols string) (*Sequence, error) {
	if i := IndexInvalid(symbols); i >= 0 {
		return nil, fmt.Errorf("%w: %q at %d; allowed: A C G T", ErrInvalidAlphabet, symbols[i], i+1)
	}
	return &Sequence{id: id, desc: description, symbols: symbols}, nil
}

// Accessors are nil-safe: a nil *Sequence reads as the empty sequence.

func (s *Sequence) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

func (s *Sequence) Description() string {
	if s == nil {
		return ""
	}
	return s.desc
}

func (s *Sequence) Symbols() string {
	if s == nil {
		return ""
	}
	return s.symbols
}

func (s *Sequence) Len() int { return len(s.Symbols()) }

// Slice returns the symbols covered by sp. sp must lie within the sequence.
func (s *Sequence) Slice(sp Span) string { return s.Symbols()[sp.Start:sp.End] }

// IsBase reports whether b is one of A, T, G, C.
func IsBase(b byte) bool {
	switch b {
	case 'A', 'T', 'G', 'C':
		return true
	}
	return false
}

// IndexInvalid returns the index of the first non-ATGC byte in s, or -1.
func IndexInvalid(s string) int {
	for i := 0; i < len(s); i++ {
		if !IsBase(s[i]) {
			return i
		}
	}
	return -1
}
