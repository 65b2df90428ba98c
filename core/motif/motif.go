// core/motif/motif.go
package motif

import (
	"fmt"
	"strings"

	"seqstat-core/sequence"
)

// Hits are the start positions of every occurrence of Motif, overlapping
// occurrences included.
type Hits struct {
	Motif     string
	Positions []int
}

// Count is the number of occurrences.
func (h Hits) Count() int { return len(h.Positions) }

// Bin is the number of non-overlapping occurrences inside one window.
type Bin struct {
	Start int
	Count int
}

// Normalize uppercases raw and checks it is a non-empty ATGC string.
func Normalize(raw string) (string, error) {
	m := strings.ToUpper(raw)
	if m == "" {
		return "", fmt.Errorf("%w: empty motif", sequence.ErrInvalidMotif)
	}
	if i := sequence.IndexInvalid(m); i >= 0 {
		return "", fmt.Errorf("%w: invalid base %q at %d; allowed: A C G T", sequence.ErrInvalidMotif, m[i], i+1)
	}
	return m, nil
}

// FindAll returns all occurrence positions of motif, ascending. After each
// match the search resumes one base past the match start, not its end.
func FindAll(seq *sequence.Sequence, motif string) (Hits, error) {
	m, err := Normalize(motif)
	if err != nil {
		return Hits{}, err
	}
	s := seq.Symbols()
	h := Hits{Motif: m, Positions: []int{}}
	for from := 0; from <= len(s)-len(m); {
		i := strings.Index(s[from:], m)
		if i < 0 {
			break
		}
		h.Positions = append(h.Positions, from+i)
		from += i + 1
	}
	return h, nil
}

// Histogram counts motif occurrences per complete window of size bp. Each
// window is counted on its own with non-overlapping matching, so a match
// that straddles a boundary is counted in neither window. Windows with no
// occurrence are still reported.
func Histogram(seq *sequence.Sequence, motif string, size int) ([]Bin, error) {
	m, err := Normalize(motif)
	if err != nil {
		return nil, err
	}
	if err := sequence.CheckWindowSize(size); err != nil {
		return nil, err
	}
	spans := sequence.Windows(seq.Len(), size)
	out := make([]Bin, 0, len(spans))
	for _, sp := range spans {
		out = append(out, Bin{Start: sp.Start, Count: strings.Count(seq.Slice(sp), m)})
	}
	return out, nil
}
