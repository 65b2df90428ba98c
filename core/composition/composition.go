// core/composition/composition.go
package composition

import (
	"fmt"

	"seqstat-core/sequence"
)

// BaseCounts holds per-base occurrence counts.
type BaseCounts struct {
	A, T, G, C int
}

// Total is the number of counted bases.
func (c BaseCounts) Total() int { return c.A + c.T + c.G + c.C }

// Get returns the count for base b (0 for anything outside ATGC).
func (c BaseCounts) Get(b byte) int {
	switch b {
	case 'A':
		return c.A
	case 'T':
		return c.T
	case 'G':
		return c.G
	case 'C':
		return c.C
	}
	return 0
}

// Map returns the counts keyed by base letter; always exactly A, T, G, C.
func (c BaseCounts) Map() map[string]int {
	return map[string]int{"A": c.A, "T": c.T, "G": c.G, "C": c.C}
}

// Percent returns base b as a percentage of Total, or 0 for empty counts.
func (c BaseCounts) Percent(b byte) float64 {
	n := c.Total()
	if n == 0 {
		return 0
	}
	return 100 * float64(c.Get(b)) / float64(n)
}

// GCPercent returns 100*(G+C)/Total.
func (c BaseCounts) GCPercent() float64 {
	n := c.Total()
	if n == 0 {
		return 0
	}
	return 100 * float64(c.G+c.C) / float64(n)
}

// ATPercent returns 100*(A+T)/Total.
func (c BaseCounts) ATPercent() float64 {
	n := c.Total()
	if n == 0 {
		return 0
	}
	return 100 * float64(c.A+c.T) / float64(n)
}

// PairCounts are overlapping dinucleotide counts: AT counts "AT" and "TA",
// GC counts "GC" and "CG".
type PairCounts struct {
	AT int
	GC int
}

// Stats is the whole-sequence composition summary.
type Stats struct {
	Length    int
	Counts    BaseCounts
	GCPercent float64
	ATPercent float64
	Pairs     PairCounts
}

// Count tallies A, T, G and C in s. Other bytes are ignored.
func Count(s string) BaseCounts {
	var c BaseCounts
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A':
			c.A++
		case 'T':
			c.T++
		case 'G':
			c.G++
		case 'C':
			c.C++
		}
	}
	return c
}

// CountPairs checks every start position 0..len(s)-2, so "ATA" yields an
// "AT" and a "TA".
func CountPairs(s string) PairCounts {
	var p PairCounts
	for i := 0; i+1 < len(s); i++ {
		switch s[i : i+2] {
		case "AT", "TA":
			p.AT++
		case "GC", "CG":
			p.GC++
		}
	}
	return p
}

// Analyze computes base counts, GC/AT percentages and pair counts.
func Analyze(seq *sequence.Sequence) (Stats, error) {
	if seq.Len() == 0 {
		return Stats{}, fmt.Errorf("%w: composition needs at least one base", sequence.ErrEmptySequence)
	}
	s := seq.Symbols()
	c := Count(s)
	return Stats{
		Length:    len(s),
		Counts:    c,
		GCPercent: 100 * float64(c.G+c.C) / float64(len(s)),
		ATPercent: 100 * float64(c.A+c.T) / float64(len(s)),
		Pairs:     CountPairs(s),
	}, nil
}
