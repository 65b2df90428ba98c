// core/region/region.go
package region

import (
	"seqstat-core/composition"
	"seqstat-core/sequence"
)

// Region is the window selected by Index together with its base counts.
type Region struct {
	Index   int
	Start   int
	End     int
	Symbols string
	Counts  composition.BaseCounts
}

// Percent is the share of base b in the region, for proportional display.
func (r Region) Percent(b byte) float64 { return r.Counts.Percent(b) }

// Count returns the number of selectable regions for a window size.
func Count(seq *sequence.Sequence, size int) int {
	return sequence.NumWindows(seq.Len(), size)
}

// Select extracts the index-th complete window of size bp.
func Select(seq *sequence.Sequence, size, index int) (Region, error) {
	sp, err := sequence.WindowAt(seq.Len(), size, index)
	if err != nil {
		return Region{}, err
	}
	sub := seq.Slice(sp)
	return Region{
		Index:   index,
		Start:   sp.Start,
		End:     sp.End,
		Symbols: sub,
		Counts:  composition.Count(sub),
	}, nil
}
