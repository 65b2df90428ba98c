// core/window/window.go
package window

import (
	"fmt"

	"seqstat-core/composition"
	"seqstat-core/sequence"
)

// Defaults for region classification.
const (
	DefaultRegionSize = 1000
	DefaultThreshold  = 70.0
)

// Point is the GC content of one complete window.
type Point struct {
	Start     int
	GCPercent float64
}

// Profile computes GC% for each complete non-overlapping window of size bp.
// A sequence shorter than size yields an empty profile.
func Profile(seq *sequence.Sequence, size int) ([]Point, error) {
	if err := sequence.CheckWindowSize(size); err != nil {
		return nil, err
	}
	spans := sequence.Windows(seq.Len(), size)
	out := make([]Point, 0, len(spans))
	for _, sp := range spans {
		c := composition.Count(seq.Slice(sp))
		out = append(out, Point{
			Start:     sp.Start,
			GCPercent: 100 * float64(c.G+c.C) / float64(size),
		})
	}
	return out, nil
}

// Kind labels a biased window.
type Kind int

const (
	GCRich Kind = iota + 1
	ATRich
)

func (k Kind) String() string {
	switch k {
	case GCRich:
		return "GC-rich"
	case ATRich:
		return "AT-rich"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Region is a window whose GC% or AT% exceeded the threshold.
type Region struct {
	Start int
	Kind  Kind
}

// Classification is the ordered list of biased windows.
type Classification []Region

// Count returns how many regions have kind k.
func (c Classification) Count(k Kind) int {
	n := 0
	for _, r := range c {
		if r.Kind == k {
			n++
		}
	}
	return n
}

// Starts returns the start positions of regions of kind k, ascending.
func (c Classification) Starts(k Kind) []int {
	var out []int
	for _, r := range c {
		if r.Kind == k {
			out = append(out, r.Start)
		}
	}
	return out
}

// Options configures Classify. Both fields are validated as given.
type Options struct {
	Size      int
	Threshold float64
}

// DefaultOptions returns the 1000 bp / 70% classification settings.
func DefaultOptions() Options {
	return Options{Size: DefaultRegionSize, Threshold: DefaultThreshold}
}

// CheckThreshold requires 0 < t < 100.
func CheckThreshold(t float64) error {
	if !(t > 0 && t < 100) {
		return fmt.Errorf("%w: %v (must be in (0,100))", sequence.ErrInvalidThreshold, t)
	}
	return nil
}

// Classify labels each complete window GC-rich when GC% > threshold, and
// otherwise AT-rich when AT% > threshold. GC is checked first, so with a
// threshold below 50 a window exceeding both is reported only as GC-rich.
func Classify(seq *sequence.Sequence, opt Options) (Classification, error) {
	if err := sequence.CheckWindowSize(opt.Size); err != nil {
		return nil, err
	}
	if err := CheckThreshold(opt.Threshold); err != nil {
		return nil, err
	}
	var out Classification
	for _, sp := range sequence.Windows(seq.Len(), opt.Size) {
		c := composition.Count(seq.Slice(sp))
		gc := 100 * float64(c.G+c.C) / float64(opt.Size)
		at := 100 * float64(c.A+c.T) / float64(opt.Size)
		if gc > opt.Threshold {
			out = append(out, Region{Start: sp.Start, Kind: GCRich})
		} else if at > opt.Threshold {
			out = append(out, Region{Start: sp.Start, Kind: ATRich})
		}
	}
	return out, nil
}
