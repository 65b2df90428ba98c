// internal/output/api.go
package output

import (
	"seqstat-core/composition"
	"seqstat-core/motif"
	"seqstat-core/region"
	"seqstat-core/sequence"
	"seqstat-core/window"
	"seqstat/pkg/api"
)

// ToAPISequence converts sequence metadata to the wire schema (v1).
func ToAPISequence(s *sequence.Sequence, digest string) api.SequenceV1 {
	return api.SequenceV1{
		ID:          s.ID(),
		Description: s.Description(),
		Length:      s.Len(),
		Digest:      digest,
	}
}

func ToAPIBaseCounts(c composition.BaseCounts) api.BaseCountsV1 {
	return api.BaseCountsV1{A: c.A, T: c.T, G: c.G, C: c.C}
}

func ToAPIComposition(st composition.Stats) *api.CompositionV1 {
	return &api.CompositionV1{
		Length:     st.Length,
		BaseCounts: ToAPIBaseCounts(st.Counts),
		GCPercent:  st.GCPercent,
		ATPercent:  st.ATPercent,
		PairCounts: api.PairCountsV1{AT: st.Pairs.AT, GC: st.Pairs.GC},
	}
}

func ToAPIProfile(size int, pts []window.Point) *api.ProfileV1 {
	out := &api.ProfileV1{WindowSize: size, Points: make([]api.ProfilePointV1, 0, len(pts))}
	for _, p := range pts {
		out.Points = append(out.Points, api.ProfilePointV1{Start: p.Start, GCPercent: p.GCPercent})
	}
	return out
}

// ToAPIKind maps a window kind to its wire name.
func ToAPIKind(k window.Kind) string {
	switch k {
	case window.GCRich:
		return api.KindGCRich
	case window.ATRich:
		return api.KindATRich
	}
	return k.String()
}

func ToAPIRegions(size int, threshold float64, c window.Classification) *api.RegionsV1 {
	out := &api.RegionsV1{
		WindowSize: size,
		Threshold:  threshold,
		GCRich:     c.Count(window.GCRich),
		ATRich:     c.Count(window.ATRich),
		Regions:    make([]api.RegionV1, 0, len(c)),
	}
	for _, r := range c {
		out.Regions = append(out.Regions, api.RegionV1{Start: r.Start, Kind: ToAPIKind(r.Kind)})
	}
	return out
}

func ToAPIMotif(h motif.Hits, size int, bins []motif.Bin) *api.MotifV1 {
	out := &api.MotifV1{
		Motif:       h.Motif,
		Occurrences: h.Count(),
		Positions:   append(make([]int, 0, len(h.Positions)), h.Positions...),
		WindowSize:  size,
		Histogram:   make([]api.MotifBinV1, 0, len(bins)),
	}
	for _, b := range bins {
		out.Histogram = append(out.Histogram, api.MotifBinV1{Start: b.Start, Count: b.Count})
	}
	return out
}

// ToAPISelection converts a selected region; the window text is attached
// only when withSeq is set.
func ToAPISelection(size int, r region.Region, withSeq bool) *api.SelectionV1 {
	out := &api.SelectionV1{
		Index:       r.Index,
		WindowSize:  size,
		Start:       r.Start,
		End:         r.End,
		BaseCounts:  ToAPIBaseCounts(r.Counts),
		Proportions: make(map[string]float64, len(sequence.Alphabet)),
	}
	for i := 0; i < len(sequence.Alphabet); i++ {
		b := sequence.Alphabet[i]
		out.Proportions[string(b)] = r.Percent(b)
	}
	if withSeq {
		out.Seq = r.Symbols
	}
	return out
}

// CountOf returns the count for base b from the wire counts.
func CountOf(c api.BaseCountsV1, b byte) int {
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
