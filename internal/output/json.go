// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"seqstat/pkg/api"
)

// WriteJSON writes rep as a single pretty-indented JSON document.
func WriteJSON(w io.Writer, rep api.ReportV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// Records flattens rep into JSONL records in section order: one line for
// the composition and the selection, one per profile point, region, motif
// position and histogram bin.
func Records(rep api.ReportV1) []api.RecordV1 {
	id := rep.Sequence.ID
	var out []api.RecordV1
	if c := rep.Composition; c != nil {
		out = append(out, api.RecordV1{Section: SectionComposition, SequenceID: id, Composition: c})
	}
	if p := rep.Profile; p != nil {
		for i := range p.Points {
			out = append(out, api.RecordV1{Section: SectionProfile, SequenceID: id, Point: &p.Points[i]})
		}
	}
	if r := rep.Regions; r != nil {
		for i := range r.Regions {
			out = append(out, api.RecordV1{Section: SectionRegions, SequenceID: id, Region: &r.Regions[i]})
		}
	}
	if m := rep.Motif; m != nil {
		for i := range m.Positions {
			out = append(out, api.RecordV1{Section: SectionMotif, SequenceID: id, Motif: m.Motif, Position: &m.Positions[i]})
		}
		for i := range m.Histogram {
			out = append(out, api.RecordV1{Section: SectionHistogram, SequenceID: id, Motif: m.Motif, Bin: &m.Histogram[i]})
		}
	}
	if s := rep.Selection; s != nil {
		out = append(out, api.RecordV1{Section: SectionSelection, SequenceID: id, Selection: s})
	}
	return out
}
