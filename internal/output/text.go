// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"seqstat-core/sequence"
	"seqstat/pkg/api"
)

// tsv accumulates the first write error so renderers can stay linear.
type tsv struct {
	w      io.Writer
	header bool
	err    error
}

func (t *tsv) printf(format string, a ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, a...)
}

func (t *tsv) row(format string, a ...any) { t.printf(format+"\n", a...) }

// section prints "# name attr..." followed by the column header. Both are
// suppressed when headers are off so the rows can be piped as plain TSV.
func (t *tsv) section(name, cols string, attrs ...string) {
	if !t.header {
		return
	}
	t.row("# %s", strings.Join(append([]string{name}, attrs...), " "))
	t.row("%s", cols)
}

// WriteText renders every section present in rep as tab-separated blocks.
func WriteText(w io.Writer, rep api.ReportV1, header bool) error {
	t := &tsv{w: w, header: header}

	if header {
		t.section(SectionSequence, SequenceHeader)
		t.row("%s\t%s\t%d", rep.Sequence.ID, rep.Sequence.Description, rep.Sequence.Length)
	}
	if c := rep.Composition; c != nil {
		t.section(SectionComposition, BaseCountsHeader)
		writeBaseRows(t, c.BaseCounts, c.Length)
		t.section("gc_at", ContentHeader)
		t.row("%.2f\t%.2f", c.GCPercent, c.ATPercent)
		t.section("pairs", PairsHeader)
		t.row("A-T\t%d", c.PairCounts.AT)
		t.row("G-C\t%d", c.PairCounts.GC)
	}
	if p := rep.Profile; p != nil {
		t.section(SectionProfile, ProfileHeader, fmt.Sprintf("window=%d", p.WindowSize))
		for _, pt := range p.Points {
			t.row("%d\t%.2f", pt.Start, pt.GCPercent)
		}
	}
	if r := rep.Regions; r != nil {
		attrs := []string{fmt.Sprintf("window=%d", r.WindowSize), fmt.Sprintf("threshold=%g", r.Threshold)}
		t.section(SectionRegions, RegionsHeader, attrs...)
		for _, reg := range r.Regions {
			t.row("%d\t%s", reg.Start, reg.Kind)
		}
		t.section("regions_summary", RegionSummaryHeader, attrs...)
		t.row("%s\t%d", api.KindGCRich, r.GCRich)
		t.row("%s\t%d", api.KindATRich, r.ATRich)
	}
	if m := rep.Motif; m != nil {
		t.section(SectionMotif, MotifHitsHeader, m.Motif, fmt.Sprintf("occurrences=%d", m.Occurrences))
		for _, pos := range m.Positions {
			t.row("%d", pos)
		}
		t.section(SectionHistogram, MotifHistogramHeader, m.Motif, fmt.Sprintf("window=%d", m.WindowSize))
		for _, b := range m.Histogram {
			t.row("%d\t%d", b.Start, b.Count)
		}
	}
	if s := rep.Selection; s != nil {
		t.section(SectionSelection, BaseCountsHeader,
			fmt.Sprintf("index=%d", s.Index), fmt.Sprintf("start=%d", s.Start), fmt.Sprintf("end=%d", s.End))
		writeBaseRows(t, s.BaseCounts, s.End-s.Start)
		if s.Seq != "" {
			t.section("selection_seq", SelectionSeqHeader)
			t.row("%s", s.Seq)
		}
	}
	return t.err
}

func writeBaseRows(t *tsv, c api.BaseCountsV1, total int) {
	for i := 0; i < len(sequence.Alphabet); i++ {
		b := sequence.Alphabet[i]
		n := CountOf(c, b)
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(n) / float64(total)
		}
		t.row("%c\t%d\t%.2f", b, n, pct)
	}
}
