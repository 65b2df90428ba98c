// Package pretty draws report sections as fixed-width ASCII bar charts for
// terminals: base and pair counts, the GC profile, region counts, the motif
// histogram and the selected region's base proportions.
package pretty

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"seqstat-core/sequence"
	"seqstat/internal/output"
	"seqstat/pkg/api"
)

// Options control the ASCII rendering.
type Options struct {
	// Longest bar in glyphs. If <=0, use default (50).
	Width int

	// Glyphs
	BarGlyph  string // default "#"
	MarkGlyph string // default "|", threshold marker on profile bars

	// Mark the classification threshold on GC profile bars when the
	// report carries regions.
	ShowThreshold bool
}

// DefaultOptions is the look used by the "pretty" output format.
var DefaultOptions = Options{
	Width:         50,
	BarGlyph:      "#",
	MarkGlyph:     "|",
	ShowThreshold: true,
}

const linePrefix = "# "

func (o Options) normalized() Options {
	d := DefaultOptions
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.BarGlyph == "" {
		o.BarGlyph = d.BarGlyph
	}
	if o.MarkGlyph == "" {
		o.MarkGlyph = d.MarkGlyph
	}
	return o
}

type row struct {
	label string
	value float64
	text  string // printed after the bar
}

// chart accumulates the first write error, like the TSV writer.
type chart struct {
	w   io.Writer
	opt Options
	err error
}

func (c *chart) printf(format string, a ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.w, format, a...)
}

// cells returns the bar length for v on a scale whose full width is scale.
func (c *chart) cells(v, scale float64) int {
	if scale <= 0 || v <= 0 {
		return 0
	}
	return int(math.Round(v / scale * float64(c.opt.Width)))
}

// bars draws one titled block. mark >= 0 places MarkGlyph at that value.
func (c *chart) bars(title string, rows []row, scale, mark float64) {
	c.printf("%s%s\n", linePrefix, title)
	if len(rows) == 0 {
		c.printf("  (no data)\n")
		return
	}
	lw := 0
	for _, r := range rows {
		if len(r.label) > lw {
			lw = len(r.label)
		}
	}
	markAt := -1
	if mark >= 0 {
		markAt = c.cells(mark, scale)
	}
	for _, r := range rows {
		n := c.cells(r.value, scale)
		bar := strings.Repeat(c.opt.BarGlyph, n)
		if markAt >= 0 {
			if pad := markAt - n; pad > 0 {
				bar += strings.Repeat(" ", pad)
			}
			if markAt >= n {
				bar += c.opt.MarkGlyph
			}
		}
		c.printf("  %*s |%s %s\n", lw, r.label, bar, r.text)
	}
}

func maxOf(rows []row) float64 {
	m := 0.0
	for _, r := range rows {
		m = math.Max(m, r.value)
	}
	return m
}

func countRow(label string, n int) row {
	return row{label: label, value: float64(n), text: strconv.Itoa(n)}
}

func pctRow(label string, pct float64) row {
	return row{label: label, value: pct, text: fmt.Sprintf("%.1f%%", pct)}
}

// Render draws every section present in rep.
func Render(w io.Writer, rep api.ReportV1, opt Options) error {
	c := &chart{w: w, opt: opt.normalized()}

	c.printf("%s%s (%d bp)\n", linePrefix, rep.Sequence.ID, rep.Sequence.Length)

	if comp := rep.Composition; comp != nil {
		rows := baseRows(comp.BaseCounts, false, 0)
		c.bars("base counts", rows, maxOf(rows), -1)
		c.printf("%sGC %.2f%%  AT %.2f%%\n", linePrefix, comp.GCPercent, comp.ATPercent)
		pairs := []row{countRow("A-T", comp.PairCounts.AT), countRow("G-C", comp.PairCounts.GC)}
		c.bars("adjacent pairs", pairs, maxOf(pairs), -1)
	}
	if p := rep.Profile; p != nil {
		rows := make([]row, 0, len(p.Points))
		for _, pt := range p.Points {
			rows = append(rows, pctRow(strconv.Itoa(pt.Start), pt.GCPercent))
		}
		mark := -1.0
		if c.opt.ShowThreshold && rep.Regions != nil {
			mark = rep.Regions.Threshold
		}
		c.bars(fmt.Sprintf("GC%% per %d bp window", p.WindowSize), rows, 100, mark)
	}
	if r := rep.Regions; r != nil {
		rows := []row{countRow(api.KindGCRich, r.GCRich), countRow(api.KindATRich, r.ATRich)}
		c.bars(fmt.Sprintf("regions over %g%% (%d bp windows)", r.Threshold, r.WindowSize), rows, maxOf(rows), -1)
	}
	if m := rep.Motif; m != nil {
		rows := make([]row, 0, len(m.Histogram))
		for _, b := range m.Histogram {
			rows = append(rows, countRow(strconv.Itoa(b.Start), b.Count))
		}
		c.bars(fmt.Sprintf("%s per %d bp window (%d total)", m.Motif, m.WindowSize, m.Occurrences), rows, maxOf(rows), -1)
	}
	if s := rep.Selection; s != nil {
		rows := baseRows(s.BaseCounts, true, s.End-s.Start)
		c.bars(fmt.Sprintf("region %d [%d, %d)", s.Index, s.Start, s.End), rows, 100, -1)
	}
	return c.err
}

// baseRows lists A, T, G, C either as counts or as percentages of total.
func baseRows(bc api.BaseCountsV1, percent bool, total int) []row {
	rows := make([]row, 0, len(sequence.Alphabet))
	for i := 0; i < len(sequence.Alphabet); i++ {
		b := sequence.Alphabet[i]
		n := output.CountOf(bc, b)
		if !percent {
			rows = append(rows, countRow(string(b), n))
			continue
		}
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(n) / float64(total)
		}
		rows = append(rows, pctRow(string(b), pct))
	}
	return rows
}
