package pretty

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqstat/pkg/api"
)

func render(t *testing.T, rep api.ReportV1, opt Options) string {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, Render(&b, rep, opt))
	return b.String()
}

func TestRenderComposition(t *testing.T) {
	rep := api.ReportV1{
		Sequence: api.SequenceV1{ID: "s", Length: 8},
		Composition: &api.CompositionV1{
			Length:     8,
			BaseCounts: api.BaseCountsV1{A: 4, T: 2, G: 1, C: 1},
			GCPercent:  25,
			ATPercent:  75,
			PairCounts: api.PairCountsV1{AT: 3, GC: 1},
		},
	}
	want := strings.Join([]string{
		"# s (8 bp)",
		"# base counts",
		"  A |########## 4",
		"  T |##### 2",
		"  G |### 1",
		"  C |### 1",
		"# GC 25.00%  AT 75.00%",
		"# adjacent pairs",
		"  A-T |########## 3",
		"  G-C |### 1",
	}, "\n") + "\n"
	assert.Equal(t, want, render(t, rep, Options{Width: 10}))
}

func TestRenderProfileMarksThreshold(t *testing.T) {
	rep := api.ReportV1{
		Sequence: api.SequenceV1{ID: "s", Length: 8},
		Profile: &api.ProfileV1{WindowSize: 4, Points: []api.ProfilePointV1{
			{Start: 0, GCPercent: 80}, {Start: 4, GCPercent: 20},
		}},
		Regions: &api.RegionsV1{WindowSize: 4, Threshold: 70, GCRich: 1, ATRich: 1},
	}
	want := strings.Join([]string{
		"# s (8 bp)",
		"# GC% per 4 bp window",
		"  0 |######## 80.0%",
		"  4 |##     | 20.0%",
		"# regions over 70% (4 bp windows)",
		"  GC_RICH |########## 1",
		"  AT_RICH |########## 1",
	}, "\n") + "\n"
	assert.Equal(t, want, render(t, rep, Options{Width: 10, ShowThreshold: true}))

	noMark := render(t, rep, Options{Width: 10})
	assert.Contains(t, noMark, "  4 |## 20.0%\n")
}

func TestRenderSelectionAndEmptyHistogram(t *testing.T) {
	rep := api.ReportV1{
		Sequence: api.SequenceV1{ID: "s", Length: 3},
		Motif:    &api.MotifV1{Motif: "ATG", WindowSize: 10, Positions: []int{}, Histogram: []api.MotifBinV1{}},
		Selection: &api.SelectionV1{Index: 0, WindowSize: 2, Start: 0, End: 2,
			BaseCounts: api.BaseCountsV1{A: 1, T: 1}},
	}
	out := render(t, rep, Options{Width: 10})
	assert.Contains(t, out, "# ATG per 10 bp window (0 total)\n  (no data)\n")
	assert.Contains(t, out, "# region 0 [0, 2)\n  A |##### 50.0%\n  T |##### 50.0%\n  G | 0.0%\n  C | 0.0%\n")
}

func TestOptionsNormalized(t *testing.T) {
	o := Options{}.normalized()
	assert.Equal(t, 50, o.Width)
	assert.Equal(t, "#", o.BarGlyph)
	assert.Equal(t, "|", o.MarkGlyph)
}
