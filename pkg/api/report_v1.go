// pkg/api/report_v1.go
package api

// Stable JSON/JSONL schema (v1). Keep fields, names, and types stable.
// Add new fields only with ",omitempty".

type SequenceV1 struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	Length      int    `json:"length"`
	Digest      string `json:"digest,omitempty"` // blake2b-256 of the symbols
}

type BaseCountsV1 struct {
	A int `json:"A"`
	T int `json:"T"`
	G int `json:"G"`
	C int `json:"C"`
}

type PairCountsV1 struct {
	AT int `json:"AT"`
	GC int `json:"GC"`
}

type CompositionV1 struct {
	Length     int          `json:"length"`
	BaseCounts BaseCountsV1 `json:"base_counts"`
	GCPercent  float64      `json:"gc_percent"`
	ATPercent  float64      `json:"at_percent"`
	PairCounts PairCountsV1 `json:"pair_counts"`
}

type ProfilePointV1 struct {
	Start     int     `json:"start_position"`
	GCPercent float64 `json:"gc_percent"`
}

type ProfileV1 struct {
	WindowSize int              `json:"window_size"`
	Points     []ProfilePointV1 `json:"points"`
}

// RegionV1 kinds.
const (
	KindGCRich = "GC_RICH"
	KindATRich = "AT_RICH"
)

type RegionV1 struct {
	Start int    `json:"start_position"`
	Kind  string `json:"kind"` // "GC_RICH" | "AT_RICH"
}

type RegionsV1 struct {
	WindowSize int        `json:"window_size"`
	Threshold  float64    `json:"threshold"`
	GCRich     int        `json:"gc_rich"`
	ATRich     int        `json:"at_rich"`
	Regions    []RegionV1 `json:"regions"`
}

type MotifBinV1 struct {
	Start int `json:"start_position"`
	Count int `json:"occurrence_count"`
}

type MotifV1 struct {
	Motif       string       `json:"motif"`
	Occurrences int          `json:"occurrences"`
	Positions   []int        `json:"positions"`
	WindowSize  int          `json:"window_size"`
	Histogram   []MotifBinV1 `json:"histogram"`
}

type SelectionV1 struct {
	Index       int                `json:"region_index"`
	WindowSize  int                `json:"window_size"`
	Start       int                `json:"start"`
	End         int                `json:"end"`
	BaseCounts  BaseCountsV1       `json:"base_counts"`
	Proportions map[string]float64 `json:"proportions"`
	Seq         string             `json:"seq,omitempty"`
}

// ReportV1 is the JSON document; sections not requested are omitted.
type ReportV1 struct {
	Sequence    SequenceV1     `json:"sequence"`
	Composition *CompositionV1 `json:"composition,omitempty"`
	Profile     *ProfileV1     `json:"profile,omitempty"`
	Regions     *RegionsV1     `json:"regions,omitempty"`
	Motif       *MotifV1       `json:"motif,omitempty"`
	Selection   *SelectionV1   `json:"selection,omitempty"`
}

// RecordV1 is one JSONL line: a section tag and exactly one payload field.
type RecordV1 struct {
	Section     string          `json:"section"`
	SequenceID  string          `json:"sequence_id"`
	Composition *CompositionV1  `json:"composition,omitempty"`
	Point       *ProfilePointV1 `json:"point,omitempty"`
	Region      *RegionV1       `json:"region,omitempty"`
	Motif       string          `json:"motif,omitempty"`
	Position    *int            `json:"position,omitempty"`
	Bin         *MotifBinV1     `json:"bin,omitempty"`
	Selection   *SelectionV1    `json:"selection,omitempty"`
}
