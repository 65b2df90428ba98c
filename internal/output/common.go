package output

// Column headers for text/TSV output, one per section.
// Keep these as the single source of truth; all writers should use them.
const (
	SequenceHeader       = "id\tdescription\tlength"
	BaseCountsHeader     = "base\tcount\tpercent"
	ContentHeader        = "gc_percent\tat_percent"
	PairsHeader          = "pair\tcount"
	ProfileHeader        = "start_position\tgc_percent"
	RegionsHeader        = "start_position\tkind"
	RegionSummaryHeader  = "kind\tcount"
	MotifHitsHeader      = "position"
	MotifHistogramHeader = "start_position\toccurrence_count"
	SelectionSeqHeader   = "sequence"
)

// Section tags used by text markers and JSONL records.
const (
	SectionSequence    = "sequence"
	SectionComposition = "composition"
	SectionProfile     = "profile"
	SectionRegions     = "regions"
	SectionMotif       = "motif"
	SectionHistogram   = "motif_histogram"
	SectionSelection   = "selection"
)
