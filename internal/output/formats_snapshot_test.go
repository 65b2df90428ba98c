package output

import "testing"

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatJSONL != "jsonl" || FormatPretty != "pretty" {
		t.Fatalf("output format constants changed")
	}
}

func TestHeaders_Stable(t *testing.T) {
	if ProfileHeader != "start_position\tgc_percent" {
		t.Fatalf("ProfileHeader changed: %q", ProfileHeader)
	}
	if MotifHistogramHeader != "start_position\toccurrence_count" {
		t.Fatalf("MotifHistogramHeader changed: %q", MotifHistogramHeader)
	}
	if BaseCountsHeader != "base\tcount\tpercent" {
		t.Fatalf("BaseCountsHeader changed: %q", BaseCountsHeader)
	}
}
