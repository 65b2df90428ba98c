package motif

import (
	"errors"
	"reflect"
	"testing"

	"seqstat-core/sequence"
)

func mustSeq(t *testing.T, s string) *sequence.Sequence {
	t.Helper()
	seq, err := sequence.New("t", "", s)
	if err != nil {
		t.Fatalf("sequence.New: %v", err)
	}
	return seq
}

func TestFindAll(t *testing.T) {
	tests := []struct {
		name  string
		seq   string
		motif string
		want  []int
	}{
		{"start codons", "AAATGATGATG", "ATG", []int{2, 5, 8}},
		{"overlapping", "AAAA", "AAA", []int{0, 1}},
		{"lowercase query", "AAATGATGATG", "atg", []int{2, 5, 8}},
		{"no match", "AAAA", "G", []int{}},
		{"motif longer than sequence", "AT", "ATG", []int{}},
		{"whole sequence", "GATC", "GATC", []int{0}},
		{"dense repeat", "ATATATA", "ATA", []int{0, 2, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindAll(mustSeq(t, tt.seq), tt.motif)
			if err != nil {
				t.Fatalf("FindAll() error = %v", err)
			}
			if !reflect.DeepEqual(got.Positions, tt.want) {
				t.Fatalf("FindAll() = %v, want %v", got.Positions, tt.want)
			}
			if got.Count() != len(tt.want) {
				t.Fatalf("Count() = %d, want %d", got.Count(), len(tt.want))
			}
		})
	}
}

func TestFindAllNormalizesMotif(t *testing.T) {
	got, err := FindAll(mustSeq(t, "GATTACA"), "tac")
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if got.Motif != "TAC" {
		t.Fatalf("Motif = %q, want TAC", got.Motif)
	}
}

func TestInvalidMotif(t *testing.T) {
	seq := mustSeq(t, "ATGC")
	for _, m := range []string{"", "ATN", "A T", "AU"} {
		if _, err := FindAll(seq, m); !errors.Is(err, sequence.ErrInvalidMotif) {
			t.Errorf("FindAll(%q) error = %v, want ErrInvalidMotif", m, err)
		}
		if _, err := Histogram(seq, m, 2); !errors.Is(err, sequence.ErrInvalidMotif) {
			t.Errorf("Histogram(%q) error = %v, want ErrInvalidMotif", m, err)
		}
	}
}

func TestHistogram(t *testing.T) {
	// Windows of 4: AAAA | AATG | ATGA | TG (dropped)
	seq := mustSeq(t, "AAAAAATGATGATG")
	got, err := Histogram(seq, "AA", 4)
	if err != nil {
		t.Fatalf("Histogram() error = %v", err)
	}
	// Non-overlapping: "AAAA" holds two "AA", not three.
	want := []Bin{{0, 2}, {4, 1}, {8, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Histogram() = %v, want %v", got, want)
	}
}

func TestHistogramBoundaryStraddle(t *testing.T) {
	// "ATG" spans positions 2..4, crossing the boundary at 3.
	seq := mustSeq(t, "CCATGC")
	got, err := Histogram(seq, "ATG", 3)
	if err != nil {
		t.Fatalf("Histogram() error = %v", err)
	}
	want := []Bin{{0, 0}, {3, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Histogram() = %v, want %v", got, want)
	}
}

func TestHistogramInvalidWindow(t *testing.T) {
	if _, err := Histogram(mustSeq(t, "ATGC"), "A", 0); !errors.Is(err, sequence.ErrInvalidWindowSize) {
		t.Fatalf("want ErrInvalidWindowSize, got %v", err)
	}
}

func TestHistogramShortSequence(t *testing.T) {
	got, err := Histogram(mustSeq(t, "ATG"), "ATG", 10)
	if err != nil || len(got) != 0 {
		t.Fatalf("Histogram() = %v, %v; want empty", got, err)
	}
}

func TestRepeatCallsAreIdentical(t *testing.T) {
	seq := mustSeq(t, "ATGATGCCATGAAATGATGTTTATG")
	for _, m := range []string{"ATG", "A", "TGA", "GG"} {
		h1, err := FindAll(seq, m)
		if err != nil {
			t.Fatalf("FindAll(%q) error = %v", m, err)
		}
		h2, _ := FindAll(seq, m)
		if !reflect.DeepEqual(h1, h2) {
			t.Fatalf("FindAll(%q) not idempotent: %v vs %v", m, h1, h2)
		}
		b1, err := Histogram(seq, m, 5)
		if err != nil {
			t.Fatalf("Histogram(%q) error = %v", m, err)
		}
		b2, _ := Histogram(seq, m, 5)
		if !reflect.DeepEqual(b1, b2) {
			t.Fatalf("Histogram(%q) not idempotent: %v vs %v", m, b1, b2)
		}
	}
}

func TestNilSequence(t *testing.T) {
	h, err := FindAll(nil, "ATG")
	if err != nil || h.Count() != 0 {
		t.Fatalf("FindAll(nil) = %v, %v; want no hits", h, err)
	}
	bins, err := Histogram(nil, "ATG", 3)
	if err != nil || len(bins) != 0 {
		t.Fatalf("Histogram(nil) = %v, %v; want empty", bins, err)
	}
}
