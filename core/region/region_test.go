package region

import (
	"errors"
	"reflect"
	"testing"

	"seqstat-core/composition"
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

func TestSelect(t *testing.T) {
	seq := mustSeq(t, "ATGCATGC")
	r, err := Select(seq, 4, 1)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if r.Symbols != "ATGC" || r.Start != 4 || r.End != 8 || r.Index != 1 {
		t.Fatalf("Select() = %+v", r)
	}
	if r.Counts != (composition.BaseCounts{A: 1, T: 1, G: 1, C: 1}) {
		t.Fatalf("Counts = %+v", r.Counts)
	}
	if r.Percent('G') != 25 {
		t.Fatalf("Percent('G') = %v, want 25", r.Percent('G'))
	}
}

func TestSelectOutOfRange(t *testing.T) {
	seq := mustSeq(t, "ATGCATGC")
	tests := []struct {
		name        string
		size, index int
		want        error
	}{
		{"past last window", 4, 2, sequence.ErrRegionIndexOutOfRange},
		{"negative index", 4, -1, sequence.ErrRegionIndexOutOfRange},
		{"window longer than sequence", 10, 0, sequence.ErrRegionIndexOutOfRange},
		{"zero window", 0, 0, sequence.ErrInvalidWindowSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Select(seq, tt.size, tt.index); !errors.Is(err, tt.want) {
				t.Fatalf("Select() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSelectIgnoresRemainder(t *testing.T) {
	seq := mustSeq(t, "AAAACCCCGG")
	if got := Count(seq, 4); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}
	if _, err := Select(seq, 4, 2); !errors.Is(err, sequence.ErrRegionIndexOutOfRange) {
		t.Fatalf("trailing partial window must not be selectable, got %v", err)
	}
}

func TestRepeatCallsAreIdentical(t *testing.T) {
	seq := mustSeq(t, "GGGCATTAACGTACGTTTAA")
	for i := 0; i < Count(seq, 5); i++ {
		a, err := Select(seq, 5, i)
		if err != nil {
			t.Fatalf("Select(%d) error = %v", i, err)
		}
		b, _ := Select(seq, 5, i)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("Select(%d) not idempotent: %+v vs %+v", i, a, b)
		}
	}
}

func TestNilSequence(t *testing.T) {
	if n := Count(nil, 4); n != 0 {
		t.Fatalf("Count(nil) = %d, want 0", n)
	}
	if _, err := Select(nil, 4, 0); !errors.Is(err, sequence.ErrRegionIndexOutOfRange) {
		t.Fatalf("Select(nil) error = %v, want ErrRegionIndexOutOfRange", err)
	}
}
