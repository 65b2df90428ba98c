package sequence

import (
	"errors"
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
		wantErr bool
	}{
		{"acgt", "ATGCATGC", false},
		{"empty", "", false},
		{"lowercase rejected", "ATgC", true},
		{"iupac rejected", "ATNC", true},
		{"whitespace rejected", "AT GC", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New("id", "desc", tt.symbols)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAlphabet) {
					t.Fatalf("New() error = %v, want ErrInvalidAlphabet", err)
				}
				return
			}
			if s.Symbols() != tt.symbols || s.Len() != len(tt.symbols) || s.ID() != "id" || s.Description() != "desc" {
				t.Fatalf("unexpected sequence: %+v", s)
			}
		})
	}
}

func TestNilSequenceReadsAsEmpty(t *testing.T) {
	var s *Sequence
	if s.Len() != 0 || s.Symbols() != "" || s.ID() != "" || s.Description() != "" {
		t.Fatalf("nil sequence accessors must return zero values")
	}
	if got := s.Slice(Span{}); got != "" {
		t.Fatalf("Slice() = %q, want empty", got)
	}
}

func TestNumWindows(t *testing.T) {
	tests := []struct {
		length, size, want int
	}{
		{8, 4, 2},
		{9, 4, 2},
		{3, 4, 0},
		{0, 1, 0},
		{1000, 1000, 1},
		{10, 0, 0},
		{10, -1, 0},
	}
	for _, tt := range tests {
		if got := NumWindows(tt.length, tt.size); got != tt.want {
			t.Errorf("NumWindows(%d, %d) = %d, want %d", tt.length, tt.size, got, tt.want)
		}
	}
}

func TestWindowsDropTrailingRemainder(t *testing.T) {
	got := Windows(10, 3)
	want := []Span{{0, 3}, {3, 6}, {6, 9}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Windows(10, 3) = %v, want %v", got, want)
	}
	if Windows(2, 3) != nil {
		t.Fatalf("expected no windows for a sequence shorter than the window")
	}
}

func TestWindowAt(t *testing.T) {
	sp, err := WindowAt(8, 4, 1)
	if err != nil || sp != (Span{4, 8}) {
		t.Fatalf("WindowAt(8,4,1) = %v, %v", sp, err)
	}
	if _, err := WindowAt(8, 4, 2); !errors.Is(err, ErrRegionIndexOutOfRange) {
		t.Fatalf("want ErrRegionIndexOutOfRange, got %v", err)
	}
	if _, err := WindowAt(8, 4, -1); !errors.Is(err, ErrRegionIndexOutOfRange) {
		t.Fatalf("want ErrRegionIndexOutOfRange for negative index, got %v", err)
	}
	if _, err := WindowAt(8, 0, 0); !errors.Is(err, ErrInvalidWindowSize) {
		t.Fatalf("want ErrInvalidWindowSize, got %v", err)
	}
}
