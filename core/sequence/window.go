package sequence

import "fmt"

// Span is a half-open interval [Start, End) over a sequence.
type Span struct {
	Start int
	End   int
}

func (sp Span) Len() int { return sp.End - sp.Start }

// CheckWindowSize rejects sizes below 1.
func CheckWindowSize(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: %d (must be ≥ 1)", ErrInvalidWindowSize, size)
	}
	return nil
}

// NumWindows is the number of complete non-overlapping windows of size bp
// in a sequence of length bp. The trailing remainder never counts.
func NumWindows(length, size int) int {
	if size < 1 || length < size {
		return 0
	}
	return (length-size)/size + 1
}

// Windows returns every complete window, striding by size from 0.
func Windows(length, size int) []Span {
	n := NumWindows(length, size)
	if n == 0 {
		return nil
	}
	out := make([]Span, 0, n)
	for i := 0; i+size <= length; i += size {
		out = append(out, Span{Start: i, End: i + size})
	}
	return out
}

// WindowAt returns the index-th complete window.
func WindowAt(length, size, index int) (Span, error) {
	if err := CheckWindowSize(size); err != nil {
		return Span{}, err
	}
	n := NumWindows(length, size)
	if index < 0 || index >= n {
		return Span{}, fmt.Errorf("%w: %d not in [0,%d)", ErrRegionIndexOutOfRange, index, n)
	}
	start := index * size
	return Span{Start: start, End: start + size}, nil
}
