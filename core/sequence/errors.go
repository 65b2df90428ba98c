package sequence

import "errors"

// Error kinds reported by the analysis packages. Callers match them with
// errors.Is; the returned errors wrap these with the offending value.
var (
	ErrInvalidAlphabet       = errors.New("invalid alphabet")
	ErrEmptySequence         = errors.New("empty sequence")
	ErrInvalidMotif          = errors.New("invalid motif")
	ErrRegionIndexOutOfRange = errors.New("region index out of range")
	ErrInvalidWindowSize     = errors.New("invalid window size")
	ErrInvalidThreshold      = errors.New("invalid threshold")
)
