// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"seqstat/pkg/api"
)

// Options carries presentation switches shared by all formats.
type Options struct {
	Header bool // text only: section markers and column headers
}

// WriteFunc renders one report in a single format.
type WriteFunc func(w io.Writer, rep api.ReportV1, opt Options) error

var (
	mu       sync.RWMutex
	registry = map[string]WriteFunc{}
)

// Register binds fn to format (last wins). Called from init() in format files.
func Register(format string, fn WriteFunc) {
	mu.Lock()
	defer mu.Unlock()
	registry[format] = fn
}

// Write dispatches rep to the writer registered for format.
func Write(format string, w io.Writer, rep api.ReportV1, opt Options) error {
	mu.RLock()
	fn, ok := registry[format]
	mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown format %q (no writer registered)", format)
	}
	return fn(w, rep, opt)
}

// Formats lists registered format names, sorted.
func Formats() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
