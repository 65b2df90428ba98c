// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"seqstat/internal/output"
	"seqstat/pkg/api"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

func init() {
	Register(output.FormatJSONL, writeJSONL)
}

// StartRecordJSONLWriter streams each record as one JSON line (v1).
// The returned error channel yields exactly one value after in is closed.
// Broken pipes on the final flush are not reported.
func StartRecordJSONLWriter(out io.Writer, bufSize int) (chan<- api.RecordV1, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.RecordV1, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		var err error
		for rec := range in {
			if err != nil {
				continue // drain so senders never block
			}
			err = enc.Encode(rec)
		}
		if err == nil {
			err = bw.Flush()
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}

func writeJSONL(w io.Writer, rep api.ReportV1, _ Options) error {
	in, done := StartRecordJSONLWriter(w, 0)
	for _, rec := range output.Records(rep) {
		in <- rec
	}
	close(in)
	return <-done
}
