// internal/writers/pretty.go
package writers

import (
	"io"

	"seqstat/internal/output"
	"seqstat/internal/pretty"
	"seqstat/pkg/api"
)

func init() {
	Register(output.FormatPretty, func(w io.Writer, rep api.ReportV1, _ Options) error {
		return pretty.Render(w, rep, pretty.DefaultOptions)
	})
}
