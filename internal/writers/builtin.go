// internal/writers/builtin.go
package writers

import (
	"io"

	"seqstat/internal/output"
	"seqstat/pkg/api"
)

func init() {
	Register(output.FormatText, func(w io.Writer, rep api.ReportV1, opt Options) error {
		return output.WriteText(w, rep, opt.Header)
	})
	Register(output.FormatJSON, func(w io.Writer, rep api.ReportV1, _ Options) error {
		return output.WriteJSON(w, rep)
	})
}
