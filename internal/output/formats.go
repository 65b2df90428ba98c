package output

// Output formats accepted by --output.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatJSONL  = "jsonl"
	FormatPretty = "pretty" // ASCII bar charts, one per section
)
