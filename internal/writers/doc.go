// Package writers turns analysis reports into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV blocks, JSON, JSONL).
//   - The core packages stay domain-only; the app layer only dispatches.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
