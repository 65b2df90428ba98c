// internal/cliutil/cliutil.go
package cliutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNoInput is returned by One when neither a path nor an inline sequence was given.
var ErrNoInput = errors.New("no input: give a FASTA path, '-' for stdin, or --sequence")

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" {
			out = append(out, a)
			continue
		}
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %v", a, err)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no input matched %q", a)
			}
			out = append(out, m...)
		} else {
			out = append(out, a)
		}
	}
	return out, nil
}

// One expands posArgs and requires exactly one input path.
func One(posArgs []string) (string, error) {
	paths, err := ExpandPositionals(posArgs)
	if err != nil {
		return "", err
	}
	switch len(paths) {
	case 0:
		return "", ErrNoInput
	case 1:
		return paths[0], nil
	}
	return "", fmt.Errorf("expected one input, got %d (%s)", len(paths), strings.Join(paths, ", "))
}
