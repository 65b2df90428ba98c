// Package loader turns sequence files and inline strings into validated
// sequences. FASTA records are parsed by biogo; the loader only picks the
// single record, uppercases it and hands it to sequence.New.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"seqstat-core/sequence"
)

var (
	ErrNoRecord        = errors.New("no sequence record")
	ErrMultipleRecords = errors.New("expected exactly one sequence record")
)

// FromString builds a sequence from raw text, dropping whitespace and
// uppercasing. Characters outside ATGC fail with sequence.ErrInvalidAlphabet.
func FromString(id, description, raw string) (*sequence.Sequence, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return sequence.New(id, description, b.String())
}

// Load opens path (see Open) and reads its single record.
func Load(path string) (*sequence.Sequence, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	s, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Read parses exactly one FASTA record from r. Input that does not start
// with '>' is taken as a bare sequence without id or description.
func Read(r io.Reader) (*sequence.Sequence, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err == io.EOF {
		return nil, ErrNoRecord
	} else if err != nil {
		return nil, err
	}
	if first != '>' {
		raw, err := io.ReadAll(br)
		if err != nil {
			return nil, err
		}
		return FromString("", "", string(raw))
	}

	fr := fasta.NewReader(br, linear.NewSeq("", nil, alphabet.DNA))
	rec, err := fr.Read()
	if err == io.EOF {
		return nil, ErrNoRecord
	} else if err != nil {
		return nil, fmt.Errorf("fasta: %w", err)
	}
	if _, err := fr.Read(); err == nil {
		return nil, ErrMultipleRecords
	} else if err != io.EOF {
		return nil, fmt.Errorf("fasta: %w", err)
	}

	ls, ok := rec.(*linear.Seq)
	if !ok {
		return nil, fmt.Errorf("fasta: unexpected record type %T", rec)
	}
	buf := make([]byte, len(ls.Seq))
	for i, l := range ls.Seq {
		buf[i] = byte(l)
	}
	return FromString(ls.Name(), ls.Description(), string(buf))
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.Peek(1)
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(rune(b[0])) {
			return b[0], nil
		}
		if _, err := br.ReadByte(); err != nil {
			return 0, err
		}
	}
}
