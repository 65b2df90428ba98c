// Package report assembles analysis sections for one sequence into the v1
// wire schema. A Session memoizes each section so repeated renders with the
// same parameters (the explore loop) skip recomputation.
package report

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"seqstat-core/composition"
	"seqstat-core/motif"
	"seqstat-core/region"
	"seqstat-core/sequence"
	"seqstat-core/window"
	"seqstat/internal/logging"
	"seqstat/internal/memo"
	"seqstat/internal/output"
	"seqstat/pkg/api"
)

// Section names a report block.
type Section string

const (
	Composition Section = "composition"
	Profile     Section = "profile"
	Regions     Section = "regions"
	Motif       Section = "motif"
	Selection   Section = "selection"
)

// AllSections is the dashboard order.
var AllSections = []Section{Composition, Profile, Regions, Motif, Selection}

// ParseSection maps a user-supplied name to a Section.
func ParseSection(s string) (Section, error) {
	for _, sec := range AllSections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", fmt.Errorf("unknown section %q", s)
}

// Params are the per-render analysis parameters.
type Params struct {
	WindowSize       int // profile and motif histogram
	RegionWindowSize int // classification and selection
	Threshold        float64
	Motif            string
	RegionIndex      int
	WithSeq          bool // attach the selected window's symbols
}

type key struct {
	digest  string
	section string
	size    int
	index   int
	thr     float64
	motif   string
}

// Session binds one sequence to a memo cache.
type Session struct {
	seq    *sequence.Sequence
	digest string
	cache  *memo.Cache[key, any]
	log    logrus.FieldLogger
}

// NewSession creates a session caching up to cacheSize sections (0 disables).
func NewSession(seq *sequence.Sequence, cacheSize int, log logrus.FieldLogger) *Session {
	if log == nil {
		log = logging.Discard()
	}
	return &Session{
		seq:    seq,
		digest: memo.Digest(seq.Symbols()),
		cache:  memo.New[key, any](cacheSize),
		log:    log,
	}
}

func (s *Session) Sequence() *sequence.Sequence { return s.seq }
func (s *Session) Digest() string                { return s.digest }

// CacheStats reports memo hits and misses so far.
func (s *Session) CacheStats() (hits, misses int) { return s.cache.Stats() }

func cached[T any](s *Session, k key, compute func() (T, error)) (T, error) {
	k.digest = s.digest
	if v, ok := s.cache.Get(k); ok {
		s.log.WithField("section", k.section).Debug("memo hit")
		return v.(T), nil
	}
	v, err := compute()
	if err != nil {
		return v, err
	}
	s.cache.Put(k, v)
	return v, nil
}

func (s *Session) Composition() (composition.Stats, error) {
	return cached(s, key{section: "composition"}, func() (composition.Stats, error) {
		return composition.Analyze(s.seq)
	})
}

func (s *Session) Profile(size int) ([]window.Point, error) {
	return cached(s, key{section: "profile", size: size}, func() ([]window.Point, error) {
		return window.Profile(s.seq, size)
	})
}

func (s *Session) Regions(size int, threshold float64) (window.Classification, error) {
	return cached(s, key{section: "regions", size: size, thr: threshold}, func() (window.Classification, error) {
		return window.Classify(s.seq, window.Options{Size: size, Threshold: threshold})
	})
}

func (s *Session) Motif(m string) (motif.Hits, error) {
	return cached(s, key{section: "motif", motif: m}, func() (motif.Hits, error) {
		return motif.FindAll(s.seq, m)
	})
}

func (s *Session) Histogram(m string, size int) ([]motif.Bin, error) {
	return cached(s, key{section: "histogram", motif: m, size: size}, func() ([]motif.Bin, error) {
		return motif.Histogram(s.seq, m, size)
	})
}

func (s *Session) Select(size, index int) (region.Region, error) {
	return cached(s, key{section: "selection", size: size, index: index}, func() (region.Region, error) {
		return region.Select(s.seq, size, index)
	})
}

// Build runs the requested sections (all when none are given) and returns
// them as one report. The first failing section aborts the build.
func (s *Session) Build(p Params, sections ...Section) (api.ReportV1, error) {
	if len(sections) == 0 {
		sections = AllSections
	}
	rep := api.ReportV1{Sequence: output.ToAPISequence(s.seq, s.digest)}
	for _, sec := range sections {
		if err := s.fill(&rep, p, sec); err != nil {
			return api.ReportV1{}, fmt.Errorf("%s: %w", sec, err)
		}
	}
	return rep, nil
}

func (s *Session) fill(rep *api.ReportV1, p Params, sec Section) error {
	switch sec {
	case Composition:
		st, err := s.Composition()
		if err != nil {
			return err
		}
		rep.Composition = output.ToAPIComposition(st)
	case Profile:
		pts, err := s.Profile(p.WindowSize)
		if err != nil {
			return err
		}
		rep.Profile = output.ToAPIProfile(p.WindowSize, pts)
	case Regions:
		cls, err := s.Regions(p.RegionWindowSize, p.Threshold)
		if err != nil {
			return err
		}
		rep.Regions = output.ToAPIRegions(p.RegionWindowSize, p.Threshold, cls)
	case Motif:
		m, err := motif.Normalize(p.Motif)
		if err != nil {
			return err
		}
		hits, err := s.Motif(m)
		if err != nil {
			return err
		}
		bins, err := s.Histogram(m, p.WindowSize)
		if err != nil {
			return err
		}
		rep.Motif = output.ToAPIMotif(hits, p.WindowSize, bins)
	case Selection:
		r, err := s.Select(p.RegionWindowSize, p.RegionIndex)
		if err != nil {
			return err
		}
		rep.Selection = output.ToAPISelection(p.RegionWindowSize, r, p.WithSeq)
	default:
		return fmt.Errorf("unknown section %q", sec)
	}
	return nil
}
