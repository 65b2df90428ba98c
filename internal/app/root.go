// internal/app/root.go
package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"seqstat-core/sequence"
	"seqstat/internal/cliutil"
	"seqstat/internal/config"
	"seqstat/internal/loader"
	"seqstat/internal/logging"
	"seqstat/internal/report"
	"seqstat/internal/version"
	"seqstat/internal/writers"
	"seqstat/pkg/api"
)

// annSequence marks commands that analyse an input sequence.
const annSequence = "seqstat/sequence"

// env is the state shared by the commands of one invocation.
type env struct {
	in   io.Reader
	out  *bufio.Writer
	errw io.Writer

	v    *viper.Viper
	cfg  config.Config
	log  *logrus.Logger
	sess *report.Session

	// inputs not mapped to config keys
	configPath string
	inline     string
	inlineID   string
	fromStdin  bool

	noMatch bool
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "seqstat",
		Short: "Composition, GC profile, motif and region statistics for one DNA sequence",
		Long: `seqstat reads a single DNA sequence (FASTA file, stdin, or --sequence)
and reports base composition, windowed GC content, GC/AT-rich regions,
motif occurrences and per-region base counts.`,
		Version:           version.Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: e.setup,
	}
	root.SetVersionTemplate("seqstat version {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.StringVar(&e.configPath, "config", "", "config file (yaml, toml or json)")
	pf.StringVarP(&e.inline, "sequence", "s", "", "analyse this raw sequence instead of a FASTA input")
	pf.StringVar(&e.inlineID, "id", "seq", "record id for --sequence")
	pf.StringP(config.KeyOutput, "o", "text", "output format: text | json | jsonl | pretty")
	pf.Bool(config.KeyNoHeader, false, "omit section markers and column headers (text)")
	pf.String(config.KeyLogLevel, "warn", "log level: debug | info | warn | error")
	pf.BoolP(config.KeyQuiet, "q", false, "only log errors")
	pf.Int(config.KeyCacheSize, 256, "memoized sections kept per sequence (0 disables)")

	root.AddCommand(
		newCompositionCmd(e),
		newProfileCmd(e),
		newRegionsCmd(e),
		newMotifCmd(e),
		newRegionCmd(e),
		newReportCmd(e),
		newExploreCmd(e),
		newVersionCmd(),
	)
	return root
}

// setup binds the running command's flags to viper, loads the config and,
// for analysis commands, the input sequence.
func (e *env) setup(cmd *cobra.Command, args []string) error {
	if err := cmd.Context().Err(); err != nil {
		return err
	}
	e.v = config.New()
	if err := e.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := config.ReadFile(e.v, e.configPath); err != nil {
		return usageError{err}
	}
	cfg, err := config.Load(e.v)
	if err != nil {
		return usageError{err}
	}
	e.cfg = cfg

	e.log, err = logging.New(e.errw, cfg.LogLevel, cfg.Quiet)
	if err != nil {
		return usageError{err}
	}
	if cmd.Annotations[annSequence] == "" {
		return nil
	}

	seq, err := e.loadSequence(args)
	if err != nil {
		return err
	}
	e.sess = report.NewSession(seq, cfg.CacheSize, e.log)
	e.log.WithFields(logrus.Fields{
		"id":     seq.ID(),
		"length": seq.Len(),
		"digest": e.sess.Digest()[:12],
	}).Info("sequence loaded")
	return nil
}

func (e *env) loadSequence(args []string) (*sequence.Sequence, error) {
	if e.inline != "" {
		if len(args) > 0 {
			return nil, usageError{fmt.Errorf("--sequence and input path %q are mutually exclusive", args[0])}
		}
		return loader.FromString(e.inlineID, "", e.inline)
	}
	path, err := cliutil.One(args)
	if err != nil {
		return nil, usageError{err}
	}
	if path != "-" {
		return loader.Load(path)
	}
	e.fromStdin = true
	seq, err := loader.Read(e.in)
	if err != nil {
		return nil, fmt.Errorf("stdin: %w", err)
	}
	return seq, nil
}

func (e *env) params() report.Params {
	return report.Params{
		WindowSize:       e.cfg.WindowSize,
		RegionWindowSize: e.cfg.RegionWindowSize,
		Threshold:        e.cfg.Threshold,
		Motif:            e.cfg.Motif,
		RegionIndex:      e.cfg.RegionIndex,
		WithSeq:          e.cfg.WithSeq,
	}
}

// render builds the requested sections and writes them in the configured format.
func (e *env) render(sections ...report.Section) error {
	rep, err := e.sess.Build(e.params(), sections...)
	if err != nil {
		return err
	}
	return e.write(rep)
}

func (e *env) write(rep api.ReportV1) error {
	return writers.Write(e.cfg.Output, e.out, rep, writers.Options{Header: e.cfg.Header()})
}

func sequenceArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

// Per-command analysis flags. Names double as config keys.

func windowFlag(fs *pflag.FlagSet) {
	fs.IntP(config.KeyWindowSize, "w", 1000, "window size for the GC profile and motif histogram (bp)")
}

func regionWindowFlag(fs *pflag.FlagSet) {
	fs.Int(config.KeyRegionWindowSize, 1000, "window size for region classification and selection (bp)")
}

func thresholdFlag(fs *pflag.FlagSet) {
	fs.Float64(config.KeyThreshold, 70, "GC/AT percentage a window must exceed to be reported")
}

func motifFlags(fs *pflag.FlagSet) {
	fs.StringP(config.KeyMotif, "m", "ATG", "motif to search (A, C, G, T)")
	fs.Int(config.KeyNoMatchExitCode, 0, "exit code when the motif has no occurrences")
}

func selectFlags(fs *pflag.FlagSet) {
	fs.IntP(config.KeyRegionIndex, "i", 0, "zero-based index of the region to inspect")
	fs.Bool(config.KeyWithSeq, false, "include the region's bases in the output")
}
