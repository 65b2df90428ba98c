// internal/app/explore.go
package app

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"seqstat/internal/config"
	"seqstat/internal/report"
)

// Keys that "set" may change during an explore session.
var exploreKeys = []string{
	config.KeyWindowSize,
	config.KeyRegionWindowSize,
	config.KeyThreshold,
	config.KeyMotif,
	config.KeyRegionIndex,
	config.KeyWithSeq,
	config.KeyOutput,
	config.KeyNoHeader,
}

const exploreHelp = `commands:
  set <key> <value>   change a parameter (%s)
  show <section|all>  render a section (%s)
  params              print the current parameters
  help                this text
  quit                leave
`

func newExploreCmd(e *env) *cobra.Command {
	c := analysisCmd(e, "explore", "Interactively re-render sections while changing parameters")
	c.Long = `explore reads commands from stdin, one per line, and re-renders the
requested section after each parameter change. Results are memoized per
parameter set, so revisiting earlier settings is immediate. "show all"
behaves like the report command: the first failing section aborts the
whole document.`
	c.Example = "  printf 'show profile\\nset window-size 500\\nshow profile\\n' | seqstat explore genome.fa"
	c.RunE = func(cmd *cobra.Command, _ []string) error {
		if e.fromStdin {
			return usageError{fmt.Errorf("explore reads commands from stdin; give the sequence as a file or --sequence")}
		}
		return e.explore(cmd)
	}
	fs := c.Flags()
	windowFlag(fs)
	regionWindowFlag(fs)
	thresholdFlag(fs)
	motifFlags(fs)
	selectFlags(fs)
	return c
}

// explore runs the read-eval loop. Command errors are reported on stderr
// and the loop continues; only I/O failures and cancellation end it early.
func (e *env) explore(cmd *cobra.Command) error {
	ctx := cmd.Context()
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		quit, err := e.exploreLine(fields)
		if err != nil {
			if code := exitCode(err); code == exitIO || code == exitCanceled {
				return err
			}
			_, _ = fmt.Fprintf(e.errw, "error: %v\n", err)
		}
		if ferr := e.out.Flush(); ferr != nil {
			return ferr
		}
		if quit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	hits, misses := e.sess.CacheStats()
	e.log.WithFields(logrus.Fields{"hits": hits, "misses": misses}).Debug("memo stats")
	return nil
}

func (e *env) exploreLine(fields []string) (quit bool, err error) {
	switch cmd, args := fields[0], fields[1:]; cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		_, err = fmt.Fprintf(e.out, exploreHelp, strings.Join(exploreKeys, ", "), sectionNames())
	case "params":
		err = e.printParams()
	case "set":
		if len(args) != 2 {
			return false, usageError{fmt.Errorf("usage: set <key> <value>")}
		}
		err = e.set(args[0], args[1])
	case "show":
		if len(args) != 1 {
			return false, usageError{fmt.Errorf("usage: show <section|all>")}
		}
		if args[0] == "all" {
			return false, e.render()
		}
		sec, perr := report.ParseSection(args[0])
		if perr != nil {
			return false, usageError{perr}
		}
		err = e.render(sec)
	default:
		err = usageError{fmt.Errorf("unknown command %q (try help)", cmd)}
	}
	return false, err
}

// set applies one parameter through viper so values are decoded and
// validated exactly as flags and config files are. A rejected value
// leaves the previous configuration in place.
func (e *env) set(key, value string) error {
	allowed := false
	for _, k := range exploreKeys {
		if k == key {
			allowed = true
			break
		}
	}
	if !allowed {
		return usageError{fmt.Errorf("cannot set %q; settable keys: %s", key, strings.Join(exploreKeys, ", "))}
	}
	prev := e.v.Get(key)
	e.v.Set(key, value)
	cfg, err := config.Load(e.v)
	if err != nil {
		e.v.Set(key, prev)
		return usageError{err}
	}
	e.cfg = cfg
	e.log.WithField(key, value).Debug("parameter set")
	return nil
}

func (e *env) printParams() error {
	p := e.params()
	_, err := fmt.Fprintf(e.out,
		"%s=%d\n%s=%d\n%s=%g\n%s=%s\n%s=%d\n%s=%t\n%s=%s\n%s=%t\n",
		config.KeyWindowSize, p.WindowSize,
		config.KeyRegionWindowSize, p.RegionWindowSize,
		config.KeyThreshold, p.Threshold,
		config.KeyMotif, p.Motif,
		config.KeyRegionIndex, p.RegionIndex,
		config.KeyWithSeq, p.WithSeq,
		config.KeyOutput, e.cfg.Output,
		config.KeyNoHeader, e.cfg.NoHeader,
	)
	return err
}

func sectionNames() string {
	names := make([]string, 0, len(report.AllSections))
	for _, s := range report.AllSections {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
