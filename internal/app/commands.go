// internal/app/commands.go
package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"seqstat/internal/report"
	"seqstat/internal/version"
)

func analysisCmd(e *env, use, short string, sections ...report.Section) *cobra.Command {
	return &cobra.Command{
		Use:         use + " [FASTA|-]",
		Short:       short,
		Args:        sequenceArgs,
		Annotations: map[string]string{annSequence: "true"},
		RunE: func(*cobra.Command, []string) error {
			return e.render(sections...)
		},
	}
}

func newCompositionCmd(e *env) *cobra.Command {
	return analysisCmd(e, "composition", "Base counts, GC/AT content and adjacent pair counts", report.Composition)
}

func newProfileCmd(e *env) *cobra.Command {
	c := analysisCmd(e, "profile", "GC content of each complete window", report.Profile)
	windowFlag(c.Flags())
	return c
}

func newRegionsCmd(e *env) *cobra.Command {
	c := analysisCmd(e, "regions", "Windows whose GC or AT content exceeds the threshold", report.Regions)
	regionWindowFlag(c.Flags())
	thresholdFlag(c.Flags())
	return c
}

func newMotifCmd(e *env) *cobra.Command {
	c := analysisCmd(e, "motif", "Overlapping motif positions and per-window counts", report.Motif)
	c.Example = "  seqstat motif -m TATA -w 500 genome.fa"
	c.RunE = func(*cobra.Command, []string) error {
		rep, err := e.sess.Build(e.params(), report.Motif)
		if err != nil {
			return err
		}
		if rep.Motif.Occurrences == 0 {
			e.noMatch = true
			e.log.WithField("motif", rep.Motif.Motif).Info("no occurrences")
		}
		return e.write(rep)
	}
	windowFlag(c.Flags())
	motifFlags(c.Flags())
	return c
}

func newRegionCmd(e *env) *cobra.Command {
	c := analysisCmd(e, "region", "Base counts and proportions of one window", report.Selection)
	regionWindowFlag(c.Flags())
	selectFlags(c.Flags())
	return c
}

func newReportCmd(e *env) *cobra.Command {
	c := analysisCmd(e, "report", "Every section in one document")
	c.Aliases = []string{"all"}
	c.Long = `report renders composition, profile, regions, motif and selection as
one document. The document is all or nothing: if any section fails, no
output is written and the error names that section. The selection block
needs --region-index to address a complete window, so for sequences
shorter than --region-window-size (default 1000 bp) lower that flag or
use the single-section commands.`
	fs := c.Flags()
	windowFlag(fs)
	regionWindowFlag(fs)
	thresholdFlag(fs)
	motifFlags(fs)
	selectFlags(fs)
	return c
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "seqstat version %s\n", version.Version)
			return err
		},
	}
}
