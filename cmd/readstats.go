package cmd

import (
	"fmt"

	"github.com/jgbaldwinbrown/fqlink/manifest/pkg"
	"github.com/jgbaldwinbrown/fqlink/pairing/pkg"
	"github.com/jgbaldwinbrown/fqlink/readstats/pkg"
	"github.com/spf13/cobra"
)

func (a *app) registry() (pairing.Registry, error) {
	if a.conf.Manifest != "" {
		return manifest.ReadPath(a.conf.Manifest)
	}
	if a.conf.Input == "" {
		return nil, fmt.Errorf("one of --input or --manifest is required")
	}
	conv, e := a.conf.ConventionSpec()
	if e != nil {
		return nil, e
	}
	return pairing.BuildRegistry(a.conf.Input, conv, pairing.DropUnpaired, a.log)
}

func readstatsCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "readstats",
		Short: "Count reads and bases of every read pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, e := a.registry()
			if e != nil {
				return fmt.Errorf("readstats: %w", e)
			}
			counts, e := readstats.Collect(cmd.Context(), reg, a.conf.Threads, a.log)
			if e != nil {
				return fmt.Errorf("readstats: %w", e)
			}
			s, e := readstats.Summarize(counts)
			if e != nil {
				return fmt.Errorf("readstats: %w", e)
			}
			out, _ := cmd.Flags().GetString("out")
			if out == "-" {
				return readstats.Write(cmd.OutOrStdout(), counts, s)
			}
			return readstats.WritePath(out, counts, s)
		},
	}
	c.Flags().StringP("input", "i", "", "directory of *.fastq.gz files")
	c.Flags().StringP("manifest", "m", "", "manifest.tsv written by setup or samples")
	c.Flags().IntP("threads", "t", 1, "read files counted at once")
	c.Flags().String("out", "-", "report path (.gz to compress, - for stdout)")
	return c
}
