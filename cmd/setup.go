package cmd

import (
	"fmt"

	"github.com/jgbaldwinbrown/fqlink/pairing/pkg"
	"github.com/jgbaldwinbrown/fqlink/project/pkg"
	"github.com/spf13/cobra"
)

func setupCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "setup",
		Short: "Create a QIIME 2 analysis folder from a MiSeq run",
		Long: `Create <output>/data with symlinks to every paired read of a valid OLC
sample in <input>, renamed with a dummy 00 barcode, write <output>/manifest.tsv
and import the data into <output>/qiime2/paired-sample-data.qza.

The output folder must not exist.`,
		Example: "  fqlink setup -i /mnt/miseq/180101_M01234 -o ~/analysis/run1",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.conf.Input == "" || a.conf.Output == "" {
				return fmt.Errorf("setup: --input and --output are required")
			}
			conv, e := a.conf.ConventionSpec()
			if e != nil {
				return e
			}
			o := project.Options{
				Convention: conv,
				Policy:     pairing.ParsePolicy(a.conf.KeepUnpaired),
				QiimeExe:   a.conf.Qiime,
				Interop:    a.conf.Interop,
				InteropExe: a.conf.InteropExe,
				Runner:     a.runner,
				Log:        a.log,
			}
			artifact, e := project.Setup(cmd.Context(), a.conf.Output, a.conf.Input, o)
			if e != nil {
				return e
			}
			fmt.Fprintln(cmd.OutOrStdout(), artifact)
			return nil
		},
	}
	c.Flags().StringP("input", "i", "", "directory of *.fastq.gz files")
	c.Flags().StringP("output", "o", "", "analysis folder to create")
	c.Flags().Bool("keep-unpaired", false, "keep samples without a reverse read in the registry (they are still not linked)")
	c.Flags().String("qiime", "qiime", "qiime executable")
	c.Flags().Bool("interop", false, "also save interop_summary output for the run")
	c.Flags().String("interop-exe", "interop_summary", "interop_summary executable")
	return c
}
