package cmd

import (
	"fmt"

	"github.com/jgbaldwinbrown/fqlink/manifest/pkg"
	"github.com/jgbaldwinbrown/fqlink/pairing/pkg"
	"github.com/spf13/cobra"
)

func samplesCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "samples",
		Short: "Print the QIIME 2 manifest of the read pairs in a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.conf.Input == "" {
				return fmt.Errorf("samples: --input is required")
			}
			conv, e := a.conf.ConventionSpec()
			if e != nil {
				return e
			}
			reg, e := pairing.BuildRegistry(a.conf.Input, conv, pairing.ParsePolicy(a.conf.KeepUnpaired), a.log)
			if e != nil {
				return e
			}
			return manifest.Write(cmd.OutOrStdout(), reg)
		},
	}
	c.Flags().StringP("input", "i", "", "directory of *.fastq.gz files")
	c.Flags().Bool("keep-unpaired", false, "report samples without a reverse read")
	return c
}
