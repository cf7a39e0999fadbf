package cmd

import (
	"fmt"

	"github.com/jgbaldwinbrown/fqlink/interop/pkg"
	"github.com/spf13/cobra"
)

func interopCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "interop",
		Short: "Save the interop_summary of a run as interop_summary.csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.conf.Input == "" || a.conf.Output == "" {
				return fmt.Errorf("interop: --input and --output are required")
			}
			path, ok := interop.Summarize(cmd.Context(), a.runner, a.conf.InteropExe, a.conf.Input, a.conf.Output, a.log)
			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	c.Flags().StringP("input", "i", "", "run directory containing InterOp")
	c.Flags().StringP("output", "o", ".", "directory to write interop_summary.csv")
	c.Flags().String("interop-exe", "interop_summary", "interop_summary executable")
	return c
}
