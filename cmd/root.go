// Package cmd is for command line interactions with the fqlink application
package cmd

import (
	"log"
	"os"

	"github.com/jgbaldwinbrown/fqlink/config"
	"github.com/jgbaldwinbrown/fqlink/logging/pkg"
	"github.com/jgbaldwinbrown/fqlink/runcmd/pkg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries what every subcommand needs once flags and settings are read.
type app struct {
	v      *viper.Viper
	conf   config.Config
	log    *logging.Logger
	runner runcmd.Runner
}

// load binds the flags of the command being run, so subcommands sharing a
// flag name do not overwrite each other's bindings.
func (a *app) load(cmd *cobra.Command) error {
	if e := a.v.BindPFlags(cmd.Flags()); e != nil {
		return e
	}
	path, _ := cmd.Flags().GetString("config")
	if e := config.Load(a.v, path); e != nil {
		return e
	}
	c, e := config.New(a.v)
	if e != nil {
		return e
	}
	lg, e := c.Logger()
	if e != nil {
		return e
	}
	a.conf = c
	a.log = lg
	return nil
}

// NewRootCmd builds the command tree. runner executes qiime and
// interop_summary.
func NewRootCmd(runner runcmd.Runner) *cobra.Command {
	a := &app{v: viper.New(), runner: runner}

	root := &cobra.Command{
		Use: "fqlink",
		Short: `Organise paired-end MiSeq reads named with OLC sample IDs
into a symlinked folder and import them into QIIME 2`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().String("config", "", "settings file (yaml, json or toml)")
	root.PersistentFlags().String("log-level", "info", "debug, info, warning or error")
	root.PersistentFlags().String("convention", "olc", "file naming convention (olc, olc-strict)")

	root.AddCommand(
		setupCmd(a),
		samplesCmd(a),
		interopCmd(a),
		readstatsCmd(a),
	)
	return root
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	root := NewRootCmd(runcmd.Exec{})
	root.SetOut(os.Stdout)
	if err := root.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
