// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"strings"

	"github.com/jgbaldwinbrown/fqlink/interop/pkg"
	"github.com/jgbaldwinbrown/fqlink/logging/pkg"
	"github.com/jgbaldwinbrown/fqlink/qiime/pkg"
	"github.com/jgbaldwinbrown/fqlink/sampleid/pkg"
	"github.com/spf13/viper"
)

const EnvPrefix = "FQLINK"

// Config is the root-level settings struct, a mix of the optional
// settings file, FQLINK_* environment variables and command line flags
type Config struct {
	// directory of *.fastq.gz files from the sequencer run
	Input string `mapstructure:"input"`

	// analysis folder to create
	Output string `mapstructure:"output"`

	// manifest written by a previous setup
	Manifest string `mapstructure:"manifest"`

	// naming convention used to find sample IDs and read markers
	Convention string `mapstructure:"convention"`

	// keep samples that only have a forward read in the registry
	KeepUnpaired bool `mapstructure:"keep-unpaired"`

	// external tools
	Qiime      string `mapstructure:"qiime"`
	Interop    bool   `mapstructure:"interop"`
	InteropExe string `mapstructure:"interop-exe"`

	// number of read files counted at once
	Threads int `mapstructure:"threads"`

	LogLevel string `mapstructure:"log-level"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("convention", sampleid.OLC.Name)
	v.SetDefault("qiime", qiime.DefaultExe)
	v.SetDefault("interop-exe", interop.DefaultExe)
	v.SetDefault("threads", 1)
	v.SetDefault("log-level", "info")
}

// Load reads the settings file at path (if any) and the environment into v.
func Load(v *viper.Viper, path string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if e := v.ReadInConfig(); e != nil {
		return fmt.Errorf("Load: %w", e)
	}
	return nil
}

// New returns a Config populated from v.
func New(v *viper.Viper) (Config, error) {
	var c Config
	if e := v.Unmarshal(&c); e != nil {
		return c, fmt.Errorf("unable to decode into struct, %w", e)
	}
	return c, nil
}

func (c Config) ConventionSpec() (sampleid.Convention, error) {
	return sampleid.Lookup(c.Convention)
}

func (c Config) Logger() (*logging.Logger, error) {
	level, e := logging.ParseLevel(c.LogLevel)
	if e != nil {
		return nil, e
	}
	return logging.Stderr(level), nil
}
