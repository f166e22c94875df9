package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/metal3d/namesort/loader"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// SortConfig holds the options of the sort command. The yaml keys are the
// flag names so that a config file and print-config share one format.
type SortConfig struct {
	File         string `yaml:"file"`
	Max          int    `yaml:"max"`
	Natural      bool   `yaml:"natural"`
	Encoding     string `yaml:"encoding"`
	AllowMissing bool   `yaml:"allow-missing"`
	Verbose      bool   `yaml:"verbose"`
	JSONLogs     bool   `yaml:"json-logs"`
}

func defaultConfig() *SortConfig {
	return &SortConfig{
		File: "names.txt",
		Max:  loader.DefaultMax,
	}
}

func initializeViper(c *cobra.Command) error {
	v := viper.New()
	v.SetConfigName(".namesort")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	v.SetEnvPrefix("NAMESORT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return bindFlags(c, v)
}

// bindFlags copies config file and environment values into the flags the user
// did not set on the command line.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		name := f.Name
		if f.Changed || !v.IsSet(name) {
			return
		}
		// the flag parses the value, so bad types are reported like bad flags
		if err := cmd.Flags().Set(name, fmt.Sprintf("%v", v.Get(name))); err != nil {
			errs = append(errs, fmt.Errorf("config %s: %w", name, err))
		}
	})
	return errors.Join(errs...)
}

func printConfigFile(config *SortConfig, output ...io.Writer) error {
	var out io.Writer = os.Stdout
	if len(output) > 0 {
		out = output[0]
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(config); err != nil {
		return err
	}
	return enc.Close()
}
