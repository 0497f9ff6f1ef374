// Package config resolves xgx-resultgen settings from flags and environment.
//
// Precedence: command-line flag, then XGX_RESULTGEN_<NAME> environment
// variable, then the flag default.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"
)

// Error is the error class of everything this package returns.
var Error = errs.Class("config")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "XGX_RESULTGEN"

type Config struct {
	Catalog    string `mapstructure:"catalog"`
	Out        string `mapstructure:"out"`
	Package    string `mapstructure:"package"`
	Type       string `mapstructure:"type"`
	Underlying string `mapstructure:"underlying"`
	Debug      bool   `mapstructure:"debug"`
	Verbose    bool   `mapstructure:"verbose"`
}

// FlagSet returns the flags understood by Load.
func FlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("catalog", "c", "", "path to the YAML code catalog (required)")
	fs.StringP("out", "o", "", "output file; stdout when empty")
	fs.String("package", "", "override the catalog's package name")
	fs.String("type", "", "override the catalog's code type name")
	fs.String("underlying", "int", "integer kind of the generated code type")
	fs.Bool("debug", false, "enable debug logging")
	fs.Bool("verbose", false, "enable verbose logging")
	return fs
}

// Load parses args into fs and resolves the configuration. A request for help
// returns pflag.ErrHelp unwrapped.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil, err
		}
		return nil, Error.Wrap(err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, Error.New("bind flags: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, Error.New("unmarshal: %w", err)
	}
	if cfg.Catalog == "" {
		return nil, Error.New("--catalog is required")
	}
	return cfg, nil
}
