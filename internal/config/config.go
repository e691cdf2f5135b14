// Package config resolves settings from defaults, an optional pagegen.yaml,
// PAGEGEN_* environment variables and command-line flags, in increasing
// priority.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/3-lines-studio/pagegen/internal/core"
)

const (
	KeyRoot      = "root"
	KeyTemplates = "templates"
	KeyAddr      = "addr"
	KeyLogLevel  = "log_level"
	KeyJobs      = "jobs"
	KeyReload    = "reload"

	EnvPrefix = "PAGEGEN"
	FileName  = "pagegen"
)

type Config struct {
	Root      string `mapstructure:"root"`
	Templates string `mapstructure:"templates"`
	Addr      string `mapstructure:"addr"`
	LogLevel  string `mapstructure:"log_level"`
	Jobs      int    `mapstructure:"jobs"`
	Reload    bool   `mapstructure:"reload"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

func Default() Config {
	return Config{
		Root:      ".",
		Templates: core.DefaultTmplDir,
		Addr:      core.DefaultAddr,
		LogLevel:  "info",
		Jobs:      1,
		Reload:    true,
	}
}

// Load reads configuration. configFile may be empty, in which case
// pagegen.yaml in the working directory is used when present. flags may be
// nil; flags named after a key with dashes for underscores override it.
func Load(configFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(KeyRoot, def.Root)
	v.SetDefault(KeyTemplates, def.Templates)
	v.SetDefault(KeyAddr, def.Addr)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyJobs, def.Jobs)
	v.SetDefault(KeyReload, def.Reload)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{KeyRoot, KeyTemplates, KeyAddr, KeyLogLevel, KeyJobs, KeyReload} {
			flag := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configFile != "" {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}
	return cfg, nil
}
