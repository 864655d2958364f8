// Package config loads polygen settings from config files, POLYGEN_*
// environment variables and command line flags.
package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/generator"
	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/output"
	"github.com/toyz/polygen/internal/utils"
)

// Frameworks are the web frameworks the render service can run on.
var Frameworks = []string{"gin", "echo", "fiber"}

// Config holds every polygen setting.
type Config struct {
	Language  string              `mapstructure:"language"`
	Workers   int                 `mapstructure:"workers"`
	HeaderDir string              `mapstructure:"header_dir"`
	Preferred map[string][]string `mapstructure:"preferred_prefixes"`

	Output OutputConfig `mapstructure:"output"`
	Go     GoConfig     `mapstructure:"go"`
	Server ServerConfig `mapstructure:"server"`
	Watch  WatchConfig  `mapstructure:"watch"`
	Log    LogConfig    `mapstructure:"log"`
}

// OutputConfig controls where generated files go.
type OutputConfig struct {
	Dir      string `mapstructure:"dir"`
	Stdout   bool   `mapstructure:"stdout"`
	Encoding string `mapstructure:"encoding"`
}

// GoConfig holds Go target settings.
type GoConfig struct {
	Tidy bool `mapstructure:"tidy"`
}

// ServerConfig configures the HTTP render service.
type ServerConfig struct {
	Framework string `mapstructure:"framework"`
	Addr      string `mapstructure:"addr"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	JSON    bool `mapstructure:"json"`
	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("language", "java")
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("header_dir", "")

	v.SetDefault("output.dir", "generated")
	v.SetDefault("output.stdout", false)
	v.SetDefault("output.encoding", "")

	v.SetDefault("go.tidy", true)

	v.SetDefault("server.framework", "gin")
	v.SetDefault("server.addr", ":8080")

	v.SetDefault("watch.debounce", 200*time.Millisecond)

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbose", false)
}

// NewViper creates a viper instance with defaults, POLYGEN_* environment
// binding and, when present, a config file. configFile selects an explicit
// file; otherwise polygen.{toml,yaml,json} is searched in the working
// directory and $HOME/.config/polygen.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("POLYGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("polygen")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "polygen"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !stderrors.As(err, &notFound) {
			return nil, errors.WrapConfigurationError(configFile, "read", err)
		}
	}
	return v, nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapConfigurationError("polygen", "unmarshal", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown languages, frameworks and encodings and
// non-positive worker counts.
func (c *Config) Validate() error {
	checks := []error{
		utils.Custom("language", "unknown language", validLanguage)(c.Language),
		utils.AtLeast("workers", 1)(c.Workers),
		utils.IsOneOf("server.framework", Frameworks...)(strings.ToLower(c.Server.Framework)),
		utils.Optional(utils.Custom("output.encoding", "unknown character set", func(name string) bool {
			_, err := output.LookupEncoding(name)
			return err == nil
		}))(c.Output.Encoding),
		utils.Custom("watch.debounce", "cannot be negative", func(d time.Duration) bool { return d >= 0 })(c.Watch.Debounce),
	}
	for name := range c.Preferred {
		checks = append(checks, utils.Custom("preferred_prefixes", "unknown language "+name, validLanguage)(name))
	}
	if err := utils.FirstError(checks...); err != nil {
		return errors.WrapConfigurationError("polygen", "validate", err).
			WithSuggestion("check polygen.yaml, POLYGEN_* variables and command line flags")
	}
	return nil
}

func validLanguage(name string) bool {
	_, err := lang.Parse(name)
	return err == nil
}

// Target returns the configured target language.
func (c *Config) Target() (lang.Language, error) {
	return lang.Parse(c.Language)
}

// GeneratorOptions maps the configuration onto generator options.
func (c *Config) GeneratorOptions() (generator.Options, error) {
	opts := generator.Options{
		HeaderDir: c.HeaderDir,
		GoTidy:    c.Go.Tidy,
		Workers:   c.Workers,
	}
	if len(c.Preferred) > 0 {
		opts.Preferred = make(map[lang.Language][]string, len(c.Preferred))
		for name, prefixes := range c.Preferred {
			l, err := lang.Parse(name)
			if err != nil {
				return generator.Options{}, err
			}
			opts.Preferred[l] = prefixes
		}
	}
	return opts, nil
}
