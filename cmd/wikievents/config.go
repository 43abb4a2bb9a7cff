package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/growler/go-wiki"
	"github.com/growler/go-wiki/markdown"
	"github.com/spf13/viper"
)

// Config is read from wikievents.yaml and WIKIEVENTS_* environment variables.
type Config struct {
	Chain    ChainConfig    `mapstructure:"chain"`
	Markdown MarkdownConfig `mapstructure:"markdown"`
	Output   OutputConfig   `mapstructure:"output"`
}

// ChainConfig lists the stages events are run through, in order.
type ChainConfig struct {
	Listeners []string `mapstructure:"listeners"`
}

type MarkdownConfig struct {
	Extensions []string `mapstructure:"extensions"`
}

// OutputConfig selects the event stream format: json or text.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

const (
	FormatJSON = "json"
	FormatText = "text"
)

// GetConfigDir returns the directory searched for wikievents.yaml.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "wikievents"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wikievents"), nil
}

// LoadConfig reads the configuration. An explicit file must exist; otherwise
// a missing config file leaves the defaults in place.
func LoadConfig(file string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("wikievents")
		if dir, err := GetConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("wikievents")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("chain.listeners", wiki.DefaultConf.Listeners)
	v.SetDefault("markdown.extensions", markdown.DefaultExtensions)
	v.SetDefault("output.format", FormatJSON)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the stage, extension and format names.
func (c *Config) Validate() error {
	if _, err := c.Conf().Chain(nil); err != nil {
		return err
	}
	if _, err := markdown.ExtensionsByName(c.Markdown.Extensions); err != nil {
		return err
	}
	switch c.Output.Format {
	case FormatJSON, FormatText:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	return nil
}

func (c *Config) Conf() wiki.Conf {
	return wiki.Stages(c.Chain.Listeners...)
}

func (c *Config) Parser() (*markdown.Parser, error) {
	ext, err := markdown.ExtensionsByName(c.Markdown.Extensions)
	if err != nil {
		return nil, err
	}
	return markdown.New(markdown.WithExtensions(ext...)), nil
}
