package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/solstats/internal/utils"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Column holds the values to summarize.
	Column string `mapstructure:"column" yaml:"column"`
	// ZeroSubstitute replaces exact zeros before any statistic is computed.
	ZeroSubstitute float64 `mapstructure:"zero_substitute" yaml:"zero_substitute"`
	// Delimiter for delimited text: "," | ";" | "tab". Empty means sniff by extension.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	// Format of the report: text | markdown | json.
	Format string `mapstructure:"format" yaml:"format"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() *Global {
	return &Global{
		Column:         "Solution",
		ZeroSubstitute: 0.1,
		Format:         "text",
	}
}

func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".solstats", "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.solstats/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := defaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Flags are applied by the caller.
// Env and file values are opt-in overrides; with neither present the defaults apply.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("SOLSTATS")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("column", d.Column)
	v.SetDefault("zero_substitute", d.ZeroSubstitute)
	v.SetDefault("delimiter", d.Delimiter)
	v.SetDefault("format", d.Format)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".solstats"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Column == "" {
		c.Column = d.Column
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects values the report cannot honour.
func (c *Global) Validate() error {
	if math.IsNaN(c.ZeroSubstitute) || c.ZeroSubstitute < 0 {
		return fmt.Errorf("invalid zero_substitute: %v (must be >= 0)", c.ZeroSubstitute)
	}
	switch strings.ToLower(strings.TrimSpace(c.Format)) {
	case "", "text", "markdown", "md", "json":
	default:
		return fmt.Errorf("invalid format: %s (use text|markdown|json)", c.Format)
	}
	switch c.Delimiter {
	case "", ",", ";", "\t", "tab":
	default:
		return fmt.Errorf("invalid delimiter: %q (use ','|';'|'tab')", c.Delimiter)
	}
	return nil
}
