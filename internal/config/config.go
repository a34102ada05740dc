package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// DataPath is the dataset file; empty selects the bundled dataset.
	DataPath string `mapstructure:"data_path" yaml:"data_path"`
	// Format is the default output format (html|markdown|text|json|yaml).
	Format string `mapstructure:"format" yaml:"format"`
	// Output is the default output file; empty writes to stdout.
	Output   string   `mapstructure:"output" yaml:"output"`
	Features []string `mapstructure:"features" yaml:"features"`
	// GroupBy names the class indicator field.
	GroupBy     string `mapstructure:"group_by" yaml:"group_by"`
	ClassPrefix string `mapstructure:"class_prefix" yaml:"class_prefix"`
	Color       bool   `mapstructure:"color" yaml:"color"`
}

// Dir returns the configuration directory, ~/.winestats.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".winestats"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.winestats/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("WINESTATS")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data_path", "")
	v.SetDefault("format", "html")
	v.SetDefault("output", "")
	v.SetDefault("features", []string{"flavanoids", "gamma"})
	v.SetDefault("group_by", "Alcohol")
	v.SetDefault("class_prefix", "Class ")
	v.SetDefault("color", true)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
