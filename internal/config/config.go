package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name
	AppName = "wordsearch"
	// ConfigFileName is the name of the config file (without extension)
	ConfigFileName = "wordsearch"
	// EnvPrefix is prepended to environment variable names
	EnvPrefix = "WORDSEARCH"
)

// ErrInvalidConfig is returned when a loaded setting is out of range
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the solver settings
type Config struct {
	Workers    int  `mapstructure:"workers"`     // Concurrent files and words (0 = one per CPU)
	Offset     int  `mapstructure:"offset"`      // Added to coordinates in output
	AllMatches bool `mapstructure:"all_matches"` // Default output mode
	CacheSize  int  `mapstructure:"cache_size"`  // Puzzles kept in the result cache
	Verbose    bool `mapstructure:"verbose"`     // Debug logging
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFilePath, when set, is the only config file read. It must exist.
	ConfigFilePath string
	// SearchDirs are searched for ConfigFileName.{yaml,toml,json}. Nil means
	// the working directory and the user config directory.
	SearchDirs []string
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		Workers:    0,
		Offset:     1,
		AllMatches: false,
		CacheSize:  256,
		Verbose:    false,
	}
}

// Load merges defaults, an optional config file and WORDSEARCH_*
// environment variables, in increasing order of precedence. It returns the
// config and the path of the file read, if any.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("offset", defaults.Offset)
	v.SetDefault("all_matches", defaults.AllMatches)
	v.SetDefault("cache_size", defaults.CacheSize)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath, err := readConfigFile(v, opts)
	if err != nil {
		return nil, "", err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, resolvedPath, nil
}

// readConfigFile loads the explicit file, or the first file found in the
// search directories. A missing file is only an error when explicit.
func readConfigFile(v *viper.Viper, opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if _, err := os.Stat(opts.ConfigFilePath); err != nil {
			return "", fmt.Errorf("config file not found: %s: %w", opts.ConfigFilePath, err)
		}
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("failed to read config file %s: %w", opts.ConfigFilePath, err)
		}
		return opts.ConfigFilePath, nil
	}

	dirs := opts.SearchDirs
	if dirs == nil {
		dirs = defaultSearchDirs()
	}
	if len(dirs) == 0 {
		return "", nil
	}

	v.SetConfigName(ConfigFileName)
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config file: %w", err)
	}

	return v.ConfigFileUsed(), nil
}

// defaultSearchDirs returns the working directory and the per-user config
// directory
func defaultSearchDirs() []string {
	dirs := []string{"."}
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, AppName))
	}
	return dirs
}

// Validate checks that every setting is in range
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Offset < 0 {
		return fmt.Errorf("%w: offset must be >= 0, got %d", ErrInvalidConfig, c.Offset)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: cache_size must be >= 0, got %d", ErrInvalidConfig, c.CacheSize)
	}
	return nil
}
