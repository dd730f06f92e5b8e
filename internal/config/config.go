// Package config loads the optional frameglass configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/frameglass/config.toml
// (~/.config/frameglass/config.toml when XDG_CONFIG_HOME is unset):
//
//	[solve]
//	strategy    = "greedy"
//	window      = 2000
//	pair_window = 100
//	pair_metric = "union"
//	landscapes  = "input"
//	chunk_size  = 0
//	workers     = 0
//
//	[cache]
//	backend    = "redis"   # file, redis or none
//	redis_addr = "localhost:6379"
//	namespace  = "ci"
//
// Zero values mean "not set"; command-line flags always take precedence.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	apperr "github.com/matzehuels/frameglass/pkg/errors"
)

const appName = "frameglass"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Backends lists the accepted cache backends.
var Backends = []string{BackendFile, BackendRedis, BackendNone}

// Config is the decoded configuration file.
type Config struct {
	Solve Solve `toml:"solve"`
	Cache Cache `toml:"cache"`
}

// Solve holds defaults for the solve command.
type Solve struct {
	Strategy   string `toml:"strategy"`
	Window     int    `toml:"window"`
	PairWindow int    `toml:"pair_window"`
	PairMetric string `toml:"pair_metric"`
	Landscapes string `toml:"landscapes"`
	ChunkSize  int    `toml:"chunk_size"`
	Workers    int    `toml:"workers"`
}

// Cache selects and configures the result cache.
type Cache struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	RedisPrefix   string `toml:"redis_prefix"`
	Namespace     string `toml:"namespace"` // prefixes every cache key
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads and validates the configuration file at path.
// A missing file is a FILE_NOT_FOUND error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// LoadDefault reads the file at [DefaultPath]. A missing file yields an
// empty configuration.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return &Config{}, nil
	}
	cfg, err := Load(path)
	if apperr.Is(err, apperr.ErrCodeFileNotFound) {
		return &Config{}, nil
	}
	return cfg, err
}

// Parse decodes and validates TOML configuration data.
// Unknown keys are rejected so typos do not pass silently.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, apperr.New(apperr.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and choices that do not depend on the
// solver. Solver option names are checked when the options are used.
func (c *Config) Validate() error {
	if c.Cache.Backend != "" {
		if err := apperr.ValidateChoice("cache backend", c.Cache.Backend, Backends); err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "[cache]")
		}
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		return apperr.New(apperr.ErrCodeInvalidConfig, "[cache] redis backend requires redis_addr")
	}
	for _, f := range []struct {
		name  string
		value int
	}{
		{"window", c.Solve.Window},
		{"pair_window", c.Solve.PairWindow},
		{"chunk_size", c.Solve.ChunkSize},
		{"workers", c.Solve.Workers},
	} {
		if err := apperr.ValidateNonNegative(f.name, f.value); err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "[solve]")
		}
	}
	return nil
}
