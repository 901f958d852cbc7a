// Package config loads isbn settings from an optional TOML file and the
// environment.
//
// Precedence, lowest first: Defaults, the config file, ISBN_* environment
// variables. Command-line flags are applied on top by the cli package.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/isbnkit/pkg/errors"
	"github.com/matzehuels/isbnkit/pkg/isbn"
)

const appName = "isbn"

// Environment variables applied over the file.
const (
	EnvEntropy  = "ISBN_ENTROPY"
	EnvSeed     = "ISBN_SEED"
	EnvOutput   = "ISBN_OUTPUT"
	EnvLogLevel = "ISBN_LOG_LEVEL"
	EnvLogFile  = "ISBN_LOG_FILE"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var (
	// OutputFormats lists the accepted output names.
	OutputFormats = []string{OutputText, OutputJSON, OutputYAML}

	// LogLevels lists the accepted log level names.
	LogLevels = []string{"debug", "info", "warn", "error"}
)

// Config holds user settings.
type Config struct {
	Entropy string    `toml:"entropy"`
	Seed    uint64    `toml:"seed"`
	Output  string    `toml:"output"`
	Log     LogConfig `toml:"log"`
}

// LogConfig controls diagnostics. File enables a size-rotated log file.
type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Entropy: isbn.EntropySystem,
		Output:  OutputText,
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Path returns the default config file location using the XDG standard
// (~/.config/isbn/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path, or the default location when path is
// empty, then applies environment overrides and validates the result.
//
// A missing default file yields the defaults; a missing explicit file is an
// error.
func Load(path string) (Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "resolve config path")
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err) && !explicit:
	case err != nil:
		return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config %s", path)
	default:
		if err := decode(data, &cfg); err != nil {
			return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse config %s", path)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	cfg.canonicalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// decode unmarshals data over cfg and rejects keys Config does not define.
func decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvEntropy); ok {
		cfg.Entropy = v
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "%s must be an unsigned integer", EnvSeed)
		}
		cfg.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvOutput); ok {
		cfg.Output = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.Log.File = v
	}
	return nil
}

// canonicalize lower-cases and trims the enumerated settings, so the stored
// values match the names the engine and logger parse.
func (c *Config) canonicalize() {
	for _, p := range []*string{&c.Entropy, &c.Output, &c.Log.Level} {
		*p = strings.ToLower(strings.TrimSpace(*p))
	}
}

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	checks := []struct {
		name, value string
		allowed     []string
	}{
		{"entropy source", c.Entropy, isbn.EntropyNames},
		{"output format", c.Output, OutputFormats},
		{"log level", c.Log.Level, LogLevels},
	}
	for _, ch := range checks {
		if err := errs.ValidateOption(ch.name, ch.value, ch.allowed); err != nil {
			return errs.New(errs.ErrCodeInvalidConfig, "invalid configuration: %s", errs.UserMessage(err))
		}
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "log rotation limits must not be negative")
	}
	return nil
}

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write stores c at path, creating parent directories. An existing file is
// only replaced when overwrite is set.
func Write(path string, c Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errs.New(errs.ErrCodeInvalidConfig, "config %s already exists", path)
		}
	}
	data, err := c.Encode()
	if err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "create config dir")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "write config %s", path)
	}
	return nil
}
