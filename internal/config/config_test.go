package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/isbnkit/pkg/errors"
)

// isolate points the default config location at an empty temp dir and
// clears ISBN_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{EnvEntropy, EnvSeed, EnvOutput, EnvLogLevel, EnvLogFile} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Defaults() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Defaults())
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.toml"))
	if !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("Load() error = %v, want %s", err, errs.ErrCodeInvalidConfig)
	}
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "isbn", "config.toml"), `
entropy = "pseudo"
seed = 42
output = "json"

[log]
level = "debug"
file = "/tmp/isbn.log"
max_backups = 1
`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Config{
		Entropy: "pseudo",
		Seed:    42,
		Output:  "json",
		Log:     LogConfig{Level: "debug", File: "/tmp/isbn.log", MaxSizeMB: 10, MaxBackups: 1},
	}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, `output = "json"`)

	t.Setenv(EnvOutput, "yaml")
	t.Setenv(EnvEntropy, "secure")
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFile, "isbn.log")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output != "yaml" || cfg.Entropy != "secure" || cfg.Seed != 7 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.Log.Level != "warn" || cfg.Log.File != "isbn.log" {
		t.Errorf("log env overrides not applied: %+v", cfg.Log)
	}
}

func TestLoadCanonicalizesNames(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, "output = \" JSON \"\n[log]\nlevel = \"Debug\"\n")

	t.Setenv(EnvEntropy, " Secure ")
	t.Setenv(EnvLogLevel, " WARN ")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Entropy != "secure" {
		t.Errorf("Entropy = %q, want %q", cfg.Entropy, "secure")
	}
	if cfg.Output != "json" {
		t.Errorf("Output = %q, want %q", cfg.Output, "json")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{"syntax", `entropy = `, nil},
		{"unknown key", `colour = "blue"`, nil},
		{"unknown nested key", "[log]\nrotate = true", nil},
		{"bad entropy", `entropy = "dice"`, nil},
		{"bad output", `output = "xml"`, nil},
		{"bad level", "[log]\nlevel = \"loud\"", nil},
		{"negative rotation", "[log]\nmax_size_mb = -1", nil},
		{"bad seed env", ``, map[string]string{EnvSeed: "-3"}},
		{"bad output env", ``, map[string]string{EnvOutput: "csv"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "config.toml")
			writeFile(t, path, tt.content)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(path)
			if !errs.Is(err, errs.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want %s", err, errs.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	got, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/xdg", "isbn", "config.toml"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := Defaults()
	cfg.Entropy = "pseudo"
	cfg.Seed = 9
	if err := Write(path, cfg, false); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}

	err = Write(path, cfg, false)
	if !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("second Write() error = %v, want %s", err, errs.ErrCodeInvalidConfig)
	}
	if err := Write(path, cfg, true); err != nil {
		t.Errorf("overwrite Write() error = %v", err)
	}
}

func TestEncode(t *testing.T) {
	data, err := Defaults().Encode()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`entropy = "system"`, `output = "text"`, "[log]", `level = "info"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Encode() missing %q in:\n%s", want, data)
		}
	}
}
