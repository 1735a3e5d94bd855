package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/brackets/foundation/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{5 * time.Minute}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "5m0s" {
		t.Errorf("MarshalText() = %v, want 5m0s", string(result))
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.Name != "brackets" {
		t.Errorf("General.Name = %v, want brackets", cfg.General.Name)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %v, want warn", cfg.Log.Level)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("Log.Format = %v, want console", cfg.Log.Format)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %v, want text", cfg.Output.Format)
	}
	if !cfg.Output.Color {
		t.Error("Output.Color should default to true")
	}
	if cfg.Parser.MaxDepth != 0 || cfg.Parser.MaxInputLength != 0 {
		t.Errorf("parser limits = %d/%d, want unlimited", cfg.Parser.MaxDepth, cfg.Parser.MaxInputLength)
	}
	if cfg.Check.Timeout.Duration != 30*time.Second {
		t.Errorf("Check.Timeout = %v, want 30s", cfg.Check.Timeout.Duration)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "brackets.toml", `
[general]
name = "bracket-check"

[log]
level = "debug"
format = "json"

[parser]
max_depth = 32
max_input_length = 4096

[output]
format = "yaml"
color = false

[check]
timeout = "5s"
fail_fast = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "bracket-check" {
		t.Errorf("General.Name = %v", cfg.General.Name)
	}
	if cfg.General.Environment != "development" {
		t.Errorf("General.Environment = %v, want default", cfg.General.Environment)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Parser.MaxDepth != 32 || cfg.Parser.MaxInputLength != 4096 {
		t.Errorf("Parser = %+v", cfg.Parser)
	}
	if cfg.Output.Format != "yaml" || cfg.Output.Color {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Check.Timeout.Duration != 5*time.Second || !cfg.Check.FailFast {
		t.Errorf("Check = %+v", cfg.Check)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "brackets.yaml", `
log:
  level: info
parser:
  max_depth: 8
check:
  timeout: 1m
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %v, want info", cfg.Log.Level)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("Log.Format = %v, want default console", cfg.Log.Format)
	}
	if cfg.Parser.MaxDepth != 8 {
		t.Errorf("Parser.MaxDepth = %d, want 8", cfg.Parser.MaxDepth)
	}
	if !cfg.Output.Color {
		t.Error("Output.Color should stay true when not set")
	}
	if cfg.Check.Timeout.Duration != time.Minute {
		t.Errorf("Check.Timeout = %v, want 1m", cfg.Check.Timeout.Duration)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		code mdwerror.Code
	}{
		{"missing file", func(t *testing.T) string {
			return filepath.Join(t.TempDir(), "missing.toml")
		}, mdwerror.CodeNotFound},
		{"invalid toml", func(t *testing.T) string {
			return writeFile(t, "bad.toml", "[log\nlevel = ")
		}, mdwerror.CodeInvalidConfig},
		{"invalid yaml", func(t *testing.T) string {
			return writeFile(t, "bad.yml", "log: [unclosed")
		}, mdwerror.CodeInvalidConfig},
		{"invalid duration", func(t *testing.T) string {
			return writeFile(t, "dur.toml", "[check]\ntimeout = \"soon\"\n")
		}, mdwerror.CodeInvalidConfig},
		{"invalid level", func(t *testing.T) string {
			return writeFile(t, "level.toml", "[log]\nlevel = \"loud\"\n")
		}, mdwerror.CodeInvalidConfig},
		{"negative depth", func(t *testing.T) string {
			return writeFile(t, "depth.toml", "[parser]\nmax_depth = -1\n")
		}, mdwerror.CodeInvalidConfig},
		{"unknown output", func(t *testing.T) string {
			return writeFile(t, "out.toml", "[output]\nformat = \"xml\"\n")
		}, mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Load() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "brackets.toml", "[log]\nlevel = \"info\"\n[parser]\nmax_depth = 4\n")

	t.Setenv("BRACKETS_LOG_LEVEL", "trace")
	t.Setenv("BRACKETS_MAX_DEPTH", "16")
	t.Setenv("BRACKETS_MAX_INPUT_LENGTH", "100")
	t.Setenv("BRACKETS_OUTPUT", "json")
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "trace" {
		t.Errorf("Log.Level = %v, want trace", cfg.Log.Level)
	}
	if cfg.Parser.MaxDepth != 16 {
		t.Errorf("Parser.MaxDepth = %d, want 16", cfg.Parser.MaxDepth)
	}
	if cfg.Parser.MaxInputLength != 100 {
		t.Errorf("Parser.MaxInputLength = %d, want 100", cfg.Parser.MaxInputLength)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %v, want json", cfg.Output.Format)
	}
	if cfg.Output.Color {
		t.Error("NO_COLOR should disable color")
	}
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	path := writeFile(t, "brackets.toml", "")
	t.Setenv("BRACKETS_MAX_DEPTH", "deep")

	_, err := Load(path)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("Load() error = %v, want %v", err, mdwerror.CodeInvalidConfig)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := writeFile(t, "custom.toml", "[parser]\nmax_depth = 3\n")
		t.Setenv(EnvConfig, path)

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.Parser.MaxDepth != 3 {
			t.Errorf("Parser.MaxDepth = %d, want 3", cfg.Parser.MaxDepth)
		}
	})

	t.Run("missing explicit path", func(t *testing.T) {
		t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "nope.toml"))

		if _, err := LoadFromEnv(); err == nil {
			t.Error("LoadFromEnv() should fail for a missing explicit file")
		}
	})

	t.Run("defaults without file", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())
		t.Setenv("BRACKETS_MAX_DEPTH", "64")

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.Path() != "" {
			t.Errorf("Path() = %q, want empty", cfg.Path())
		}
		if cfg.Parser.MaxDepth != 64 {
			t.Errorf("Parser.MaxDepth = %d, want 64", cfg.Parser.MaxDepth)
		}
	})

	t.Run("default location", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(EnvConfig, "")
		t.Setenv("HOME", t.TempDir())
		t.Chdir(dir)
		if err := os.WriteFile(filepath.Join(dir, "brackets.yaml"), []byte("output:\n  format: yaml\n"), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.Output.Format != "yaml" {
			t.Errorf("Output.Format = %v, want yaml", cfg.Output.Format)
		}
	})
}
