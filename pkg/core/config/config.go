package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/brackets/foundation/core/error"
)

// EnvConfig names the variable that points at the config file
const EnvConfig = "BRACKETS_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Check   CheckConfig   `toml:"check" yaml:"check"`

	// path is the file the configuration was read from, empty for defaults
	path string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	Caller bool   `toml:"caller" yaml:"caller"`
}

// ParserConfig holds parser limits. 0 means unlimited.
type ParserConfig struct {
	MaxInputLength int `toml:"max_input_length" yaml:"max_input_length"`
	MaxDepth       int `toml:"max_depth" yaml:"max_depth"`
}

// OutputConfig holds CLI output settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Color  bool   `toml:"color" yaml:"color"`
}

// CheckConfig holds case file runner settings
type CheckConfig struct {
	Timeout  Duration `toml:"timeout" yaml:"timeout"`
	FailFast bool     `toml:"fail_fast" yaml:"fail_fast"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.Output.Color = true
	cfg.applyDefaults()
	return cfg
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// Load loads configuration from a TOML or YAML file. The format is chosen by
// file extension; anything other than .yaml or .yml is read as TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Newf("config file not found: %s", path).
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg := &Config{path: path}
	cfg.Output.Color = true

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from the BRACKETS_CONFIG environment
// variable or the first default location that exists. Without any file the
// defaults are returned, with environment overrides applied.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		for _, p := range defaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path != "" {
		return Load(path)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultPaths() []string {
	paths := []string{
		"./configs/brackets.toml",
		"./brackets.toml",
		"./brackets.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config/brackets/config.toml"),
			filepath.Join(home, ".config/brackets/config.yaml"),
		)
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "brackets"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}

	// Check
	if c.Check.Timeout.Duration == 0 {
		c.Check.Timeout.Duration = 30 * time.Second
	}
}

// applyEnv applies BRACKETS_* environment overrides
func (c *Config) applyEnv() error {
	if v := os.Getenv("BRACKETS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("BRACKETS_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("BRACKETS_OUTPUT"); v != "" {
		c.Output.Format = v
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Output.Color = false
	}

	ints := []struct {
		name   string
		target *int
	}{
		{"BRACKETS_MAX_DEPTH", &c.Parser.MaxDepth},
		{"BRACKETS_MAX_INPUT_LENGTH", &c.Parser.MaxInputLength},
	}
	for _, e := range ints {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return mdwerror.Wrap(err, fmt.Sprintf("invalid value for %s", e.name)).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.applyEnv").
				WithDetail("value", v)
		}
		*e.target = n
	}

	return nil
}

// Validate checks that all values are usable
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}) error {
		return mdwerror.Newf("invalid %s: %v", field, value).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("field", field)
	}

	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "audit":
	default:
		return invalid("log.level", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text", "console", "logfmt":
	default:
		return invalid("log.format", c.Log.Format)
	}
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return invalid("output.format", c.Output.Format)
	}
	if c.Parser.MaxDepth < 0 {
		return invalid("parser.max_depth", c.Parser.MaxDepth)
	}
	if c.Parser.MaxInputLength < 0 {
		return invalid("parser.max_input_length", c.Parser.MaxInputLength)
	}
	if c.Check.Timeout.Duration < 0 {
		return invalid("check.timeout", c.Check.Timeout)
	}
	return nil
}
