package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/pawnboard/foundation/core/error"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "PAWNBOARD_CONFIG"

// ErrNoConfigFile matches, via errors.Is, the error LoadFromEnv returns
// when no config file exists
var ErrNoConfigFile = mdwerror.New("no config file found").WithCode(mdwerror.CodeNotFound)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Shell   ShellConfig   `toml:"shell" yaml:"shell"`
	Server  ServerConfig  `toml:"server" yaml:"server"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	// LogFile is the log destination: empty for stderr, "-" to discard
	LogFile string `toml:"log_file" yaml:"log_file"`
}

// ShellConfig holds settings of the interactive board shell
type ShellConfig struct {
	ShowBoard     *bool  `toml:"show_board" yaml:"show_board"`
	MaxScrollback int    `toml:"max_scrollback" yaml:"max_scrollback"`
	Prompt        string `toml:"prompt" yaml:"prompt"`
}

// BoardVisible reports whether the board panel is shown
func (s ShellConfig) BoardVisible() bool {
	return s.ShowBoard == nil || *s.ShowBoard
}

// ServerConfig holds the remote console server configuration
type ServerConfig struct {
	Host            string   `toml:"host" yaml:"host"`
	Port            int      `toml:"port" yaml:"port"`
	ReadTimeout     Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout" yaml:"write_timeout"`
	MaxMessageBytes int64    `toml:"max_message_bytes" yaml:"max_message_bytes"`
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

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// configError wraps a failure of Load with CodeConfigError and the file path
func configError(err error, message, path string) *mdwerror.Error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeConfigError).
		WithOperation("load").
		WithDetail("path", path)
}

// Load loads configuration from a TOML or YAML file, selected by extension.
// All errors carry CodeConfigError.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, configError(err, "config file not found", path)
		}
		return nil, configError(err, "failed to read config", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, configError(err, "failed to parse config", path)
		}
	case ".toml", "":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, configError(err, "failed to parse config", path)
		}
	default:
		return nil, mdwerror.Newf("unsupported config format: %s", ext).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.General.LogFile = os.ExpandEnv(cfg.General.LogFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from the PAWNBOARD_CONFIG environment
// variable or the first existing default location. The error matches
// ErrNoConfigFile when neither exists.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerror.Newf("no config file found, set %s or create configs/config.toml", EnvConfigPath).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("load")
	}

	return Load(path)
}

// DefaultPaths returns the config locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{
		"./configs/config.toml",
		"./config.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config/pawnboard/config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "pawnboard"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Shell
	if c.Shell.MaxScrollback == 0 {
		c.Shell.MaxScrollback = 500
	}
	if c.Shell.Prompt == "" {
		c.Shell.Prompt = "> "
	}

	// Server
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8088
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 60 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 10 * time.Second
	}
	if c.Server.MaxMessageBytes == 0 {
		c.Server.MaxMessageBytes = 4096
	}
}

func invalid(key, format string, args ...interface{}) error {
	return mdwerror.Newf("%s: %s", key, fmt.Sprintf(format, args...)).
		WithCode(mdwerror.CodeConfigError).
		WithDetail("key", key)
}

// Validate checks value ranges. All problems are reported together, each
// with CodeConfigError.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.General.LogLevel) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		errs = append(errs, invalid("general.log_level", "unknown level %q", c.General.LogLevel))
	}
	switch strings.ToLower(c.General.LogFormat) {
	case "json", "text", "logfmt":
	default:
		errs = append(errs, invalid("general.log_format", "unknown format %q", c.General.LogFormat))
	}
	if c.Shell.MaxScrollback < 0 {
		errs = append(errs, invalid("shell.max_scrollback", "must not be negative, got %d", c.Shell.MaxScrollback))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, invalid("server.port", "out of range, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout.Duration < 0 || c.Server.WriteTimeout.Duration < 0 {
		errs = append(errs, invalid("server", "timeouts must not be negative"))
	}
	if c.Server.MaxMessageBytes < 0 {
		errs = append(errs, invalid("server.max_message_bytes", "must not be negative, got %d", c.Server.MaxMessageBytes))
	}

	if len(errs) > 0 {
		return mdwerror.Wrap(errors.Join(errs...), "invalid config").WithOperation("validate")
	}
	return nil
}
