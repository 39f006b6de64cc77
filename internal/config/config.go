package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a config value quill cannot use.
var ErrInvalid = errors.New("invalid config")

// Themes accepted for the markdown preview.
var Themes = []string{"dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night"}

// IDSchemes accepted for note identifiers.
var IDSchemes = []string{"uuid", "sequence"}

// LogLevels accepted for the log file.
var LogLevels = []string{"debug", "info", "warn", "error"}

const DefaultPreviewWidth = 20

// Config holds quill settings stored at ~/.quill/config.
type Config struct {
	Theme         string `yaml:"theme"`
	VimKeys       bool   `yaml:"vim_keys"`
	PreviewWidth  int    `yaml:"preview_width"`
	ConfirmDelete bool   `yaml:"confirm_delete"`
	IDScheme      string `yaml:"id_scheme"`
	LogFile       string `yaml:"log_file,omitempty"`
	LogLevel      string `yaml:"log_level,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Theme:         "dark",
		PreviewWidth:  DefaultPreviewWidth,
		ConfirmDelete: true,
		IDScheme:      "uuid",
		LogLevel:      "info",
	}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".quill", "config")
}

// Load reads and parses the config file. Keys missing from the file keep
// their defaults. Returns error if missing, writable by others, or invalid.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm&0022 != 0 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first unusable value.
func (c *Config) Validate() error {
	if !slices.Contains(Themes, c.Theme) {
		return fmt.Errorf("%w: theme %q (want one of %s)", ErrInvalid, c.Theme, strings.Join(Themes, ", "))
	}
	if !slices.Contains(IDSchemes, c.IDScheme) {
		return fmt.Errorf("%w: id_scheme %q (want one of %s)", ErrInvalid, c.IDScheme, strings.Join(IDSchemes, ", "))
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("%w: log_level %q (want one of %s)", ErrInvalid, c.LogLevel, strings.Join(LogLevels, ", "))
	}
	if c.PreviewWidth < 1 {
		return fmt.Errorf("%w: preview_width must be positive", ErrInvalid)
	}
	return nil
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (c *Config) normalize() {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.IDScheme = strings.ToLower(strings.TrimSpace(c.IDScheme))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.Theme == "" {
		c.Theme = "dark"
	}
	if c.IDScheme == "" {
		c.IDScheme = "uuid"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PreviewWidth == 0 {
		c.PreviewWidth = DefaultPreviewWidth
	}
}
