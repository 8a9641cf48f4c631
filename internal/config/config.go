// Package config loads editor settings from a TOML file. A missing file
// yields the defaults; a malformed file is an error the caller surfaces
// before the terminal is taken over.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the editor settings.
type Config struct {
	// TabWidth is the render width of a tab stop.
	TabWidth int `toml:"tab_width"`

	// QuitTimes is how many Ctrl-Q presses discard a dirty document.
	QuitTimes int `toml:"quit_times"`

	// AutoIndent carries leading whitespace onto new lines.
	AutoIndent bool `toml:"auto_indent"`

	// LineNumbers enables the gutter.
	LineNumbers bool `toml:"line_numbers"`

	// SyntaxDir is a directory of user-defined highlight profiles.
	SyntaxDir string `toml:"syntax_dir"`

	// LogFile receives diagnostic logging; empty disables logging.
	LogFile string `toml:"log_file"`

	// WatchFile enables the changed-on-disk notice for the open file.
	WatchFile bool `toml:"watch_file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TabWidth:    8,
		QuitTimes:   3,
		AutoIndent:  true,
		LineNumbers: true,
		WatchFile:   true,
	}
}

// DefaultPath returns the conventional config location, or "" when the
// user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "shim", "config.toml")
}

// Load reads settings from path, layered over the defaults. A missing
// file is not an error. An empty path loads pure defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ParseError{Path: path, Err: err}
	}
	cfg.normalize()
	return cfg, nil
}

// normalize pulls out-of-range values back to sane ones instead of
// failing startup.
func (c *Config) normalize() {
	if c.TabWidth < 1 {
		c.TabWidth = Default().TabWidth
	}
	if c.QuitTimes < 1 {
		c.QuitTimes = 1
	}
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
