// Package config loads xdoc.toml, the per-project settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name searched for by Find.
const FileName = "xdoc.toml"

// Config mirrors xdoc.toml. Zero fields are filled from Default.
type Config struct {
	Scan        ScanConfig        `toml:"scan"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Cache       CacheConfig       `toml:"cache"`
	Output      OutputConfig      `toml:"output"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`
}

type ScanConfig struct {
	// Extensions of files visited by a directory scan, with the leading dot.
	Extensions []string `toml:"extensions"`
	// NameElements are elements whose `name` attribute is an identifier.
	NameElements []string `toml:"name_elements"`
	// Normalize applies Unicode NFC to file contents before scanning.
	Normalize bool `toml:"normalize"`
}

type DiagnosticsConfig struct {
	Max int `toml:"max"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type OutputConfig struct {
	Color  string `toml:"color"`  // auto|on|off
	Format string `toml:"format"` // pretty|short|json
}

// Default returns the settings used when no xdoc.toml exists.
func Default() Config {
	return Config{
		Scan: ScanConfig{
			Extensions:   []string{".cs"},
			NameElements: []string{"param", "paramref", "typeparam", "typeparamref"},
		},
		Diagnostics: DiagnosticsConfig{Max: 100},
		Cache:       CacheConfig{Enabled: false},
		Output:      OutputConfig{Color: "auto", Format: "pretty"},
	}
}

// Find walks up from startDir to locate xdoc.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds xdoc.toml above startDir and loads it; without one it
// returns Default.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load reads the file at path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(filepath.Dir(path), cfg.Cache.Dir)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Scan.Extensions) == 0 {
		return errors.New("[scan].extensions must not be empty")
	}
	for i, ext := range c.Scan.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return fmt.Errorf("[scan].extensions[%d] is empty", i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Scan.Extensions[i] = ext
	}
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("[diagnostics].max must be >= 0, got %d", c.Diagnostics.Max)
	}
	if !slices.Contains([]string{"auto", "on", "off"}, c.Output.Color) {
		return fmt.Errorf("[output].color must be auto|on|off, got %q", c.Output.Color)
	}
	if !slices.Contains([]string{"pretty", "short", "json"}, c.Output.Format) {
		return fmt.Errorf("[output].format must be pretty|short|json, got %q", c.Output.Format)
	}
	return nil
}
