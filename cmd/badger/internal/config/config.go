// Package config loads badger.yaml, the optional project configuration that
// names badge styles and the screen density to render them at.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/badger/pkg/badge"
	badgeerrors "github.com/go-drift/badger/pkg/errors"
	"github.com/go-drift/badger/pkg/graphics"
	"github.com/go-drift/badger/pkg/layout"
)

// FileName is the configuration file looked up in the project root.
const FileName = "badger.yaml"

// SchemaMajor is the configuration major version this build understands.
const SchemaMajor = "v1"

// Environment overrides.
const (
	EnvConfig  = "BADGER_CONFIG"
	EnvDensity = "BADGER_DENSITY"
)

// Config represents badger.yaml.
type Config struct {
	Version string                 `yaml:"version,omitempty"`
	Density DensityConfig          `yaml:"density,omitempty"`
	Styles  map[string]StyleConfig `yaml:"styles,omitempty"`
}

// DensityConfig holds the pixel ratios used for dip and sp conversion.
type DensityConfig struct {
	Density float64 `yaml:"density,omitempty"`
	Scaled  float64 `yaml:"scaled,omitempty"`
}

// StyleConfig describes one named badge. Sizes are in dip, text size in sp
// and margins in pixels.
type StyleConfig struct {
	Shape      string       `yaml:"shape,omitempty"`
	Width      int          `yaml:"width,omitempty"`
	Height     int          `yaml:"height,omitempty"`
	Gravity    string       `yaml:"gravity,omitempty"`
	Margin     MarginConfig `yaml:"margin,omitempty"`
	TextSize   int          `yaml:"text_size,omitempty"`
	TextColor  string       `yaml:"text_color,omitempty"`
	Background string       `yaml:"background,omitempty"`
	GrowText   bool         `yaml:"grow_text,omitempty"`
}

// MarginConfig is a per-side margin in pixels.
type MarginConfig struct {
	Left   int `yaml:"left,omitempty"`
	Top    int `yaml:"top,omitempty"`
	Right  int `yaml:"right,omitempty"`
	Bottom int `yaml:"bottom,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root        string
	Path        string
	ProjectName string
	Density     layout.Density
	Styles      map[string]StyleConfig
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("config.Load", fmt.Errorf("failed to read %s: %w", path, err))
	}
	return Parse(data)
}

// LoadOptional reads badger.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes and validates configuration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configError("config.Parse", fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the schema version and every style.
func (c *Config) Validate() error {
	if c.Version != "" {
		if !semver.IsValid(c.Version) {
			return configError("config.Validate", fmt.Errorf("version %q is not a semantic version", c.Version))
		}
		if major := semver.Major(c.Version); major != SchemaMajor {
			return configError("config.Validate", fmt.Errorf("unsupported config version %s (want %s.x)", c.Version, SchemaMajor))
		}
	}
	if c.Density.Density < 0 || c.Density.Scaled < 0 {
		return configError("config.Validate", fmt.Errorf("density must not be negative"))
	}
	for _, name := range c.StyleNames() {
		if _, err := c.Styles[name].builder(layout.DefaultDensity); err != nil {
			return configError("config.Validate", fmt.Errorf("style %q: %w", name, err))
		}
	}
	return nil
}

// StyleNames returns the configured style names in sorted order.
func (c *Config) StyleNames() []string {
	names := make([]string, 0, len(c.Styles))
	for name := range c.Styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve loads the configuration for the project in dir and applies
// defaults and environment overrides. If BADGER_CONFIG is set it names the
// file to load instead of dir/badger.yaml.
func Resolve(dir string) (*Resolved, error) {
	path := filepath.Join(dir, FileName)
	var (
		cfg *Config
		err error
	)
	if override := strings.TrimSpace(os.Getenv(EnvConfig)); override != "" {
		path = override
		cfg, err = Load(path)
	} else {
		cfg, err = LoadOptional(dir)
	}
	if err != nil {
		return nil, err
	}

	density := layout.Density{Density: cfg.Density.Density, ScaledDensity: cfg.Density.Scaled}
	if env := strings.TrimSpace(os.Getenv(EnvDensity)); env != "" {
		v, err := strconv.ParseFloat(env, 64)
		if err != nil || v <= 0 {
			return nil, configError("config.Resolve", fmt.Errorf("%s=%q is not a positive number", EnvDensity, env))
		}
		density = layout.Density{Density: v, ScaledDensity: v}
	}
	if density.Density <= 0 {
		density.Density = layout.DefaultDensity.Density
	}
	if density.ScaledDensity <= 0 {
		density.ScaledDensity = density.Density
	}

	styles := cfg.Styles
	if styles == nil {
		styles = map[string]StyleConfig{}
	}

	return &Resolved{
		Root:        dir,
		Path:        path,
		ProjectName: projectName(dir),
		Density:     density,
		Styles:      styles,
	}, nil
}

// Style returns the named style. An empty name selects the default badge.
func (r *Resolved) Style(name string) (StyleConfig, error) {
	if name == "" {
		return StyleConfig{}, nil
	}
	s, ok := r.Styles[name]
	if !ok {
		return StyleConfig{}, configError("config.Style", fmt.Errorf("no style named %q in %s", name, r.Path))
	}
	return s, nil
}

// Builder returns a badge builder configured from s.
func (s StyleConfig) Builder(density layout.Density) (*badge.Builder, error) {
	b, err := s.builder(density)
	if err != nil {
		return nil, configError("config.Builder", err)
	}
	return b, nil
}

func (s StyleConfig) builder(density layout.Density) (*badge.Builder, error) {
	b := badge.NewBuilder(density)
	if s.Shape != "" {
		shape, err := badge.ParseShape(s.Shape)
		if err != nil {
			return nil, err
		}
		b.Shape(shape)
	}
	if s.Width < 0 || s.Height < 0 || s.TextSize < 0 {
		return nil, fmt.Errorf("width, height and text_size must not be negative")
	}
	if s.Width > 0 {
		b.Width(s.Width)
	}
	if s.Height > 0 {
		b.Height(s.Height)
	}
	if s.Gravity != "" {
		g, err := layout.ParseGravity(s.Gravity)
		if err != nil {
			return nil, err
		}
		b.Gravity(g)
	}
	b.Margin(layout.EdgeInsets{Left: s.Margin.Left, Top: s.Margin.Top, Right: s.Margin.Right, Bottom: s.Margin.Bottom})
	if s.TextSize > 0 {
		b.TextSize(s.TextSize)
	}
	if s.TextColor != "" {
		c, err := graphics.ParseHex(s.TextColor)
		if err != nil {
			return nil, fmt.Errorf("text_color: %w", err)
		}
		b.TextColor(c)
	}
	if s.Background != "" {
		c, err := graphics.ParseHex(s.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		b.BackgroundColor(c)
	}
	b.GrowTextFromMetrics(s.GrowText)
	return b, nil
}

// projectName derives a display name from dir's go.mod, falling back to the
// directory name.
func projectName(dir string) string {
	base := filepath.Base(dir)
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return base
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return base
	}
	if prefix, _, ok := module.SplitPathVersion(path); ok {
		path = prefix
	}
	parts := strings.Split(path, "/")
	return parts[len(parts)-1]
}

func configError(op string, err error) error {
	return badgeerrors.Wrap(op, badgeerrors.KindConfig, "", err)
}
