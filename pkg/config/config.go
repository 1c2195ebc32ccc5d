// Package config loads animation defaults and named timing curves from an
// optional motion.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/animation"
	merrors "github.com/go-drift/motion/pkg/errors"
)

// FileName is the name of the configuration file.
const FileName = "motion.yaml"

// Built-in defaults used when motion.yaml is absent or leaves a field empty.
const (
	DefaultDuration   = 250 * time.Millisecond
	DefaultCurve      = "easeInEaseOut"
	DefaultPixelScale = 1.0
)

// Config represents the optional motion.yaml configuration.
type Config struct {
	Defaults DefaultsConfig         `yaml:"defaults"`
	Curves   map[string]CurveConfig `yaml:"curves,omitempty"`
}

// DefaultsConfig contains the settings applied to new animations.
type DefaultsConfig struct {
	Duration       string   `yaml:"duration,omitempty"`
	Curve          string   `yaml:"curve,omitempty"`
	Integralize    bool     `yaml:"integralize,omitempty"`
	PixelScale     *float64 `yaml:"pixelScale,omitempty"`
	ScrubsLinearly bool     `yaml:"scrubsLinearly,omitempty"`
	AutoStarts     bool     `yaml:"autoStarts,omitempty"`
}

// CurveConfig defines a named timing curve, either as a reference to a preset
// or as the four control-point coordinates of a unit bezier.
type CurveConfig struct {
	Preset string    `yaml:"preset,omitempty"`
	Bezier []float64 `yaml:"bezier,omitempty"`
}

// Resolved contains validated configuration values.
type Resolved struct {
	Root           string
	Duration       time.Duration
	Curve          animation.TimingFunction
	Integralize    bool
	PixelScale     float64
	ScrubsLinearly bool
	AutoStarts     bool

	curves map[string]animation.TimingFunction
}

// LoadOptional reads motion.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes motion.yaml contents.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads motion.yaml from dir (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	r, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	r.Root = dir
	return r, nil
}

// Resolve validates the configuration and applies defaults. Validation
// failures are returned as *errors.AnimationError of kind KindConfig.
func (c *Config) Resolve() (*Resolved, error) {
	r, err := c.resolve()
	if err != nil {
		return nil, &merrors.AnimationError{Op: "config.Resolve", Kind: merrors.KindConfig, Err: err}
	}
	return r, nil
}

func (c *Config) resolve() (*Resolved, error) {
	curves := make(map[string]animation.TimingFunction, len(c.Curves))
	names := make([]string, 0, len(c.Curves))
	for name := range c.Curves {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		tf, err := c.Curves[name].timingFunction(name)
		if err != nil {
			return nil, err
		}
		curves[name] = tf
	}

	r := &Resolved{
		Duration:       DefaultDuration,
		Integralize:    c.Defaults.Integralize,
		PixelScale:     DefaultPixelScale,
		ScrubsLinearly: c.Defaults.ScrubsLinearly,
		AutoStarts:     c.Defaults.AutoStarts,
		curves:         curves,
	}

	if s := strings.TrimSpace(c.Defaults.Duration); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("defaults.duration: %w", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("defaults.duration must not be negative (got %s)", s)
		}
		r.Duration = d
	}

	if c.Defaults.PixelScale != nil {
		if *c.Defaults.PixelScale < 0 {
			return nil, fmt.Errorf("defaults.pixelScale must not be negative (got %g)", *c.Defaults.PixelScale)
		}
		r.PixelScale = *c.Defaults.PixelScale
	}

	name := strings.TrimSpace(c.Defaults.Curve)
	if name == "" {
		name = DefaultCurve
	}
	tf, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("defaults.curve: unknown curve %q", name)
	}
	r.Curve = tf

	return r, nil
}

func (cc CurveConfig) timingFunction(name string) (animation.TimingFunction, error) {
	preset := strings.TrimSpace(cc.Preset)
	switch {
	case preset != "" && len(cc.Bezier) > 0:
		return animation.TimingFunction{}, fmt.Errorf("curves.%s: preset and bezier are mutually exclusive", name)
	case preset != "":
		tf, ok := animation.Preset(preset)
		if !ok {
			return animation.TimingFunction{}, fmt.Errorf("curves.%s: unknown preset %q", name, preset)
		}
		return tf, nil
	case len(cc.Bezier) == 4:
		tf := animation.Bezier(cc.Bezier[0], cc.Bezier[1], cc.Bezier[2], cc.Bezier[3])
		if b, _ := tf.UnitBezier(); !b.Monotonic() {
			return animation.TimingFunction{}, fmt.Errorf("curves.%s: bezier x coordinates must be within [0, 1] (got %v)", name, cc.Bezier)
		}
		return tf, nil
	case len(cc.Bezier) > 0:
		return animation.TimingFunction{}, fmt.Errorf("curves.%s: bezier needs 4 numbers (got %d)", name, len(cc.Bezier))
	default:
		return animation.TimingFunction{}, fmt.Errorf("curves.%s: either preset or bezier is required", name)
	}
}

// Lookup returns the named curve. Curves defined in motion.yaml take
// precedence over presets of the same name.
func (r *Resolved) Lookup(name string) (animation.TimingFunction, bool) {
	if tf, ok := r.curves[name]; ok {
		return tf, true
	}
	return animation.Preset(name)
}

// CurveNames returns the names of the curves defined in motion.yaml, sorted.
func (r *Resolved) CurveNames() []string {
	names := make([]string, 0, len(r.curves))
	for name := range r.curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewAnimation creates an animation from value to target with the resolved
// defaults applied.
func (r *Resolved) NewAnimation(value, target animation.Vector) *animation.Animation {
	a := animation.New(r.Curve, r.Duration, value, target)
	r.Apply(a)
	return a
}

// Apply copies the resolved integralization and scrubbing settings to a.
func (r *Resolved) Apply(a *animation.Animation) {
	a.IntegralizeValues = r.Integralize
	a.PixelScale = r.PixelScale
	a.ScrubsLinearly = r.ScrubsLinearly
	a.AutoStarts = r.AutoStarts
}

// FindConfigDir walks up from start to the first directory containing
// motion.yaml.
func FindConfigDir(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found above %s", FileName, start)
		}
		dir = parent
	}
}
