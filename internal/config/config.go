// Package config loads the particles command configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/particles"
)

const (
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultScale      = 1
	DefaultTitle      = "Particles"
	DefaultBackground = "#000000"
	DefaultParticles  = 5000
	DefaultBackend    = "auto"
	DefaultFrameEvery = 1
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Scale      int     `yaml:"scale"`
	Title      string  `yaml:"title"`
	VSync      bool    `yaml:"vsync"`
	Decay      int     `yaml:"decay"`
	Background string  `yaml:"background"`
	FontPath   string  `yaml:"font_path"`
	FontSize   float64 `yaml:"font_size"`
	Backend    string  `yaml:"backend"`
	Particles  int     `yaml:"particles"`
	Seed       int64   `yaml:"seed"`
	Frames     int     `yaml:"frames"`
	FrameDir   string  `yaml:"frame_dir"`
	FrameEvery int     `yaml:"frame_every"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Scale:      DefaultScale,
		Title:      DefaultTitle,
		VSync:      true,
		Decay:      int(particles.DefaultDecay),
		Background: DefaultBackground,
		FontSize:   particles.DefaultFontSize,
		Backend:    DefaultBackend,
		Particles:  DefaultParticles,
		Seed:       1,
		FrameEvery: DefaultFrameEvery,
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports the first field that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Scale < 1:
		return fmt.Errorf("%w: scale %d", ErrInvalid, c.Scale)
	case c.Decay < 0 || c.Decay > 0xFF:
		return fmt.Errorf("%w: decay %d out of [0, 255]", ErrInvalid, c.Decay)
	case c.FontSize <= 0:
		return fmt.Errorf("%w: font_size %v", ErrInvalid, c.FontSize)
	case c.Particles < 0:
		return fmt.Errorf("%w: particles %d", ErrInvalid, c.Particles)
	case c.Frames < 0:
		return fmt.Errorf("%w: frames %d", ErrInvalid, c.Frames)
	case c.FrameEvery < 1:
		return fmt.Errorf("%w: frame_every %d", ErrInvalid, c.FrameEvery)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// PipelineOptions converts the configuration into pipeline options.
// Call Validate first.
func (c *Config) PipelineOptions() (particles.Options, error) {
	bg, err := ParseColor(c.Background)
	if err != nil {
		return particles.Options{}, err
	}
	opts := particles.DefaultOptions()
	opts.Width = c.Width
	opts.Height = c.Height
	opts.Scale = c.Scale
	opts.Title = c.Title
	opts.VSync = c.VSync
	opts.Decay = uint8(c.Decay) //nolint:gosec // G115: range checked by Validate
	opts.Background = bg
	opts.FontPath = c.FontPath
	opts.FontSize = c.FontSize
	opts.MaxFrames = c.Frames
	opts.FrameDir = c.FrameDir
	opts.FrameEvery = c.FrameEvery
	return opts, nil
}

// ParseColor parses "#rrggbb" or "0xrrggbb" into an opaque color.
func ParseColor(s string) (particles.Color, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	if len(hex) != 6 {
		return 0, fmt.Errorf("config: color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("config: color %q: %w", s, err)
	}
	//nolint:gosec // G115: v has 24 bits
	return particles.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
