// Package config loads the viewer settings from a TOML file layered over
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/akmonengine/sierpinski/instance"
)

// MaxSupportedLevel bounds 4^level generation to what fits in a frame
const MaxSupportedLevel = 10

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds every tunable of the fractal and its viewer
type Config struct {
	InitialLevel int `toml:"initial_level"`
	MaxLevel     int `toml:"max_level"`
	// TransitionSeconds is how long a level change takes to morph; 0 snaps
	TransitionSeconds float64  `toml:"transition_seconds"`
	Workers           int      `toml:"workers"`
	Palette           []string `toml:"palette"`

	Window Window `toml:"window"`
	Camera Camera `toml:"camera"`
}

// Window settings of the interactive viewer
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	TPS    int    `toml:"tps"`
}

// Camera settings shared by the window and snapshots
type Camera struct {
	Distance float64 `toml:"distance"`
	FovY     float64 `toml:"fov_degrees"`
	Near     float64 `toml:"near"`
	Far      float64 `toml:"far"`
	// Spin is the model rotation around Y, in radians per second
	Spin float64 `toml:"spin"`
	Axes bool    `toml:"axes"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		InitialLevel:      0,
		MaxLevel:          7,
		TransitionSeconds: 0.6,
		Workers:           1,
		Palette:           instance.DefaultPalette().Hex(),
		Window: Window{
			Title:  "Sierpinski",
			Width:  1280,
			Height: 720,
			TPS:    60,
		},
		Camera: Camera{
			Distance: 5,
			FovY:     45,
			Near:     0.1,
			Far:      10,
			Spin:     2,
			Axes:     false,
		},
	}
}

// Load reads path over the defaults and validates the result
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Decode overlays a TOML document on cfg, rejecting unknown keys
func Decode(data string, cfg *Config) error {
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}

	return nil
}

// Validate checks ranges and the palette
func (c Config) Validate() error {
	if c.MaxLevel < 0 || c.MaxLevel > MaxSupportedLevel {
		return fmt.Errorf("%w: max_level %d outside [0, %d]", ErrInvalid, c.MaxLevel, MaxSupportedLevel)
	}
	if c.InitialLevel < 0 || c.InitialLevel > c.MaxLevel {
		return fmt.Errorf("%w: initial_level %d outside [0, %d]", ErrInvalid, c.InitialLevel, c.MaxLevel)
	}
	if c.TransitionSeconds < 0 || math.IsNaN(c.TransitionSeconds) || math.IsInf(c.TransitionSeconds, 0) {
		return fmt.Errorf("%w: transition_seconds %v", ErrInvalid, c.TransitionSeconds)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	}
	if _, err := instance.ParsePalette(c.Palette); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.TPS <= 0 {
		return fmt.Errorf("%w: window %dx%d at %d tps", ErrInvalid, c.Window.Width, c.Window.Height, c.Window.TPS)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near || c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		return fmt.Errorf("%w: camera near %v far %v fov %v", ErrInvalid, c.Camera.Near, c.Camera.Far, c.Camera.FovY)
	}

	return nil
}

// Rate converts TransitionSeconds into slot progress per second.
// A zero duration gives an infinite rate: level changes snap.
func (c Config) Rate() float64 {
	if c.TransitionSeconds == 0 {
		return math.Inf(1)
	}

	return 1 / c.TransitionSeconds
}

// ParsedPalette returns the palette colors; Validate must have passed
func (c Config) ParsedPalette() instance.Palette {
	p, err := instance.ParsePalette(c.Palette)
	if err != nil {
		return instance.DefaultPalette()
	}

	return p
}
