// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the application configuration. An embedded
// default is always read first; a user file overlays it field by field.
package config

import (
	"embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/clydehsieh/buttoninsets/geometry"
	"github.com/clydehsieh/buttoninsets/inset"
)

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "BUTTONINSETS_CONFIG"

//go:embed default.yaml
var defaultFS embed.FS

type Config struct {
	Window Window `yaml:"window"`
	Button Button `yaml:"button"`
	Insets Insets `yaml:"insets"`
	Log    Log    `yaml:"log"`
}

type Window struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type Button struct {
	Title       string  `yaml:"title"`
	Width       float32 `yaml:"width"`
	Height      float32 `yaml:"height"`
	TextSize    float32 `yaml:"text_size"`
	Image       string  `yaml:"image"`
	ImageWidth  float32 `yaml:"image_width"`
	ImageHeight float32 `yaml:"image_height"`
	Fit         string  `yaml:"fit"`
}

// Positions holds one normalized slider position per edge.
type Positions struct {
	Top    float32 `yaml:"top"`
	Bottom float32 `yaml:"bottom"`
	Left   float32 `yaml:"left"`
	Right  float32 `yaml:"right"`
}

type Insets struct {
	Image   Positions `yaml:"image"`
	Title   Positions `yaml:"title"`
	Content Positions `yaml:"content"`
}

type Log struct {
	Mode string `yaml:"mode"`
}

// Default returns the embedded configuration.
func Default() (Config, error) {
	var cfg Config
	data, err := defaultFS.ReadFile("default.yaml")
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse default config: %w", err)
	}
	return cfg, nil
}

// Load returns the default configuration overlaid with the file at
// path. An empty path falls back to $BUTTONINSETS_CONFIG, and then to
// the default alone.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return cfg, err
	}
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvPath))
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first problem found in c.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.New("window size must be positive")
	}
	b := c.Button
	if b.Width <= 0 || b.Height <= 0 {
		return errors.New("button size must be positive")
	}
	if b.ImageWidth <= 0 || b.ImageHeight <= 0 {
		return errors.New("button image size must be positive")
	}
	if b.TextSize <= 0 {
		return errors.New("button text size must be positive")
	}
	if _, err := geometry.ParseFit(b.Fit); err != nil {
		return err
	}
	slots := []struct {
		name string
		pos  Positions
	}{
		{"image", c.Insets.Image},
		{"title", c.Insets.Title},
		{"content", c.Insets.Content},
	}
	for _, s := range slots {
		for _, e := range inset.Edges {
			if v := float64(s.pos.Get(e)); math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("insets.%s.%s must be a finite number", s.name, e)
			}
		}
	}
	return nil
}

// ParsedFit returns the parsed image fit. It assumes the config has
// been validated.
func (b Button) ParsedFit() geometry.Fit {
	fit, _ := geometry.ParseFit(b.Fit)
	return fit
}

// Get returns the position of edge e.
func (p Positions) Get(e inset.Edge) float32 {
	switch e {
	case inset.Top:
		return p.Top
	case inset.Bottom:
		return p.Bottom
	case inset.Left:
		return p.Left
	case inset.Right:
		return p.Right
	}
	panic(fmt.Errorf("config: invalid edge %d", uint8(e)))
}

// Inset converts the positions to the inset they produce.
func (p Positions) Inset() inset.Inset {
	var in inset.Inset
	for _, e := range inset.Edges {
		in = in.With(e, inset.Value(p.Get(e)))
	}
	return in
}
