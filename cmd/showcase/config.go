package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-motion/motion/pkg/animation"
	"github.com/go-motion/motion/pkg/graphics"
)

// WindowConfig describes the showcase window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// ButtonConfig describes one showcase button.
type ButtonConfig struct {
	Label       string  `yaml:"label"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	NormalColor string  `yaml:"normal_color"`
	HoverColor  string  `yaml:"hover_color"`
	Effect      string  `yaml:"effect"`      // pulse, flash, shake, bounce, spring
	Easing      string  `yaml:"easing"`      // easing name for the hover transition
	DurationMS  int     `yaml:"duration_ms"` // transition length, 0 for default
}

// ShowcaseConfig is the full showcase scene.
type ShowcaseConfig struct {
	Window  WindowConfig   `yaml:"window"`
	Buttons []ButtonConfig `yaml:"buttons"`
}

// LoadConfig reads and validates a showcase scene file.
func LoadConfig(path string) (*ShowcaseConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg ShowcaseConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Window.Width <= 0 {
		cfg.Window.Width = 800
	}
	if cfg.Window.Height <= 0 {
		cfg.Window.Height = 600
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = "motion showcase"
	}
	if cfg.Window.TPS <= 0 {
		cfg.Window.TPS = 60
	}

	for i := range cfg.Buttons {
		if err := validateButton(&cfg.Buttons[i]); err != nil {
			return nil, fmt.Errorf("button %d (%q): %w", i, cfg.Buttons[i].Label, err)
		}
	}
	return &cfg, nil
}

func validateButton(b *ButtonConfig) error {
	if b.Width <= 0 {
		b.Width = 120
	}
	if b.Height <= 0 {
		b.Height = 40
	}
	if b.NormalColor != "" {
		if _, err := graphics.ParseColor(b.NormalColor); err != nil {
			return fmt.Errorf("normal_color: %w", err)
		}
	}
	if b.HoverColor != "" {
		if _, err := graphics.ParseColor(b.HoverColor); err != nil {
			return fmt.Errorf("hover_color: %w", err)
		}
	}
	if b.Easing != "" {
		if _, err := animation.ParseEasing(b.Easing); err != nil {
			return err
		}
	}
	switch b.Effect {
	case "", "pulse", "flash", "shake", "bounce", "spring":
	default:
		return fmt.Errorf("unknown effect %q", b.Effect)
	}
	return nil
}

func (b *ButtonConfig) duration() time.Duration {
	if b.DurationMS <= 0 {
		return animation.DefaultDuration
	}
	return time.Duration(b.DurationMS) * time.Millisecond
}
