package widget

import (
	"time"

	"github.com/go-motion/motion/pkg/animation"
	"github.com/go-motion/motion/pkg/graphics"
)

// Config carries base widget appearance and behavior settings.
type Config struct {
	// Width and Height are the widget's preferred size in pixels.
	Width, Height int

	// BackgroundColor fills the widget body.
	BackgroundColor graphics.Color
	// TextColor draws the label.
	TextColor graphics.Color

	// BorderRadius rounds the widget corners, in pixels.
	BorderRadius int
	// BorderWidth draws an outline when positive.
	BorderWidth int
	// BorderColor is the outline color.
	BorderColor graphics.Color

	// FontFamily and FontSize describe the label font.
	FontFamily string
	FontSize   int

	// AnimationDuration is the default length of state transitions.
	AnimationDuration time.Duration
	// TransitionEasing shapes state transition curves.
	TransitionEasing animation.EasingKind

	// EnableAnimations toggles animated transitions. When false, widgets
	// apply end values directly instead of registering animations.
	EnableAnimations bool
}

// DefaultConfig returns the standard widget configuration.
func DefaultConfig() Config {
	return Config{
		Width:             120,
		Height:            40,
		BackgroundColor:   graphics.MustParseColor("#3498db"),
		TextColor:         graphics.ColorWhite,
		BorderRadius:      8,
		BorderWidth:       0,
		BorderColor:       graphics.MustParseColor("#2c3e50"),
		FontFamily:        "Arial",
		FontSize:          12,
		AnimationDuration: 300 * time.Millisecond,
		TransitionEasing:  animation.EaseOutCubic,
		EnableAnimations:  true,
	}
}
