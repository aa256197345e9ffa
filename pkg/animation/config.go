package animation

import "time"

// Defaults applied by Config.withDefaults for zero fields.
const (
	DefaultDuration = 300 * time.Millisecond
	DefaultFPS      = 60
	DefaultEasing   = EaseOutCubic
)

// RepeatForever makes an animation repeat until stopped or replaced.
const RepeatForever = -1

// Config describes the timing of one animation. It is immutable once
// passed to [Manager.Animate]; zero fields take package defaults.
type Config struct {
	// Duration is the length of one forward pass. Defaults to 300ms.
	Duration time.Duration

	// Easing selects one of the built-in curves. Defaults to EaseOutCubic.
	Easing EasingKind

	// CustomEasing overrides Easing when non-nil. Use [CubicBezier] or any
	// function with f(0)=0 and f(1)=1.
	CustomEasing func(float64) float64

	// FPS is the target update rate. Defaults to 60. When active animations
	// request different rates the manager ticks at the highest one.
	FPS int

	// AutoReverse plays the eased curve forward then backward within one
	// repeat cycle.
	AutoReverse bool

	// RepeatCount is the number of cycles, at least 1. RepeatForever
	// repeats until stopped. Zero means 1.
	RepeatCount int

	// Delay postpones the first update after registration.
	Delay time.Duration
}

// withDefaults resolves zero fields to package defaults. Easing resolution
// happens separately so that unknown kinds are rejected, not defaulted.
func (c Config) withDefaults() Config {
	if c.Duration <= 0 {
		c.Duration = DefaultDuration
	}
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.RepeatCount == 0 {
		c.RepeatCount = 1
	}
	return c
}

// easingFunc resolves the effective easing function.
func (c Config) easingFunc() (func(float64) float64, error) {
	if c.CustomEasing != nil {
		return c.CustomEasing, nil
	}
	return c.Easing.Func()
}

// Preset configurations for common widget transitions.

// FadeConfig eases opacity changes.
func FadeConfig(duration time.Duration) Config {
	return Config{Duration: duration, Easing: EaseOutQuad}
}

// ScaleConfig suits size and scale changes.
func ScaleConfig(duration time.Duration, easing EasingKind) Config {
	return Config{Duration: duration, Easing: easing}
}

// SlideConfig suits positional transitions.
func SlideConfig(duration time.Duration) Config {
	return Config{Duration: duration, Easing: EaseOutCubic}
}

// BounceConfig settles with a bounce, for playful emphasis.
func BounceConfig(duration time.Duration) Config {
	return Config{Duration: duration, Easing: BounceOut}
}

// ElasticConfig overshoots elastically before settling.
func ElasticConfig(duration time.Duration) Config {
	return Config{Duration: duration, Easing: ElasticOut}
}

// TextInputConfig suits focus transitions on text fields.
func TextInputConfig() Config {
	return Config{Duration: 250 * time.Millisecond, Easing: EaseOutCubic}
}

// CheckboxConfig suits check mark transitions. Style is one of "scale",
// "bounce" or "elastic"; anything else falls back to scale.
func CheckboxConfig(style string, duration time.Duration) Config {
	switch style {
	case "bounce":
		return Config{Duration: duration, Easing: BounceOut}
	case "elastic":
		return Config{Duration: duration, Easing: ElasticOut}
	default:
		return Config{Duration: duration, Easing: EaseOutCubic}
	}
}

// SwitchConfig suits toggle knob transitions. Style is one of "slide",
// "bounce" or "elastic"; anything else falls back to slide.
func SwitchConfig(style string, duration time.Duration) Config {
	switch style {
	case "bounce":
		return Config{Duration: duration, Easing: BounceOut}
	case "elastic":
		return Config{Duration: duration, Easing: ElasticOut}
	default:
		return Config{Duration: duration, Easing: EaseOutCubic}
	}
}

// ValidationShakeConfig suits error-feedback shakes.
func ValidationShakeConfig() Config {
	return Config{Duration: 500 * time.Millisecond, Easing: EaseOutCubic}
}

// SliderConfig suits slider thumb movement, with a slight overshoot.
func SliderConfig() Config {
	return Config{Duration: 300 * time.Millisecond, Easing: EaseOutBack}
}
