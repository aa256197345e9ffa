package widget

import (
	"math"
	"sync"
	"time"

	"github.com/go-motion/motion/pkg/animation"
	"github.com/go-motion/motion/pkg/graphics"
)

// ButtonStyle is button-specific styling on top of [Config].
type ButtonStyle struct {
	// Per-state body colors.
	NormalColor   graphics.Color
	HoverColor    graphics.Color
	PressedColor  graphics.Color
	DisabledColor graphics.Color

	// Shadow draws a drop shadow when true.
	Shadow bool
	// ShadowColor is the drop shadow color.
	ShadowColor graphics.Color
	// ShadowOffset displaces the shadow.
	ShadowOffset graphics.Offset

	// HoverLift raises the button this many pixels on hover.
	HoverLift float64
	// ClickScale shrinks the button to this factor while pressed.
	ClickScale float64
	// FlashColor is the color used by the Flash effect.
	FlashColor graphics.Color
}

// DefaultButtonStyle returns the standard button styling.
func DefaultButtonStyle() ButtonStyle {
	return ButtonStyle{
		NormalColor:   graphics.MustParseColor("#3498db"),
		HoverColor:    graphics.MustParseColor("#2980b9"),
		PressedColor:  graphics.MustParseColor("#21618c"),
		DisabledColor: graphics.MustParseColor("#95a5a6"),
		Shadow:        true,
		ShadowColor:   graphics.MustParseColor("#2c3e50"),
		ShadowOffset:  graphics.Offset{X: 0, Y: 2},
		HoverLift:     2,
		ClickScale:    0.95,
		FlashColor:    graphics.ColorWhite,
	}
}

// Button is an interactive button with animated hover, press and disable
// transitions.
//
// Toolkit drivers construct the native widget via [Button.Render] and feed
// pointer activity into the Handle* methods; the button answers by
// animating its [Visual] and pushing snapshots into the driver's
// [Renderer]. Observers subscribe through the embedded [Events] registry.
type Button struct {
	Core
	// Style is the button styling.
	Style ButtonStyle
	// Text is the label.
	Text string

	vmu      sync.Mutex
	visual   Visual
	renderer Renderer
	pressed  bool
}

// NewButton creates a button with default configuration and styling.
func NewButton(text string) *Button {
	cfg := DefaultConfig()
	style := DefaultButtonStyle()
	b := &Button{
		Core:  newCore("button", cfg),
		Style: style,
		Text:  text,
	}
	b.visual = Visual{
		Color:     style.NormalColor,
		TextColor: cfg.TextColor,
		Text:      text,
		Scale:     1,
		Opacity:   1,
	}
	return b
}

// WithConfig replaces the button configuration.
func (b *Button) WithConfig(cfg Config) *Button {
	b.Config = cfg
	b.vmu.Lock()
	b.visual.TextColor = cfg.TextColor
	b.vmu.Unlock()
	return b
}

// WithStyle replaces the button styling.
func (b *Button) WithStyle(style ButtonStyle) *Button {
	b.Style = style
	b.vmu.Lock()
	b.visual.Color = style.NormalColor
	b.vmu.Unlock()
	return b
}

// WithManager puts the button on a shared animation manager.
func (b *Button) WithManager(m *animation.Manager) *Button {
	b.UseManager(m)
	return b
}

// Render constructs the native widget for the given framework tag under
// the toolkit-specific parent handle and returns the native handle.
// Unknown tags fail with a framework error; the set of available tags
// depends on which driver packages the program imports.
func (b *Button) Render(parent any, framework string) (any, error) {
	factory, err := lookupFramework("widget.Button.Render", framework)
	if err != nil {
		return nil, err
	}
	r := factory(b)
	handle, err := r.Render(parent)
	if err != nil {
		return nil, err
	}
	b.vmu.Lock()
	b.renderer = r
	b.vmu.Unlock()
	b.UpdateAppearance()
	return handle, nil
}

// SetRenderer attaches a renderer directly, bypassing the framework
// registry. Intended for tests and custom embedding.
func (b *Button) SetRenderer(r Renderer) {
	b.vmu.Lock()
	b.renderer = r
	b.vmu.Unlock()
	b.UpdateAppearance()
}

// Visual returns the current visual snapshot.
func (b *Button) Visual() Visual {
	b.vmu.Lock()
	defer b.vmu.Unlock()
	return b.visual
}

// UpdateAppearance pushes the current visual snapshot to the renderer.
func (b *Button) UpdateAppearance() {
	b.vmu.Lock()
	r := b.renderer
	v := b.visual
	b.vmu.Unlock()
	if r != nil {
		r.UpdateAppearance(v)
	}
}

func (b *Button) mutateVisual(mutate func(*Visual)) {
	b.vmu.Lock()
	mutate(&b.visual)
	r := b.renderer
	v := b.visual
	b.vmu.Unlock()
	if r != nil {
		r.UpdateAppearance(v)
	}
}

func (b *Button) setColor(c graphics.Color) {
	b.mutateVisual(func(v *Visual) { v.Color = c })
}

func (b *Button) setScale(s float64) {
	b.mutateVisual(func(v *Visual) { v.Scale = s })
}

func (b *Button) setLift(l float64) {
	b.mutateVisual(func(v *Visual) { v.Lift = l })
}

func (b *Button) setOffset(o graphics.Offset) {
	b.mutateVisual(func(v *Visual) { v.Offset = o })
}

// StateColor returns the body color for a visual state.
func (b *Button) StateColor(s VisualState) graphics.Color {
	switch s {
	case StateHover:
		return b.Style.HoverColor
	case StatePressed:
		return b.Style.PressedColor
	case StateDisabled:
		return b.Style.DisabledColor
	default:
		return b.Style.NormalColor
	}
}

// animateColor moves the body color toward target, or jumps straight to
// it when animations are disabled.
func (b *Button) animateColor(target graphics.Color, cfg animation.Config) {
	if !b.Config.EnableAnimations {
		b.anims.Stop(b.Key("color"))
		b.setColor(target)
		return
	}
	b.anims.AnimateColor(b.Key("color"), b.Visual().Color, target, b.setColor, cfg, nil)
}

func (b *Button) animateFloat(key string, from, to float64, update func(float64), cfg animation.Config, complete func()) {
	if !b.Config.EnableAnimations {
		b.anims.Stop(b.Key(key))
		update(to)
		if complete != nil {
			complete()
		}
		return
	}
	b.anims.AnimateFloat(b.Key(key), from, to, update, cfg, complete)
}

// HandleHoverEnter reacts to the pointer entering the button.
func (b *Button) HandleHoverEnter() {
	if b.State() == StateDisabled {
		return
	}
	b.SetState(StateHover)
	b.Events.Trigger(EventHoverEnter)

	b.animateColor(b.Style.HoverColor, animation.Config{
		Duration: b.Config.AnimationDuration,
		Easing:   b.Config.TransitionEasing,
	})
	if b.Style.HoverLift > 0 {
		b.animateFloat("lift", b.Visual().Lift, b.Style.HoverLift, b.setLift,
			animation.Config{Duration: 200 * time.Millisecond, Easing: animation.EaseOutQuad}, nil)
	}
}

// HandleHoverLeave reacts to the pointer leaving the button.
func (b *Button) HandleHoverLeave() {
	if b.State() == StateDisabled {
		return
	}
	b.SetState(StateNormal)
	b.Events.Trigger(EventHoverLeave)

	b.animateColor(b.Style.NormalColor, animation.Config{
		Duration: b.Config.AnimationDuration,
		Easing:   b.Config.TransitionEasing,
	})
	b.animateFloat("lift", b.Visual().Lift, 0, b.setLift,
		animation.Config{Duration: 200 * time.Millisecond, Easing: animation.EaseOutQuad}, nil)
}

// HandlePress reacts to a pointer press on the button.
func (b *Button) HandlePress() {
	if b.State() == StateDisabled {
		return
	}
	b.vmu.Lock()
	b.pressed = true
	b.vmu.Unlock()
	b.SetState(StatePressed)

	b.animateColor(b.Style.PressedColor, animation.Config{
		Duration: 100 * time.Millisecond,
		Easing:   animation.EaseOutQuad,
	})
	b.animateFloat("scale", b.Visual().Scale, b.Style.ClickScale, b.setScale,
		animation.Config{Duration: 100 * time.Millisecond, Easing: animation.EaseOutQuad}, nil)
}

// HandleRelease reacts to the pointer being released. inside reports
// whether the release landed on the button; releases inside fire
// EventClick.
func (b *Button) HandleRelease(inside bool) {
	if b.State() == StateDisabled {
		return
	}
	b.vmu.Lock()
	wasPressed := b.pressed
	b.pressed = false
	b.vmu.Unlock()
	if !wasPressed {
		return
	}

	next := StateNormal
	if inside {
		next = StateHover
	}
	b.SetState(next)
	b.animateColor(b.StateColor(next), animation.Config{
		Duration: b.Config.AnimationDuration,
		Easing:   b.Config.TransitionEasing,
	})
	b.animateFloat("scale", b.Visual().Scale, 1, b.setScale,
		animation.Config{Duration: 300 * time.Millisecond, Easing: animation.EaseOutBack}, nil)

	if inside {
		b.Events.Trigger(EventClick)
	}
}

// SetDisabled toggles the disabled state, animating to the matching color.
func (b *Button) SetDisabled(disabled bool) {
	target := StateNormal
	if disabled {
		target = StateDisabled
	}
	if b.State() == target {
		return
	}
	b.SetState(target)
	b.animateColor(b.StateColor(target), animation.Config{
		Duration: b.Config.AnimationDuration,
		Easing:   b.Config.TransitionEasing,
	})
}

// Pulse scales the button up to factor and back to its current scale,
// once. It shares the "scale" key with press and spring transitions so a
// later scale animation supersedes a running pulse.
func (b *Button) Pulse(factor float64, duration time.Duration) {
	if !b.Config.EnableAnimations {
		return
	}
	b.anims.AnimateFloat(b.Key("scale"), b.Visual().Scale, factor, b.setScale,
		animation.Config{
			Duration:    duration,
			Easing:      animation.EaseInOutQuad,
			AutoReverse: true,
		}, nil)
}

// Flash blends the body to the style's flash color and back, restoring
// the state color when done.
func (b *Button) Flash(duration time.Duration) {
	if !b.Config.EnableAnimations {
		return
	}
	from := b.Visual().Color
	b.anims.AnimateColor(b.Key("color"), from, b.Style.FlashColor, b.setColor,
		animation.Config{
			Duration:    duration,
			Easing:      animation.EaseOutQuad,
			AutoReverse: true,
		}, func() {
			b.setColor(b.StateColor(b.State()))
		})
}

// Shake wobbles the button horizontally with decaying amplitude. Useful
// for error feedback.
func (b *Button) Shake(intensity float64, duration time.Duration) {
	b.animateFloat("shake", 0, 1, func(p float64) {
		dx := math.Sin(p*math.Pi*8) * intensity * (1 - p)
		b.setOffset(graphics.Offset{X: dx})
	}, animation.Config{Duration: duration, Easing: animation.EaseOutCubic}, func() {
		b.setOffset(graphics.Offset{})
	})
}

// Bounce hops the button up by height pixels and drops it back with a
// bouncing settle.
func (b *Button) Bounce(height float64, duration time.Duration) {
	if !b.Config.EnableAnimations {
		return
	}
	b.anims.AnimateOffset(b.Key("bounce"),
		graphics.Offset{}, graphics.Offset{Y: -height}, b.setOffset,
		animation.Config{
			Duration:    duration,
			Easing:      animation.BounceOut,
			AutoReverse: true,
		}, func() {
			b.setOffset(graphics.Offset{})
		})
}

// SpringPress snaps the scale to the click factor and springs it back to
// natural size with physical overshoot.
func (b *Button) SpringPress() {
	if !b.Config.EnableAnimations {
		b.setScale(1)
		return
	}
	b.setScale(b.Style.ClickScale)
	b.anims.AnimateSpring(b.Key("scale"), b.Style.ClickScale, 1, b.setScale,
		animation.SpringConfig{AngularFrequency: 8, Damping: 0.4}, nil)
}
