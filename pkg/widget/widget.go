// Package widget maps discrete interaction states to animated property
// transitions.
//
// A widget owns its [VisualState] machine and an [animation.Manager]
// reference; on each state transition it registers animations that move
// its visual properties (color, scale, lift, offset) toward the new
// state's targets. Toolkit drivers plug in through the [Renderer]
// interface and receive a [Visual] snapshot per frame.
package widget

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-motion/motion/pkg/animation"
)

var widgetSeq atomic.Int64

// Core is the embeddable base for animated widgets. It carries the
// configuration, the event registry, the visual state machine and the
// animation manager reference.
//
// Each widget gets its own Manager by default. Widgets can share one via
// [Core.UseManager]; animation keys are namespaced per widget, so shared
// managers never collide across widgets.
type Core struct {
	// Config is the widget's base configuration.
	Config Config
	// Events is the widget's observer registry.
	Events Events

	name  string
	anims *animation.Manager

	mu    sync.Mutex
	state VisualState
}

func newCore(kind string, cfg Config) Core {
	return Core{
		Config: cfg,
		name:   fmt.Sprintf("%s-%d", kind, widgetSeq.Add(1)),
		anims:  animation.NewManager(),
		state:  StateNormal,
	}
}

// Manager returns the animation manager driving this widget.
func (c *Core) Manager() *animation.Manager {
	return c.anims
}

// UseManager switches the widget onto a shared animation manager. Call
// before the widget starts animating.
func (c *Core) UseManager(m *animation.Manager) {
	if m != nil {
		c.anims = m
	}
}

// Key returns the manager key for one of this widget's animated
// properties. Keys are unique per widget instance.
func (c *Core) Key(property string) string {
	return c.name + "." + property
}

// State returns the current visual state.
func (c *Core) State() VisualState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetState transitions the visual state and fires EventStateChanged with
// the old and new states. Setting the current state is a no-op.
func (c *Core) SetState(s VisualState) {
	c.mu.Lock()
	old := c.state
	if old == s {
		c.mu.Unlock()
		return
	}
	c.state = s
	c.mu.Unlock()
	c.Events.Trigger(EventStateChanged, old, s)
}

// Enable returns the widget to the normal state.
func (c *Core) Enable() { c.SetState(StateNormal) }

// Disable puts the widget in the disabled state.
func (c *Core) Disable() { c.SetState(StateDisabled) }

// IsAnimating reports whether the named property is mid-transition.
func (c *Core) IsAnimating(property string) bool {
	return c.anims.IsAnimating(c.Key(property))
}

// StopAnimations cancels every animation on the widget's manager. With a
// shared manager this stops other widgets' animations too; stop
// individual keys instead in that case.
func (c *Core) StopAnimations() {
	c.anims.StopAll()
}
