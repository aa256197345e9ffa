package widget

import (
	"sort"
	"sync"

	"github.com/go-motion/motion/pkg/errors"
	"github.com/go-motion/motion/pkg/graphics"
)

// Visual is the drawable snapshot a widget pushes to its renderer on every
// animation frame.
type Visual struct {
	// Color is the current body color.
	Color graphics.Color
	// TextColor is the current label color.
	TextColor graphics.Color
	// Text is the label.
	Text string
	// Scale multiplies the widget's size around its center. 1 is natural size.
	Scale float64
	// Lift raises the widget visually (shadow depth), in pixels.
	Lift float64
	// Offset shifts the widget from its layout position, in pixels.
	Offset graphics.Offset
	// Opacity is the overall alpha, 0 to 1.
	Opacity float64
}

// Renderer is the capability a toolkit driver implements to host a widget.
// Render builds the native widget under the toolkit-specific parent handle
// and returns the native handle; UpdateAppearance pushes a new visual
// snapshot into it. The animation core has no dependency on this
// interface — it stays toolkit-agnostic.
type Renderer interface {
	Render(parent any) (any, error)
	UpdateAppearance(v Visual)
}

// RendererFactory builds a renderer for a button. Toolkit driver packages
// register one per framework tag.
type RendererFactory func(b *Button) Renderer

var (
	frameworksMu sync.RWMutex
	frameworks   = make(map[string]RendererFactory)
)

// RegisterFramework makes a toolkit driver available under a framework
// tag ("ebiten", "fyne", "tcell"). Driver packages call this from an
// init function; re-registering a tag replaces the previous factory.
func RegisterFramework(tag string, factory RendererFactory) {
	frameworksMu.Lock()
	defer frameworksMu.Unlock()
	frameworks[tag] = factory
}

// Frameworks returns the registered framework tags, sorted.
func Frameworks() []string {
	frameworksMu.RLock()
	defer frameworksMu.RUnlock()
	tags := make([]string, 0, len(frameworks))
	for tag := range frameworks {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func lookupFramework(op, tag string) (RendererFactory, error) {
	frameworksMu.RLock()
	defer frameworksMu.RUnlock()
	factory, ok := frameworks[tag]
	if !ok {
		return nil, errors.New(op, errors.KindFramework, "unsupported framework %q", tag)
	}
	return factory, nil
}
