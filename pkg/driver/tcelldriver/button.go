// Package tcelldriver hosts animated widgets on a terminal screen.
//
// The driver registers itself under the framework tag "tcell". A
// terminal has coarse cells instead of pixels, so the driver rounds the
// animation offset to whole cells, renders color transitions exactly and
// approximates lift with bold text. Scale is ignored.
//
// Programs own the tcell event loop: forward *tcell.EventMouse to
// [ButtonRenderer.HandleEvent] and call [ButtonRenderer.Draw] after each
// animation tick.
package tcelldriver

import (
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/go-motion/motion/pkg/errors"
	"github.com/go-motion/motion/pkg/graphics"
	"github.com/go-motion/motion/pkg/widget"
)

func init() {
	widget.RegisterFramework("tcell", func(b *widget.Button) widget.Renderer {
		return NewButtonRenderer(b)
	})
}

// ButtonRenderer draws a button as a colored cell box.
type ButtonRenderer struct {
	btn *widget.Button

	mu      sync.Mutex
	screen  tcell.Screen
	visual  widget.Visual
	x, y    int
	w, h    int
	hovered bool
	pressed bool
}

// NewButtonRenderer returns a renderer for b sized in terminal cells
// from the configured pixel size (8x16 pixels per cell).
func NewButtonRenderer(b *widget.Button) *ButtonRenderer {
	w := b.Config.Width / 8
	if w < len(b.Text)+2 {
		w = len(b.Text) + 2
	}
	h := b.Config.Height / 16
	if h < 1 {
		h = 1
	}
	return &ButtonRenderer{btn: b, w: w, h: h}
}

// Render implements widget.Renderer. parent must be a tcell.Screen.
func (r *ButtonRenderer) Render(parent any) (any, error) {
	screen, ok := parent.(tcell.Screen)
	if !ok {
		return nil, errors.New("tcelldriver.Render", errors.KindFramework,
			"parent is %T, want tcell.Screen", parent)
	}
	r.mu.Lock()
	r.screen = screen
	r.mu.Unlock()
	return r, nil
}

// UpdateAppearance implements widget.Renderer.
func (r *ButtonRenderer) UpdateAppearance(v widget.Visual) {
	r.mu.Lock()
	r.visual = v
	r.mu.Unlock()
}

// SetPosition places the button's top-left corner, in cells.
func (r *ButtonRenderer) SetPosition(x, y int) {
	r.mu.Lock()
	r.x, r.y = x, y
	r.mu.Unlock()
}

// HandleEvent maps a tcell mouse event onto the button's interaction
// methods. Returns true when the event touched the button.
func (r *ButtonRenderer) HandleEvent(ev tcell.Event) bool {
	mouse, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}
	mx, my := mouse.Position()

	r.mu.Lock()
	inside := mx >= r.x && mx < r.x+r.w && my >= r.y && my < r.y+r.h
	wasHovered := r.hovered
	r.hovered = inside
	buttons := mouse.Buttons()
	r.mu.Unlock()

	if inside && !wasHovered {
		r.btn.HandleHoverEnter()
	}
	if !inside && wasHovered {
		r.btn.HandleHoverLeave()
	}

	if inside && buttons&tcell.Button1 != 0 {
		r.mu.Lock()
		already := r.pressed
		r.pressed = true
		r.mu.Unlock()
		if !already {
			r.btn.HandlePress()
		}
		return true
	}
	if buttons&tcell.Button1 == 0 {
		r.mu.Lock()
		wasPressed := r.pressed
		r.pressed = false
		r.mu.Unlock()
		if wasPressed {
			r.btn.HandleRelease(inside)
			return true
		}
	}
	return inside
}

// Draw paints the button box. The caller shows the screen.
func (r *ButtonRenderer) Draw() {
	r.mu.Lock()
	screen := r.screen
	v := r.visual
	x := r.x + int(math.Round(v.Offset.X/8))
	y := r.y + int(math.Round(v.Offset.Y/16))
	w, h := r.w, r.h
	r.mu.Unlock()
	if screen == nil {
		return
	}

	style := tcell.StyleDefault.
		Background(toTcell(v.Color)).
		Foreground(toTcell(v.TextColor)).
		Bold(v.Lift > 0)

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			screen.SetContent(x+col, y+row, ' ', nil, style)
		}
	}

	label := v.Text
	if len(label) > w {
		label = label[:w]
	}
	lx := x + (w-len(label))/2
	ly := y + h/2
	for i, ch := range label {
		screen.SetContent(lx+i, ly, ch, nil, style)
	}
}

func toTcell(c graphics.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}
