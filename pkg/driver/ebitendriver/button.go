// Package ebitendriver hosts animated widgets inside an Ebitengine game
// loop.
//
// The driver registers itself under the framework tag "ebiten". Games
// call [ButtonRenderer.Update] from their Update method to feed pointer
// state into the widget and [ButtonRenderer.Draw] from their Draw method
// to paint the current visual snapshot. Tick the widget's animation
// manager externally to keep updates on the frame goroutine:
//
//	btn.Manager().SetExternalTicks(true)
//
//	func (g *Game) Update() error {
//	    g.button.Update()
//	    btn.Manager().Tick(time.Now())
//	    return nil
//	}
package ebitendriver

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/go-motion/motion/pkg/graphics"
	"github.com/go-motion/motion/pkg/widget"
)

func init() {
	widget.RegisterFramework("ebiten", func(b *widget.Button) widget.Renderer {
		return NewButtonRenderer(b)
	})
}

// ButtonRenderer draws a button onto an Ebitengine screen and maps cursor
// activity onto the button's interaction methods.
type ButtonRenderer struct {
	btn *widget.Button

	mu      sync.Mutex
	visual  widget.Visual
	bounds  graphics.Rect
	hovered bool
	pressed bool
}

// NewButtonRenderer returns a renderer for b positioned at the origin
// with the configured size. Reposition with [ButtonRenderer.SetBounds].
func NewButtonRenderer(b *widget.Button) *ButtonRenderer {
	return &ButtonRenderer{
		btn: b,
		bounds: graphics.Rect{
			Width:  float64(b.Config.Width),
			Height: float64(b.Config.Height),
		},
	}
}

// Render implements widget.Renderer. Ebitengine has no retained widget
// tree, so the renderer itself is the native handle; parent is ignored.
func (r *ButtonRenderer) Render(parent any) (any, error) {
	return r, nil
}

// UpdateAppearance implements widget.Renderer.
func (r *ButtonRenderer) UpdateAppearance(v widget.Visual) {
	r.mu.Lock()
	r.visual = v
	r.mu.Unlock()
}

// SetBounds places the button on screen.
func (r *ButtonRenderer) SetBounds(bounds graphics.Rect) {
	r.mu.Lock()
	r.bounds = bounds
	r.mu.Unlock()
}

// Bounds returns the button's layout rectangle, before animation offsets.
func (r *ButtonRenderer) Bounds() graphics.Rect {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bounds
}

// Update polls the cursor and mouse buttons and forwards transitions to
// the button. Call once per game Update.
func (r *ButtonRenderer) Update() {
	x, y := ebiten.CursorPosition()

	r.mu.Lock()
	inside := r.bounds.Contains(float64(x), float64(y))
	wasHovered := r.hovered
	r.hovered = inside
	r.mu.Unlock()

	if inside && !wasHovered {
		r.btn.HandleHoverEnter()
	}
	if !inside && wasHovered {
		r.btn.HandleHoverLeave()
	}

	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		r.mu.Lock()
		r.pressed = true
		r.mu.Unlock()
		r.btn.HandlePress()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		r.mu.Lock()
		wasPressed := r.pressed
		r.pressed = false
		r.mu.Unlock()
		if wasPressed {
			r.btn.HandleRelease(inside)
		}
	}
}

// Draw paints the button's current visual snapshot. Call once per game
// Draw.
func (r *ButtonRenderer) Draw(screen *ebiten.Image) {
	r.mu.Lock()
	v := r.visual
	b := r.bounds
	r.mu.Unlock()

	// Scale around the center, then apply the animation offset and lift.
	w := b.Width * v.Scale
	h := b.Height * v.Scale
	x := b.X + (b.Width-w)/2 + v.Offset.X
	y := b.Y + (b.Height-h)/2 + v.Offset.Y - v.Lift

	style := r.btn.Style
	if style.Shadow {
		sx := x + style.ShadowOffset.X
		sy := y + style.ShadowOffset.Y + v.Lift*2
		vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(w), float32(h),
			withOpacity(style.ShadowColor, 0.35*v.Opacity), true)
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h),
		withOpacity(v.Color, v.Opacity), true)

	if v.Text != "" {
		// Debug text is 6x16 per glyph; center it in the body.
		tx := int(x + w/2 - float64(len(v.Text))*3)
		ty := int(y + h/2 - 8)
		ebitenutil.DebugPrintAt(screen, v.Text, tx, ty)
	}
}

func withOpacity(c graphics.Color, opacity float64) color.Color {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return color.RGBA{
		R: c.R(),
		G: c.G(),
		B: c.B(),
		A: uint8(float64(c.A()) * opacity),
	}
}
