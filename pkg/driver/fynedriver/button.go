// Package fynedriver hosts animated widgets as native Fyne canvas
// objects.
//
// The driver registers itself under the framework tag "fyne". Rendering
// a button yields a fyne.CanvasObject that can be placed in any Fyne
// container; hover and press events flow back into the button through
// the desktop driver interfaces.
package fynedriver

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	fynewidget "fyne.io/fyne/v2/widget"

	"github.com/go-motion/motion/pkg/graphics"
	"github.com/go-motion/motion/pkg/widget"
)

func init() {
	widget.RegisterFramework("fyne", func(b *widget.Button) widget.Renderer {
		return &ButtonRenderer{btn: b}
	})
}

// ButtonRenderer adapts a button to a Fyne canvas object.
type ButtonRenderer struct {
	btn    *widget.Button
	native *animatedButton
}

// Render implements widget.Renderer. When parent is a *fyne.Container
// the native widget is added to it; the native widget is returned either
// way.
func (r *ButtonRenderer) Render(parent any) (any, error) {
	r.native = newAnimatedButton(r.btn)
	if c, ok := parent.(*fyne.Container); ok && c != nil {
		c.Add(r.native)
	}
	return r.native, nil
}

// UpdateAppearance implements widget.Renderer.
func (r *ButtonRenderer) UpdateAppearance(v widget.Visual) {
	if r.native == nil {
		return
	}
	r.native.apply(v)
}

// animatedButton is the native Fyne widget. It forwards desktop pointer
// events to the animated button and repaints from visual snapshots.
type animatedButton struct {
	fynewidget.BaseWidget
	core *widget.Button

	bg     *canvas.Rectangle
	shadow *canvas.Rectangle
	label  *canvas.Text

	visual widget.Visual
}

var (
	_ desktop.Hoverable = (*animatedButton)(nil)
	_ desktop.Mouseable = (*animatedButton)(nil)
)

func newAnimatedButton(core *widget.Button) *animatedButton {
	cfg := core.Config
	style := core.Style

	a := &animatedButton{
		core:   core,
		bg:     canvas.NewRectangle(toNRGBA(style.NormalColor)),
		shadow: canvas.NewRectangle(toNRGBA(style.ShadowColor)),
		label:  canvas.NewText(core.Text, toNRGBA(cfg.TextColor)),
	}
	a.bg.CornerRadius = float32(cfg.BorderRadius)
	a.shadow.CornerRadius = float32(cfg.BorderRadius)
	a.shadow.Hidden = !style.Shadow
	a.label.TextSize = float32(cfg.FontSize)
	a.label.Alignment = fyne.TextAlignCenter
	a.visual = core.Visual()
	a.ExtendBaseWidget(a)
	return a
}

func (a *animatedButton) CreateRenderer() fyne.WidgetRenderer {
	return &nativeRenderer{a: a}
}

func (a *animatedButton) MouseIn(*desktop.MouseEvent)    { a.core.HandleHoverEnter() }
func (a *animatedButton) MouseMoved(*desktop.MouseEvent) {}
func (a *animatedButton) MouseOut()                      { a.core.HandleHoverLeave() }
func (a *animatedButton) MouseDown(*desktop.MouseEvent)  { a.core.HandlePress() }
func (a *animatedButton) MouseUp(*desktop.MouseEvent)    { a.core.HandleRelease(true) }

func (a *animatedButton) apply(v widget.Visual) {
	a.visual = v
	a.bg.FillColor = toNRGBA(v.Color)
	a.label.Color = toNRGBA(v.TextColor)
	a.label.Text = v.Text
	a.Refresh()
}

// nativeRenderer lays the shadow, body and label out according to the
// current visual snapshot.
type nativeRenderer struct {
	a *animatedButton
}

func (r *nativeRenderer) MinSize() fyne.Size {
	cfg := r.a.core.Config
	return fyne.NewSize(float32(cfg.Width), float32(cfg.Height))
}

func (r *nativeRenderer) Layout(size fyne.Size) {
	v := r.a.visual
	style := r.a.core.Style

	// Scale around the center, then shift by the animation offset and
	// raise by the lift.
	w := float32(float64(size.Width) * v.Scale)
	h := float32(float64(size.Height) * v.Scale)
	x := (size.Width-w)/2 + float32(v.Offset.X)
	y := (size.Height-h)/2 + float32(v.Offset.Y) - float32(v.Lift)

	r.a.bg.Resize(fyne.NewSize(w, h))
	r.a.bg.Move(fyne.NewPos(x, y))

	r.a.shadow.Resize(fyne.NewSize(w, h))
	r.a.shadow.Move(fyne.NewPos(
		x+float32(style.ShadowOffset.X),
		y+float32(style.ShadowOffset.Y)+float32(v.Lift*2)))

	r.a.label.Resize(fyne.NewSize(w, r.a.label.MinSize().Height))
	r.a.label.Move(fyne.NewPos(x, y+(h-r.a.label.MinSize().Height)/2))
}

func (r *nativeRenderer) Refresh() {
	r.Layout(r.a.Size())
	canvas.Refresh(r.a)
}

func (r *nativeRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.a.shadow, r.a.bg, r.a.label}
}

func (r *nativeRenderer) Destroy() {}

func toNRGBA(c graphics.Color) color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}
