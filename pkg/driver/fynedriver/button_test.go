package fynedriver

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/go-motion/motion/pkg/graphics"
	motiontest "github.com/go-motion/motion/pkg/testing"
	"github.com/go-motion/motion/pkg/widget"
)

func newTestButton(t *testing.T) *widget.Button {
	t.Helper()
	b := widget.NewButton("Save")
	b.Manager().SetClock(motiontest.NewFakeClock())
	b.Manager().SetExternalTicks(true)
	t.Cleanup(b.StopAnimations)
	return b
}

func TestRenderBuildsNativeWidget(t *testing.T) {
	test.NewApp()
	b := newTestButton(t)

	r := &ButtonRenderer{btn: b}
	handle, err := r.Render(nil)
	if err != nil {
		t.Fatal(err)
	}
	native, ok := handle.(*animatedButton)
	if !ok {
		t.Fatalf("handle is %T, want *animatedButton", handle)
	}

	min := native.MinSize()
	if min.Width < float32(b.Config.Width) || min.Height < float32(b.Config.Height) {
		t.Errorf("min size %v smaller than configured %dx%d", min, b.Config.Width, b.Config.Height)
	}
}

func TestRenderAddsToContainer(t *testing.T) {
	test.NewApp()
	b := newTestButton(t)

	parent := container.NewWithoutLayout()
	r := &ButtonRenderer{btn: b}
	if _, err := r.Render(parent); err != nil {
		t.Fatal(err)
	}
	if len(parent.Objects) != 1 {
		t.Errorf("parent has %d objects, want 1", len(parent.Objects))
	}
}

func TestAppearanceReachesCanvas(t *testing.T) {
	test.NewApp()
	b := newTestButton(t)

	r := &ButtonRenderer{btn: b}
	if _, err := r.Render(nil); err != nil {
		t.Fatal(err)
	}

	v := b.Visual()
	v.Color = graphics.ColorRed
	r.UpdateAppearance(v)

	want := color.NRGBA{R: 255, A: 255}
	if got := r.native.bg.FillColor; got != want {
		t.Errorf("fill color = %v, want %v", got, want)
	}
}

func TestPointerEventsDriveStates(t *testing.T) {
	test.NewApp()
	b := newTestButton(t)

	r := &ButtonRenderer{btn: b}
	handle, err := r.Render(nil)
	if err != nil {
		t.Fatal(err)
	}
	native := handle.(*animatedButton)

	native.MouseIn(&desktop.MouseEvent{})
	if got := b.State(); got != widget.StateHover {
		t.Fatalf("state after MouseIn = %v, want hover", got)
	}
	native.MouseDown(&desktop.MouseEvent{})
	if got := b.State(); got != widget.StatePressed {
		t.Fatalf("state after MouseDown = %v, want pressed", got)
	}
	native.MouseUp(&desktop.MouseEvent{})
	if got := b.State(); got != widget.StateHover {
		t.Fatalf("state after MouseUp = %v, want hover", got)
	}
	native.MouseOut()
	if got := b.State(); got != widget.StateNormal {
		t.Fatalf("state after MouseOut = %v, want normal", got)
	}
}
