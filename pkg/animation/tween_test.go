package animation

import (
	"testing"

	"github.com/go-motion/motion/pkg/errors"
	"github.com/go-motion/motion/pkg/graphics"
)

func TestLerpFloat64Endpoints(t *testing.T) {
	if got := LerpFloat64(3, 7, 0); got != 3 {
		t.Errorf("lerp(3,7,0) = %v, want 3", got)
	}
	if got := LerpFloat64(3, 7, 1); got != 7 {
		t.Errorf("lerp(3,7,1) = %v, want 7", got)
	}
	for _, x := range []float64{-0.5, 0, 0.25, 0.99, 1, 1.5} {
		if got := LerpFloat64(5, 5, x); got != 5 {
			t.Errorf("lerp(5,5,%v) = %v, want 5", x, got)
		}
	}
}

func TestLerpFloat64Overshoot(t *testing.T) {
	// Progress outside [0,1] extrapolates; overshooting curves rely on it.
	if got := LerpFloat64(0, 100, 1.1); got != 110 {
		t.Errorf("lerp(0,100,1.1) = %v, want 110", got)
	}
	if got := LerpFloat64(0, 100, -0.1); got != -10 {
		t.Errorf("lerp(0,100,-0.1) = %v, want -10", got)
	}
}

func TestLerpColorMidpoint(t *testing.T) {
	mid := LerpColor(graphics.ColorBlack, graphics.ColorWhite, 0.5)
	for name, ch := range map[string]uint8{"r": mid.R(), "g": mid.G(), "b": mid.B()} {
		if ch < 127 || ch > 128 {
			t.Errorf("channel %s = %d, want ~128", name, ch)
		}
	}
	if mid.A() != 255 {
		t.Errorf("alpha = %d, want 255", mid.A())
	}
}

func TestLerpColorSaturates(t *testing.T) {
	// Overshoot past a pure channel value clamps instead of wrapping.
	over := LerpColor(graphics.RGB(200, 0, 0), graphics.RGB(255, 0, 0), 1.5)
	if over.R() != 255 {
		t.Errorf("overshot red = %d, want 255", over.R())
	}
	under := LerpColor(graphics.RGB(10, 0, 0), graphics.RGB(255, 0, 0), -0.5)
	if under.R() != 0 {
		t.Errorf("undershot red = %d, want 0", under.R())
	}
}

func TestLerpOffset(t *testing.T) {
	got := LerpOffset(graphics.Offset{X: 0, Y: 10}, graphics.Offset{X: 100, Y: 30}, 0.5)
	want := graphics.Offset{X: 50, Y: 20}
	if got != want {
		t.Errorf("LerpOffset = %+v, want %+v", got, want)
	}
}

func TestTweenEvaluate(t *testing.T) {
	tw := TweenFloat64(100, 200)
	if got := tw.Evaluate(0.5); got != 150 {
		t.Errorf("Evaluate(0.5) = %v, want 150", got)
	}

	ct := TweenColor(graphics.ColorRed, graphics.ColorBlue)
	if got := ct.Evaluate(0); got != graphics.ColorRed {
		t.Errorf("color Evaluate(0) = %v, want red", got)
	}
	if got := ct.Evaluate(1); got != graphics.ColorBlue {
		t.Errorf("color Evaluate(1) = %v, want blue", got)
	}
}

func TestValueKindMismatch(t *testing.T) {
	_, err := lerpValues("test", Float(0), Color(graphics.ColorRed), 0.5)
	if !errors.IsKind(err, errors.KindValue) {
		t.Fatalf("expected KindValue error, got %v", err)
	}
	if err := checkValues("test", Float(0), Float(1)); err != nil {
		t.Errorf("matching kinds rejected: %v", err)
	}
	if err := checkValues("test", nil, Float(1)); !errors.IsKind(err, errors.KindValue) {
		t.Errorf("expected KindValue error for nil value, got %v", err)
	}
}
