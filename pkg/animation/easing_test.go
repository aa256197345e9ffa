package animation

import (
	"math"
	"testing"

	"github.com/go-motion/motion/pkg/errors"
)

const easingTolerance = 1e-6

func allEasingKinds() []EasingKind {
	kinds := make([]EasingKind, 0, len(easingNames))
	for k := range easingNames {
		kinds = append(kinds, k)
	}
	return kinds
}

func TestEasingEndpoints(t *testing.T) {
	for _, kind := range allEasingKinds() {
		fn, err := kind.Func()
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", kind, err)
		}
		if got := fn(0); math.Abs(got) > easingTolerance {
			t.Errorf("%v: f(0) = %v, want 0", kind, got)
		}
		if got := fn(1); math.Abs(got-1) > easingTolerance {
			t.Errorf("%v: f(1) = %v, want 1", kind, got)
		}
	}
}

func TestEasingContinuityAtSegmentBoundaries(t *testing.T) {
	// BounceOut is piecewise; check the joins do not jump.
	fn, _ := BounceOut.Func()
	for _, boundary := range []float64{1 / 2.75, 2 / 2.75, 2.5 / 2.75} {
		lo := fn(boundary - 1e-9)
		hi := fn(boundary + 1e-9)
		if math.Abs(hi-lo) > 1e-6 {
			t.Errorf("bounce_out discontinuous at %v: %v vs %v", boundary, lo, hi)
		}
	}
}

func TestEasingOvershootVariants(t *testing.T) {
	// Elastic and back deliberately leave [0,1] mid-curve.
	overshooters := []EasingKind{ElasticOut, EaseOutBack, EaseInBack}
	for _, kind := range overshooters {
		fn, _ := kind.Func()
		outside := false
		for x := 0.01; x < 1; x += 0.01 {
			if v := fn(x); v < 0 || v > 1 {
				outside = true
				break
			}
		}
		if !outside {
			t.Errorf("%v: expected values outside [0,1] mid-curve", kind)
		}
	}
}

func TestUnknownEasingKind(t *testing.T) {
	_, err := EasingKind(999).Func()
	if !errors.IsKind(err, errors.KindEasing) {
		t.Fatalf("expected KindEasing error, got %v", err)
	}
}

func TestParseEasing(t *testing.T) {
	for _, kind := range allEasingKinds() {
		parsed, err := ParseEasing(kind.String())
		if err != nil {
			t.Fatalf("ParseEasing(%q): %v", kind.String(), err)
		}
		if parsed != kind {
			t.Errorf("ParseEasing(%q) = %v, want %v", kind.String(), parsed, kind)
		}
	}

	if _, err := ParseEasing("ease_out_nope"); !errors.IsKind(err, errors.KindEasing) {
		t.Errorf("expected KindEasing error for unknown name, got %v", err)
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	curves := [][4]float64{
		{0.25, 0.1, 0.25, 1.0},
		{0.4, 0.0, 0.2, 1.0},
		{0.22, 1.0, 0.36, 1.0},
	}
	for _, c := range curves {
		fn := CubicBezier(c[0], c[1], c[2], c[3])
		if got := fn(0); got != 0 {
			t.Errorf("bezier%v: f(0) = %v", c, got)
		}
		if got := fn(1); got != 1 {
			t.Errorf("bezier%v: f(1) = %v", c, got)
		}
		// Monotone control points give monotone output.
		prev := 0.0
		for x := 0.05; x <= 1.0; x += 0.05 {
			v := fn(x)
			if v < prev-1e-9 {
				t.Errorf("bezier%v not monotone at t=%v", c, x)
			}
			prev = v
		}
	}
}
