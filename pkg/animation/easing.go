package animation

import (
	"fmt"
	"math"

	"github.com/go-motion/motion/pkg/errors"
)

// EasingKind identifies one of the built-in easing curves.
//
// The set is closed: every kind maps to exactly one function, and an
// unrecognized kind is rejected when an animation is registered, never
// at tick time. For curves outside this set use [CubicBezier] with
// [Config].CustomEasing.
type EasingKind int

const (
	// Linear applies no easing.
	Linear EasingKind = iota
	// EaseInQuad accelerates quadratically from rest.
	EaseInQuad
	// EaseOutQuad decelerates quadratically to rest.
	EaseOutQuad
	// EaseInOutQuad accelerates then decelerates quadratically.
	EaseInOutQuad
	// EaseInCubic accelerates cubically from rest.
	EaseInCubic
	// EaseOutCubic decelerates cubically to rest.
	EaseOutCubic
	// EaseInOutCubic accelerates then decelerates cubically.
	EaseInOutCubic
	// BounceOut settles with decreasing-amplitude bounces.
	BounceOut
	// ElasticOut overshoots with an exponentially decaying oscillation.
	ElasticOut
	// EaseInBack pulls slightly backward before accelerating.
	EaseInBack
	// EaseOutBack overshoots the target slightly before settling.
	EaseOutBack
	// EaseInOutBack combines EaseInBack and EaseOutBack.
	EaseInOutBack
	// EaseInCirc accelerates along a quarter-circle arc.
	EaseInCirc
	// EaseOutCirc decelerates along a quarter-circle arc.
	EaseOutCirc
	// EaseInOutCirc combines EaseInCirc and EaseOutCirc.
	EaseInOutCirc
)

var easingNames = map[EasingKind]string{
	Linear:         "linear",
	EaseInQuad:     "ease_in_quad",
	EaseOutQuad:    "ease_out_quad",
	EaseInOutQuad:  "ease_in_out_quad",
	EaseInCubic:    "ease_in_cubic",
	EaseOutCubic:   "ease_out_cubic",
	EaseInOutCubic: "ease_in_out_cubic",
	BounceOut:      "bounce_out",
	ElasticOut:     "elastic_out",
	EaseInBack:     "ease_in_back",
	EaseOutBack:    "ease_out_back",
	EaseInOutBack:  "ease_in_out_back",
	EaseInCirc:     "ease_in_circ",
	EaseOutCirc:    "ease_out_circ",
	EaseInOutCirc:  "ease_in_out_circ",
}

func (k EasingKind) String() string {
	if name, ok := easingNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EasingKind(%d)", int(k))
}

// ParseEasing resolves an easing name ("ease_out_cubic", "bounce_out", ...)
// to its kind. Names match the String form of each kind.
func ParseEasing(name string) (EasingKind, error) {
	for kind, n := range easingNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, errors.New("animation.ParseEasing", errors.KindEasing, "unknown easing %q", name)
}

// Func returns the easing function for the kind, or a KindEasing error
// for a kind outside the closed set.
func (k EasingKind) Func() (func(float64) float64, error) {
	if fn, ok := easingFuncs[k]; ok {
		return fn, nil
	}
	return nil, errors.New("animation.EasingKind.Func", errors.KindEasing, "unknown easing kind %d", int(k))
}

var easingFuncs = map[EasingKind]func(float64) float64{
	Linear:         func(t float64) float64 { return t },
	EaseInQuad:     easeInQuad,
	EaseOutQuad:    easeOutQuad,
	EaseInOutQuad:  easeInOutQuad,
	EaseInCubic:    easeInCubic,
	EaseOutCubic:   easeOutCubic,
	EaseInOutCubic: easeInOutCubic,
	BounceOut:      bounceOut,
	ElasticOut:     elasticOut,
	EaseInBack:     easeInBack,
	EaseOutBack:    easeOutBack,
	EaseInOutBack:  easeInOutBack,
	EaseInCirc:     easeInCirc,
	EaseOutCirc:    easeOutCirc,
	EaseInOutCirc:  easeInOutCirc,
}

func easeInQuad(t float64) float64 { return t * t }

func easeOutQuad(t float64) float64 { return t * (2 - t) }

func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func easeInCubic(t float64) float64 { return t * t * t }

func easeOutCubic(t float64) float64 { return 1 - math.Pow(1-t, 3) }

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// bounceOut is a piecewise parabola with decreasing amplitude.
func bounceOut(t float64) float64 {
	const n, d = 7.5625, 2.75
	switch {
	case t < 1/d:
		return n * t * t
	case t < 2/d:
		t -= 1.5 / d
		return n*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return n*t*t + 0.9375
	default:
		t -= 2.625 / d
		return n*t*t + 0.984375
	}
}

// elasticOut is an exponentially decaying sinusoid that overshoots the
// endpoint before settling.
func elasticOut(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*(2*math.Pi)/3) + 1
}

const backOvershoot = 1.70158

func easeInBack(t float64) float64 {
	const c1 = backOvershoot
	const c3 = c1 + 1
	return c3*t*t*t - c1*t*t
}

func easeOutBack(t float64) float64 {
	const c1 = backOvershoot
	const c3 = c1 + 1
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

func easeInOutBack(t float64) float64 {
	const c1 = backOvershoot
	const c2 = c1 * 1.525
	if t < 0.5 {
		return (math.Pow(2*t, 2) * ((c2+1)*2*t - c2)) / 2
	}
	return (math.Pow(2*t-2, 2)*((c2+1)*(t*2-2)+c2) + 2) / 2
}

func easeInCirc(t float64) float64 {
	return 1 - math.Sqrt(1-t*t)
}

func easeOutCirc(t float64) float64 {
	return math.Sqrt(1 - (t-1)*(t-1))
}

func easeInOutCirc(t float64) float64 {
	if t < 0.5 {
		return (1 - math.Sqrt(1-4*t*t)) / 2
	}
	return (math.Sqrt(1-math.Pow(-2*t+2, 2)) + 1) / 2
}

// CubicBezier returns a cubic-bezier easing function matching CSS
// cubic-bezier(). The parameters define the two control points (x1,y1)
// and (x2,y2); the curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for iter := 0; iter < 8; iter++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for iter := 0; iter < 12; iter++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
