package animation

import (
	"math"

	"github.com/go-motion/motion/pkg/graphics"
)

// Tween interpolates between Begin and End values based on animation progress.
//
// Tween maps the 0-1 progress of an animation to any value range or type.
// Use the helper constructors ([TweenFloat64], [TweenColor], [TweenOffset])
// for common types, or create custom tweens with a Lerp function.
//
// Progress outside [0, 1] is accepted: overshooting curves (bounce, elastic,
// back) deliberately evaluate tweens beyond their endpoints.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin
	// value, end value, and progress t. Returns the interpolated value.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at progress t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b graphics.Offset, t float64) graphics.Offset {
	return graphics.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpColor linearly interpolates between two Color values. Each channel is
// interpolated independently and rounded to the nearest byte. Out-of-range
// progress is clamped per channel so overshooting curves saturate at pure
// channel values instead of wrapping.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	return graphics.RGBA8(
		lerpByte(a.R(), b.R(), t),
		lerpByte(a.G(), b.G(), t),
		lerpByte(a.B(), b.B(), t),
		lerpByte(a.A(), b.A(), t),
	)
}

func lerpByte(a, b uint8, t float64) uint8 {
	v := math.Round(LerpFloat64(float64(a), float64(b), t))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenOffset creates a tween for Offset values.
func TweenOffset(begin, end graphics.Offset) *Tween[graphics.Offset] {
	return &Tween[graphics.Offset]{
		Begin: begin,
		End:   end,
		Lerp:  LerpOffset,
	}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{
		Begin: begin,
		End:   end,
		Lerp:  LerpColor,
	}
}
