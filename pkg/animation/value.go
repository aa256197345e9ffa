package animation

import (
	"github.com/go-motion/motion/pkg/errors"
	"github.com/go-motion/motion/pkg/graphics"
)

// Value is an animatable quantity: a scalar, a color, or a 2D offset.
//
// The set is sealed. A [Manager] interpolates start and end values of the
// same concrete type; mixing types is a KindValue error at registration.
type Value interface {
	// lerp interpolates toward end at progress t. ok is false when end is
	// a different concrete type.
	lerp(end Value, t float64) (v Value, ok bool)
}

// Float is a scalar animation value.
type Float float64

// Color is a color animation value.
type Color graphics.Color

// Offset is a positional animation value.
type Offset graphics.Offset

func (f Float) lerp(end Value, t float64) (Value, bool) {
	e, ok := end.(Float)
	if !ok {
		return nil, false
	}
	return Float(LerpFloat64(float64(f), float64(e), t)), true
}

func (c Color) lerp(end Value, t float64) (Value, bool) {
	e, ok := end.(Color)
	if !ok {
		return nil, false
	}
	return Color(LerpColor(graphics.Color(c), graphics.Color(e), t)), true
}

func (o Offset) lerp(end Value, t float64) (Value, bool) {
	e, ok := end.(Offset)
	if !ok {
		return nil, false
	}
	return Offset(LerpOffset(graphics.Offset(o), graphics.Offset(e), t)), true
}

// lerpValues interpolates between two values of the same kind.
func lerpValues(op string, start, end Value, t float64) (Value, error) {
	if start == nil || end == nil {
		return nil, errors.New(op, errors.KindValue, "nil animation value")
	}
	v, ok := start.lerp(end, t)
	if !ok {
		return nil, errors.New(op, errors.KindValue,
			"mismatched value kinds %T and %T", start, end)
	}
	return v, nil
}

// checkValues validates a start/end pair without interpolating.
func checkValues(op string, start, end Value) error {
	_, err := lerpValues(op, start, end, 0)
	return err
}
