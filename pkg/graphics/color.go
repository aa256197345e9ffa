package graphics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// A returns the alpha byte.
func (c Color) A() uint8 { return uint8(c >> 24) }

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Hex returns the color as "#rrggbb". Alpha is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}

// RGBAString returns the color as a CSS-style "rgba(r, g, b, a)" string.
func (c Color) RGBAString() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		c.R(), c.G(), c.B(), strconv.FormatFloat(c.Alpha(), 'g', 3, 64))
}

// Lighten moves each channel toward white by factor (0-1).
func (c Color) Lighten(factor float64) Color {
	f := clamp01(factor)
	lift := func(ch uint8) uint8 {
		return uint8(math.Min(maxByte, float64(ch)+(maxByte-float64(ch))*f))
	}
	return RGBA8(lift(c.R()), lift(c.G()), lift(c.B()), c.A())
}

// Darken scales each channel toward black by factor (0-1).
func (c Color) Darken(factor float64) Color {
	f := clamp01(factor)
	drop := func(ch uint8) uint8 {
		return uint8(math.Max(0, float64(ch)*(1-f)))
	}
	return RGBA8(drop(c.R()), drop(c.G()), drop(c.B()), c.A())
}

// ParseColor parses a color from one of the accepted text forms:
// "#rgb", "#rrggbb", "rgb(r, g, b)", "rgba(r, g, b, a)" or an SVG 1.1
// color name ("red", "steelblue", ...). Name lookup uses the
// x/image/colornames table.
func ParseColor(s string) (Color, error) {
	in := strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(in, "#"):
		return parseHex(in)
	case strings.HasPrefix(in, "rgb"):
		return parseRGBFunc(in)
	default:
		if c, ok := colornames.Map[in]; ok {
			return RGBA8(c.R, c.G, c.B, c.A), nil
		}
		return 0, fmt.Errorf("unknown color %q", s)
	}
}

// MustParseColor is ParseColor that panics on invalid input. Intended for
// package-level style declarations with literal inputs.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(in string) (Color, error) {
	hex := strings.TrimPrefix(in, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid hex color %q", in)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", in, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func parseRGBFunc(in string) (Color, error) {
	open := strings.IndexByte(in, '(')
	closing := strings.IndexByte(in, ')')
	if open < 0 || closing < open {
		return 0, fmt.Errorf("invalid rgb color %q", in)
	}
	parts := strings.Split(in[open+1:closing], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return 0, fmt.Errorf("invalid rgb color %q", in)
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return 0, fmt.Errorf("invalid rgb channel in %q", in)
		}
		ch[i] = uint8(v)
	}
	a := 1.0
	if len(parts) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid alpha in %q", in)
		}
		a = v
	}
	return RGBA(ch[0], ch[1], ch[2], a), nil
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
