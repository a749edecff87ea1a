package paint

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color is an immutable non-premultiplied color.
// Each component is in the range [0, 1].
//
// Color is also a constant ColorSource: it never notifies subscribers.
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// NRGBA converts the color to the standard non-premultiplied 8-bit form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(math.Round(c.R * 255))),
		G: uint8(clamp255(math.Round(c.G * 255))),
		B: uint8(clamp255(math.Round(c.B * 255))),
		A: uint8(clamp255(math.Round(c.A * 255))),
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without '#'.
// Malformed input yields opaque black; use ParseColor to detect errors.
func Hex(hex string) Color {
	c, err := parseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

func parseHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b, a uint32
	a = 255

	var err error
	digit := func(s string, val *uint32) {
		if err != nil {
			return
		}
		var v uint64
		v, err = strconv.ParseUint(s, 16, 32)
		*val = uint32(v)
	}

	switch len(hex) {
	case 3: // RGB
		digit(hex[0:1], &r)
		digit(hex[1:2], &g)
		digit(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		digit(hex[0:1], &r)
		digit(hex[1:2], &g)
		digit(hex[2:3], &b)
		digit(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		digit(hex[0:2], &r)
		digit(hex[2:4], &g)
		digit(hex[4:6], &b)
	case 8: // RRGGBBAA
		digit(hex[0:2], &r)
		digit(hex[2:4], &g)
		digit(hex[4:6], &b)
		digit(hex[6:8], &a)
	default:
		return Color{}, fmt.Errorf("%w: hex %q has %d digits", ErrBadColor, hex, len(hex))
	}
	if err != nil {
		return Color{}, fmt.Errorf("%w: hex %q: %v", ErrBadColor, hex, err)
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// Opaque returns the color with alpha forced to 1.
func (c Color) Opaque() Color {
	c.A = 1
	return c
}

// CSS formats the color as an SVG/CSS color value.
// Opaque colors use rgb(); translucent ones use rgba().
func (c Color) CSS() string {
	n := c.NRGBA()
	if n.A == 255 {
		return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", n.R, n.G, n.B, formatFloat(c.A))
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Value implements ColorSource.
func (c Color) Value() Color { return c }

// Subscribe implements ColorSource. A constant color never changes, so fn is
// never called.
func (c Color) Subscribe(func()) (cancel func()) { return func() {} }

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// formatFloat prints a float in the shortest form SVG accepts.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)
