// Package color converts colors between sRGB and linear light for gradient
// interpolation.
package color

import "math"

// RGBA is a color with float64 components in [0, 1]. Which space R, G and
// B are in depends on context; alpha is straight and never gamma-encoded.
type RGBA struct {
	R, G, B, A float64
}

// ToLinear decodes one sRGB component to linear light.
func ToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// ToSRGB encodes one linear component as sRGB.
func ToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// Linear returns c, given in sRGB, in linear light.
func (c RGBA) Linear() RGBA {
	return RGBA{R: ToLinear(c.R), G: ToLinear(c.G), B: ToLinear(c.B), A: c.A}
}

// SRGB returns c, given in linear light, in sRGB.
func (c RGBA) SRGB() RGBA {
	return RGBA{R: ToSRGB(c.R), G: ToSRGB(c.G), B: ToSRGB(c.B), A: c.A}
}

// MixLinear interpolates between the sRGB colors a and b in linear light,
// which is what SVG user agents approximate with
// color-interpolation="linearRGB". The result is sRGB.
func MixLinear(a, b RGBA, t float64) RGBA {
	la, lb := a.Linear(), b.Linear()
	return RGBA{
		R: la.R + t*(lb.R-la.R),
		G: la.G + t*(lb.G-la.G),
		B: la.B + t*(lb.B-la.B),
		A: la.A + t*(lb.A-la.A),
	}.SRGB()
}
