package paint

import (
	"math"
	"slices"
)

// RadialGradient is a two-circle radial gradient: ratio 0 lies on the start
// circle and ratio 1 on the end circle.
//
// Either circle may be the larger one, and radii may be given negative; the
// absolute value is used. SVGStops and SVGGeometry translate the two-circle
// form into the single-circle-plus-focus form SVG understands.
type RadialGradient struct {
	gradient
	Start       Point
	StartRadius float64
	End         Point
	EndRadius   float64
}

// NewRadialGradient creates a gradient from the circle (x0, y0, r0) to the
// circle (x1, y1, r1).
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradient {
	return &RadialGradient{
		gradient:    newGradient(),
		Start:       Pt(x0, y0),
		StartRadius: r0,
		End:         Pt(x1, y1),
		EndRadius:   r1,
	}
}

// AddColorStop appends a stop. Returns the gradient for method chaining.
func (g *RadialGradient) AddColorStop(ratio float64, c ColorSource) *RadialGradient {
	g.addStop(ratio, c)
	return g
}

// SetTransform sets the gradient transform; nil clears it.
func (g *RadialGradient) SetTransform(m *Matrix) *RadialGradient {
	g.setTransform(m)
	return g
}

// SetExtend sets the extend mode for the gradient.
func (g *RadialGradient) SetExtend(mode ExtendMode) *RadialGradient {
	g.extend = mode
	return g
}

// Kind implements Gradient.
func (g *RadialGradient) Kind() Kind { return KindRadial }

// radii returns the normalized (non-negative) radii and which one is larger.
func (g *RadialGradient) radii() (minR, maxR float64, startIsLarger bool) {
	r0, r1 := math.Abs(g.StartRadius), math.Abs(g.EndRadius)
	if r0 > r1 {
		return r1, r0, true
	}
	return r0, r1, false
}

// SVGGeometry returns the large circle and the focal point (the apex of the
// cone through both circles) for an SVG radialGradient element.
func (g *RadialGradient) SVGGeometry() (center Point, radius float64, focal Point) {
	r0, r1 := math.Abs(g.StartRadius), math.Abs(g.EndRadius)
	_, maxR, startIsLarger := g.radii()

	center = g.End
	if startIsLarger {
		center = g.Start
	}
	if r0 == r1 {
		return center, maxR, center
	}
	return center, maxR, g.Start.Lerp(g.End, r0/(r0-r1))
}

// SVGStops implements Gradient.
//
// SVG measures ratios from the focal point to the large circle. A stop's
// ratio is therefore rescaled so that 0 lands on the small circle; when the
// start circle is the larger one, ratios are mirrored and the list reversed
// to keep offsets ascending.
func (g *RadialGradient) SVGStops() []Stop {
	minR, maxR, startIsLarger := g.radii()
	base := 0.0
	if maxR > 0 {
		base = minR / maxR
	}

	out := make([]Stop, len(g.stops))
	for i, s := range g.stops {
		r := clamp01(s.Ratio)
		if startIsLarger {
			r = 1 - r
		}
		out[i] = Stop{Ratio: base + r*(1-base), Color: s.Color}
	}
	if startIsLarger {
		slices.Reverse(out)
	}
	return out
}

// ColorAt implements Gradient. Sampling follows the SVG model so that the
// result matches what the paint server renders.
func (g *RadialGradient) ColorAt(x, y float64) Color {
	x, y = g.toGradientSpace(x, y)

	stops := resolve(g.SVGStops())
	center, radius, focal := g.SVGGeometry()
	if radius == 0 {
		if len(stops) == 0 {
			return Transparent
		}
		return sortStops(stops)[0].Color
	}

	return colorAtOffset(stops, focalT(x, y, center, radius, focal), g.extend)
}

// focalT computes the gradient parameter of (x, y) for a focal gradient:
// the ratio of the point's distance from the focus to the distance from the
// focus to the circle along the same ray.
func focalT(x, y float64, center Point, radius float64, focal Point) float64 {
	dx := x - focal.X
	dy := y - focal.Y

	if focal == center {
		return math.Sqrt(dx*dx+dy*dy) / radius
	}

	fx := center.X - focal.X
	fy := center.Y - focal.Y

	// |t*(dx,dy) - (fx,fy)|^2 = radius^2
	a := dx*dx + dy*dy
	b := -2 * (dx*fx + dy*fy)
	c := fx*fx + fy*fy - radius*radius

	if a == 0 {
		return 0
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 1
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	var t float64
	switch {
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return 0
	}

	// The ray reaches the circle at parameter t, so the point sits at 1/t.
	return 1 / t
}
