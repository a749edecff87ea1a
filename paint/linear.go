package paint

// LinearGradient is a linear color transition between two points.
//
// Example:
//
//	g := paint.NewLinearGradient(0, 0, 100, 0).
//	    AddColorStop(0, paint.Red).
//	    AddColorStop(1, paint.NewColorProperty(paint.Blue))
type LinearGradient struct {
	gradient
	Start Point // Start point of the gradient (ratio 0)
	End   Point // End point of the gradient (ratio 1)
}

// NewLinearGradient creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{
		gradient: newGradient(),
		Start:    Pt(x0, y0),
		End:      Pt(x1, y1),
	}
}

// AddColorStop appends a stop. Ratio should be in [0, 1]; values outside
// are clamped. Returns the gradient for method chaining.
func (g *LinearGradient) AddColorStop(ratio float64, c ColorSource) *LinearGradient {
	g.addStop(ratio, c)
	return g
}

// SetTransform sets the gradient transform; nil clears it.
// Returns the gradient for method chaining.
func (g *LinearGradient) SetTransform(m *Matrix) *LinearGradient {
	g.setTransform(m)
	return g
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (g *LinearGradient) SetExtend(mode ExtendMode) *LinearGradient {
	g.extend = mode
	return g
}

// Kind implements Gradient.
func (g *LinearGradient) Kind() Kind { return KindLinear }

// SVGStops implements Gradient. Linear stops map one to one.
func (g *LinearGradient) SVGStops() []Stop {
	out := make([]Stop, len(g.stops))
	copy(out, g.stops)
	return out
}

// ColorAt implements Gradient.
func (g *LinearGradient) ColorAt(x, y float64) Color {
	x, y = g.toGradientSpace(x, y)

	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	stops := resolve(g.stops)

	if lengthSq == 0 {
		if len(stops) == 0 {
			return Transparent
		}
		return sortStops(stops)[0].Color
	}

	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := ((x-g.Start.X)*dx + (y-g.Start.Y)*dy) / lengthSq
	return colorAtOffset(stops, t, g.extend)
}
