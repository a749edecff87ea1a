package paint

import (
	"math"
	"sort"

	"github.com/gogpu/retained"
	"github.com/gogpu/retained/internal/color"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// SpreadMethod returns the SVG spreadMethod attribute value.
func (m ExtendMode) SpreadMethod() string {
	switch m {
	case ExtendRepeat:
		return "repeat"
	case ExtendReflect:
		return "reflect"
	default:
		return "pad"
	}
}

// Kind distinguishes gradient geometries.
type Kind uint8

const (
	KindLinear Kind = iota + 1
	KindRadial
)

func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindRadial:
		return "radial"
	}
	return "unknown"
}

// Stop is one color stop as authored on a gradient: a ratio in [0, 1] and
// the source its color is read from.
type Stop struct {
	Ratio float64
	Color ColorSource
}

// ColorStop is a stop with its color resolved.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  Color   // Color at this position
}

// Paint is anything a drawable can be filled with: a Color or a Gradient.
type Paint interface {
	isPaint()
}

func (Color) isPaint() {}

// Gradient is the logical gradient a gradient controller mirrors.
type Gradient interface {
	Paint

	// ID is a process-wide identifier, used for diagnostics and element ids.
	ID() uint64

	// Kind reports the gradient geometry.
	Kind() Kind

	// Transform returns the gradient's transform, if one is set.
	Transform() (Matrix, bool)

	// Extend returns how the gradient extends past its end points.
	Extend() ExtendMode

	// SVGStops returns the stops in the order and at the ratios an SVG
	// paint server needs. Radial gradients may reorder and rescale them.
	SVGStops() []Stop

	// ColorAt samples the gradient at a user-space point.
	ColorAt(x, y float64) Color
}

// gradient holds the state shared by every gradient kind.
type gradient struct {
	id        uint64
	stops     []Stop
	transform *Matrix
	extend    ExtendMode
}

func newGradient() gradient {
	return gradient{id: retained.NextID()}
}

func (*gradient) isPaint() {}

// ID implements Gradient.
func (g *gradient) ID() uint64 { return g.id }

// Transform implements Gradient.
func (g *gradient) Transform() (Matrix, bool) {
	if g.transform == nil {
		return Matrix{}, false
	}
	return *g.transform, true
}

// Extend implements Gradient.
func (g *gradient) Extend() ExtendMode { return g.extend }

// Stops returns the authored stops. The slice must not be modified.
func (g *gradient) Stops() []Stop { return g.stops }

func (g *gradient) addStop(ratio float64, c ColorSource) {
	if ratio < 0 || ratio > 1 {
		retained.Logger().Warn("paint: stop ratio out of range, clamping",
			"gradient", g.id, "ratio", ratio)
		ratio = clamp01(ratio)
	}
	g.stops = append(g.stops, Stop{Ratio: ratio, Color: c})
}

func (g *gradient) setTransform(m *Matrix) {
	if m == nil {
		g.transform = nil
		return
	}
	t := *m
	g.transform = &t
}

// resolve snapshots stop colors for sampling.
func resolve(stops []Stop) []ColorStop {
	out := make([]ColorStop, len(stops))
	for i, s := range stops {
		out[i] = ColorStop{Offset: s.Ratio, Color: s.Color.Value()}
	}
	return out
}

// toGradientSpace maps a user-space point through the inverse transform.
func (g *gradient) toGradientSpace(x, y float64) (float64, float64) {
	if g.transform == nil {
		return x, y
	}
	inv, ok := g.transform.Invert()
	if !ok {
		return x, y
	}
	p := inv.TransformPoint(Pt(x, y))
	return p.X, p.Y
}

// sortStops sorts color stops by offset.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// interpolateColorLinear interpolates between two colors in linear sRGB
// space, which is what SVG user agents approximate for color-interpolation.
func interpolateColorLinear(c1, c2 Color, t float64) Color {
	m := color.MixLinear(
		color.RGBA{R: c1.R, G: c1.G, B: c1.B, A: c1.A},
		color.RGBA{R: c2.R, G: c2.G, B: c2.B, A: c2.A},
		t)
	return Color{R: m.R, G: m.G, B: m.B, A: m.A}
}

// colorAtOffset returns the interpolated color at a given offset.
// Handles edge cases: empty stops, single stop, out-of-bounds t.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) Color {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = applyExtendMode(t, mode)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})

	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}
	if idx == 0 || sorted[idx].Offset == t {
		return sorted[idx].Color
	}

	// sorted[idx-1].Offset < t < sorted[idx].Offset
	stop1 := sorted[idx-1]
	stop2 := sorted[idx]
	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return interpolateColorLinear(stop1.Color, stop2.Color, localT)
}
