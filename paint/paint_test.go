package paint

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/f64"
)

// approx compares floats with a tolerance suitable for ratio math.
var approx = cmp.Comparer(func(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
})

type resolvedStop struct {
	Ratio float64
	Color Color
}

func resolvedStops(stops []Stop) []resolvedStop {
	out := make([]resolvedStop, len(stops))
	for i, s := range stops {
		out[i] = resolvedStop{Ratio: s.Ratio, Color: s.Color.Value()}
	}
	return out
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"red", Red},
		{"  Blue ", Blue},
		{"transparent", Transparent},
		{"#f00", Red},
		{"#00ff00", Green},
		{"#0000ff80", RGBA(0, 0, 1, 128.0/255)},
		{"rgb(255, 0, 0)", Red},
		{"rgba(0,0,255,0.5)", RGBA(0, 0, 1, 0.5)},
		{"white", White},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got, approx); diff != "" {
			t.Errorf("ParseColor(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#12", "#gggggg", "rgb(1,2)", "rgb(1,2,3", "notacolor"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrBadColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrBadColor", in, err)
		}
	}
}

func TestColorCSS(t *testing.T) {
	if got := Red.CSS(); got != "rgb(255,0,0)" {
		t.Errorf("Red.CSS() = %q", got)
	}
	if got := RGBA(0, 0, 1, 0.5).CSS(); got != "rgba(0,0,255,0.5)" {
		t.Errorf("CSS() = %q", got)
	}
	if got := RGBA(1, 1, 1, 0.25).Opaque(); got != White {
		t.Errorf("Opaque() = %v", got)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	if got != Red {
		t.Errorf("FromColor = %v, want red", got)
	}
	if n := Red.NRGBA(); n != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("NRGBA() = %v", n)
	}
}

func TestColorPropertyNotifiesOnChange(t *testing.T) {
	p := NewColorProperty(Red)
	calls := 0
	cancel := p.Subscribe(func() { calls++ })

	p.Set(Red)
	if calls != 0 {
		t.Errorf("Set to the same value notified %d times", calls)
	}
	p.Set(Blue)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if p.Value() != Blue {
		t.Errorf("Value() = %v", p.Value())
	}

	cancel()
	cancel()
	p.Set(Green)
	if calls != 1 {
		t.Error("cancelled listener was notified")
	}
	if p.Listeners() != 0 {
		t.Errorf("Listeners() = %d, want 0", p.Listeners())
	}
}

func TestColorPropertyListenerCancelsDuringNotify(t *testing.T) {
	p := NewColorProperty(Red)
	var cancel func()
	other := 0
	cancel = p.Subscribe(func() { cancel() })
	p.Subscribe(func() { other++ })

	p.Set(Blue)
	if other != 1 {
		t.Errorf("second listener notified %d times, want 1", other)
	}
	if p.Listeners() != 1 {
		t.Errorf("Listeners() = %d, want 1", p.Listeners())
	}
}

func TestConstantColorSource(t *testing.T) {
	var src ColorSource = Red
	cancel := src.Subscribe(func() { t.Error("constant color notified") })
	cancel()
	if src.Value() != Red {
		t.Error("Value() of constant color changed")
	}
}

func TestGradientIDsUnique(t *testing.T) {
	a := NewLinearGradient(0, 0, 1, 0)
	b := NewRadialGradient(0, 0, 0, 0, 0, 1)
	if a.ID() == b.ID() {
		t.Error("gradients share an id")
	}
	var _ Gradient = a
	var _ Gradient = b
	var _ Paint = Red
}

func TestLinearSVGStops(t *testing.T) {
	g := NewLinearGradient(0, 0, 100, 0).
		AddColorStop(0, Red).
		AddColorStop(1.5, Blue)

	want := []resolvedStop{{0, Red}, {1, Blue}}
	if diff := cmp.Diff(want, resolvedStops(g.SVGStops()), approx); diff != "" {
		t.Errorf("SVGStops mismatch (-want +got):\n%s", diff)
	}
	if g.Kind() != KindLinear {
		t.Errorf("Kind() = %v", g.Kind())
	}
}

func TestRadialSVGStops(t *testing.T) {
	tests := []struct {
		name string
		g    *RadialGradient
		want []resolvedStop
	}{
		{
			name: "from center",
			g:    NewRadialGradient(0, 0, 0, 0, 0, 10),
			want: []resolvedStop{{0, Red}, {0.5, Green}, {1, Blue}},
		},
		{
			name: "inner radius rescales",
			g:    NewRadialGradient(0, 0, 5, 0, 0, 10),
			want: []resolvedStop{{0.5, Red}, {0.75, Green}, {1, Blue}},
		},
		{
			name: "start larger mirrors and reverses",
			g:    NewRadialGradient(0, 0, 10, 0, 0, 0),
			want: []resolvedStop{{0, Blue}, {0.5, Green}, {1, Red}},
		},
		{
			name: "negative radius uses magnitude",
			g:    NewRadialGradient(0, 0, -10, 0, 0, 5),
			// |start| = 10 > |end| = 5: base 0.5, mirrored and reversed.
			want: []resolvedStop{{0.5, Blue}, {0.75, Green}, {1, Red}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.g.AddColorStop(0, Red).AddColorStop(0.5, Green).AddColorStop(1, Blue)
			if diff := cmp.Diff(tt.want, resolvedStops(tt.g.SVGStops()), approx); diff != "" {
				t.Errorf("SVGStops mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRadialSVGGeometry(t *testing.T) {
	g := NewRadialGradient(0, 0, 0, 10, 0, 10)
	center, r, focal := g.SVGGeometry()
	if center != Pt(10, 0) || r != 10 || focal != Pt(0, 0) {
		t.Errorf("SVGGeometry() = %v, %v, %v", center, r, focal)
	}

	// Equal radii: no cone apex, focus collapses to the center.
	g = NewRadialGradient(0, 0, 5, 10, 0, 5)
	center, _, focal = g.SVGGeometry()
	if focal != center {
		t.Errorf("equal radii focal = %v, want %v", focal, center)
	}
}

func TestLinearColorAt(t *testing.T) {
	g := NewLinearGradient(0, 0, 100, 0).
		AddColorStop(0, Red).
		AddColorStop(1, Blue)

	if got := g.ColorAt(0, 0); got != Red {
		t.Errorf("ColorAt(start) = %v", got)
	}
	if got := g.ColorAt(100, 50); got != Blue {
		t.Errorf("ColorAt(end) = %v", got)
	}
	if got := g.ColorAt(-50, 0); got != Red {
		t.Errorf("pad before start = %v", got)
	}
	mid := g.ColorAt(50, 0)
	if mid.R <= 0 || mid.B <= 0 || mid.R >= 1 || mid.B >= 1 {
		t.Errorf("ColorAt(mid) = %v, want a blend", mid)
	}
}

func TestLinearColorAtTransform(t *testing.T) {
	m := Translate(100, 0)
	g := NewLinearGradient(0, 0, 100, 0).
		AddColorStop(0, Red).
		AddColorStop(1, Blue).
		SetTransform(&m)

	if got := g.ColorAt(100, 0); got != Red {
		t.Errorf("translated start = %v, want red", got)
	}
	if _, ok := g.Transform(); !ok {
		t.Error("Transform() should be set")
	}
	g.SetTransform(nil)
	if _, ok := g.Transform(); ok {
		t.Error("Transform() should be cleared")
	}
}

func TestRadialColorAt(t *testing.T) {
	g := NewRadialGradient(50, 50, 0, 50, 50, 50).
		AddColorStop(0, White).
		AddColorStop(1, Black)

	if got := g.ColorAt(50, 50); got != White {
		t.Errorf("ColorAt(center) = %v", got)
	}
	if got := g.ColorAt(200, 50); got != Black {
		t.Errorf("ColorAt(outside) = %v", got)
	}
}

func TestExtendModes(t *testing.T) {
	tests := []struct {
		mode ExtendMode
		t    float64
		want float64
		attr string
	}{
		{ExtendPad, 1.5, 1, "pad"},
		{ExtendRepeat, 1.25, 0.25, "repeat"},
		{ExtendReflect, 1.25, 0.75, "reflect"},
	}
	for _, tt := range tests {
		if got := applyExtendMode(tt.t, tt.mode); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("applyExtendMode(%v, %v) = %v, want %v", tt.t, tt.mode, got, tt.want)
		}
		if tt.mode.SpreadMethod() != tt.attr {
			t.Errorf("SpreadMethod() = %q, want %q", tt.mode.SpreadMethod(), tt.attr)
		}
	}
}

func TestMatrix(t *testing.T) {
	m := Translate(10, 20).Multiply(Scale(2, 3))
	p := m.TransformPoint(Pt(1, 1))
	if p != Pt(12, 23) {
		t.Errorf("TransformPoint = %v", p)
	}

	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() reported singular")
	}
	if q := inv.TransformPoint(p); math.Abs(q.X-1) > 1e-9 || math.Abs(q.Y-1) > 1e-9 {
		t.Errorf("inverse round trip = %v", q)
	}
	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("Scale(0, 1) should not be invertible")
	}

	if got := m.SVG(); got != "matrix(2 0 0 3 10 20)" {
		t.Errorf("SVG() = %q", got)
	}
	if a := m.Aff3(); a != (f64.Aff3{2, 0, 10, 0, 3, 20}) {
		t.Errorf("Aff3() = %v", a)
	}
	if a := Identity().Aff3(); a != (f64.Aff3{1, 0, 0, 0, 1, 0}) {
		t.Errorf("Identity().Aff3() = %v", a)
	}
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
}
