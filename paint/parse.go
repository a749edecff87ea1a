package paint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/gogpu/retained/internal/cache"
)

// ErrBadColor is returned by ParseColor for input it cannot interpret.
var ErrBadColor = errors.New("paint: invalid color")

// parsed caches successful parses; scenes tend to reuse a handful of
// color strings every frame.
var parsed = cache.New[string, Color](256)

// ParseColor parses a CSS color: a keyword ("red", "transparent"),
// a hex form ("#f00", "#ff000080") or a functional form
// ("rgb(255,0,0)", "rgba(255,0,0,0.5)").
func ParseColor(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := parsed.Get(key); ok {
		return c, nil
	}
	c, err := parseColor(key)
	if err != nil {
		return Color{}, err
	}
	parsed.Set(key, c)
	return c, nil
}

// MustParseColor is like ParseColor but panics on error.
// It is intended for package-level color tables.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseColor(s string) (Color, error) {
	switch {
	case s == "":
		return Color{}, fmt.Errorf("%w: empty string", ErrBadColor)
	case s == "transparent":
		return Transparent, nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseFunctional(s)
	}
	if rgba, ok := colornames.Map[s]; ok {
		return FromColor(rgba), nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
}

// parseFunctional parses rgb(r,g,b) and rgba(r,g,b,a). Channels are
// 0-255, alpha is 0-1.
func parseFunctional(s string) (Color, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return Color{}, fmt.Errorf("%w: %q missing ')'", ErrBadColor, s)
	}
	fields := strings.Split(s[open+1:len(s)-1], ",")
	if len(fields) != 3 && len(fields) != 4 {
		return Color{}, fmt.Errorf("%w: %q has %d components", ErrBadColor, s, len(fields))
	}

	var v [4]float64
	v[3] = 1
	for i, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
		}
		if i < 3 {
			n /= 255
		}
		v[i] = clamp01(n)
	}
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}
