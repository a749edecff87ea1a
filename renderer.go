package retained

import (
	"fmt"
	"strings"
)

// Renderer tags the output technology a Drawable or Block renders with.
// Values are distinct bits so that sets of renderers can be expressed as masks.
type Renderer uint8

const (
	// RendererCanvas paints into an immediate-mode raster canvas.
	RendererCanvas Renderer = 1 << iota
	// RendererSVG maintains a retained SVG element tree.
	RendererSVG
	// RendererDOM positions retained DOM elements.
	RendererDOM
	// RendererWebGL batches into GPU buffers.
	RendererWebGL
)

// Renderers lists every known renderer in bit order.
var Renderers = []Renderer{RendererCanvas, RendererSVG, RendererDOM, RendererWebGL}

// String returns the lower-case renderer name.
func (r Renderer) String() string {
	switch r {
	case RendererCanvas:
		return "canvas"
	case RendererSVG:
		return "svg"
	case RendererDOM:
		return "dom"
	case RendererWebGL:
		return "webgl"
	default:
		return fmt.Sprintf("Renderer(%d)", uint8(r))
	}
}

// Valid reports whether r is exactly one known renderer.
func (r Renderer) Valid() bool {
	switch r {
	case RendererCanvas, RendererSVG, RendererDOM, RendererWebGL:
		return true
	}
	return false
}

// ParseRenderer converts a renderer name (case-insensitive) into a Renderer.
func ParseRenderer(s string) (Renderer, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, r := range Renderers {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("retained: unknown renderer %q", s)
}
