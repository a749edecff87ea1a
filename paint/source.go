package paint

// ColorSource is anything a gradient stop can take its color from.
// A constant Color never changes; a *ColorProperty notifies subscribers
// whenever its value changes.
type ColorSource interface {
	// Value returns the current color.
	Value() Color

	// Subscribe registers fn to be called after every change of value.
	// The returned cancel function removes the subscription; it is safe to
	// call more than once.
	Subscribe(fn func()) (cancel func())
}

// ColorProperty is an observable color, the color half of the scene graph's
// property system as seen from the paint layer.
//
// ColorProperty is NOT thread-safe; like the rest of the scene it is mutated
// from the frame goroutine.
type ColorProperty struct {
	value     Color
	listeners []listener
	nextID    uint64
}

type listener struct {
	id uint64
	fn func()
}

// NewColorProperty creates a property holding c.
func NewColorProperty(c Color) *ColorProperty {
	return &ColorProperty{value: c}
}

// Value implements ColorSource.
func (p *ColorProperty) Value() Color { return p.value }

// Set stores c and notifies subscribers if it differs from the current value.
func (p *ColorProperty) Set(c Color) {
	if c == p.value {
		return
	}
	p.value = c
	// Listeners may cancel themselves while being notified.
	for _, l := range append([]listener(nil), p.listeners...) {
		l.fn()
	}
}

// Subscribe implements ColorSource.
func (p *ColorProperty) Subscribe(fn func()) (cancel func()) {
	p.nextID++
	id := p.nextID
	p.listeners = append(p.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range p.listeners {
			if l.id == id {
				p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
				return
			}
		}
	}
}

// Listeners returns the number of active subscriptions.
func (p *ColorProperty) Listeners() int {
	return len(p.listeners)
}
