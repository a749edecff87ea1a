package gradient

import (
	"fmt"
	"strconv"

	"github.com/gogpu/retained"
	"github.com/gogpu/retained/internal/assert"
	"github.com/gogpu/retained/paint"
	"github.com/gogpu/retained/svgdom"
)

// Surface is the output surface a Controller's definition lives on.
type Surface interface {
	// MarkDirtyGradient schedules c for the next commit. It is called at
	// most once per dirty period of c.
	MarkDirtyGradient(c *Controller)

	// Document returns the element tree definitions are created in.
	Document() *svgdom.Document
}

// definer creates and shapes the platform definition for one gradient kind.
type definer interface {
	createDefinition(doc *svgdom.Document) *svgdom.Element
	applyGeometry(def *svgdom.Element, g paint.Gradient)
}

// Controller is the live binding between a logical gradient and its
// platform definition on one surface.
//
// Controller is NOT thread-safe.
type Controller struct {
	kind    paint.Kind
	definer definer

	surface    Surface
	gradient   paint.Gradient
	definition *svgdom.Element
	stops      []*StopController
	dirty      bool

	created int // definitions created over the controller's lifetime
	pool    *Pool
}

// NewController returns an unbound controller for gradients of kind k.
func NewController(k paint.Kind) *Controller {
	c := &Controller{kind: k}
	switch k {
	case paint.KindRadial:
		c.definer = radialDefiner{}
	default:
		c.kind = paint.KindLinear
		c.definer = linearDefiner{}
	}
	return c
}

// ElementID returns the element id a gradient's definition carries, for use
// in url(#id) paint references.
func ElementID(g paint.Gradient) string {
	return "gradient" + strconv.FormatUint(g.ID(), 10)
}

// IsActive reports whether c is bound to a surface and gradient.
func (c *Controller) IsActive() bool { return c.surface != nil }

// Initialize binds c to gradient g on surface s, or rebinds it if c is
// already bound to s.
//
// The definition is created only the first time; gradientUnits is set then
// so the gradient never depends on the bounds of what it paints. Every call
// refreshes the id, geometry and transform and rebuilds the stop list from
// g.SVGStops(). The controller is clean afterwards.
func (c *Controller) Initialize(s Surface, g paint.Gradient) *Controller {
	const op = "Controller.Initialize"
	assert.That(s != nil && g != nil, op, "nil surface or gradient")
	assert.That(c.surface == nil || c.surface == s, op, "%v is already bound to another surface", c)
	assert.That(g.Kind() == c.kind, op, "%v cannot mirror a %v gradient", c, g.Kind())

	c.surface = s
	c.gradient = g

	doc := s.Document()
	if c.definition == nil || c.definition.Document() != doc {
		c.definition = c.definer.createDefinition(doc)
		c.definition.SetAttr("gradientUnits", "userSpaceOnUse")
		c.created++
	}

	c.definition.SetAttr("id", ElementID(g))
	c.definer.applyGeometry(c.definition, g)
	if m, ok := g.Transform(); ok {
		c.definition.SetAttr("gradientTransform", m.SVG())
	} else {
		c.definition.RemoveAttr("gradientTransform")
	}

	c.rebuildStops(g.SVGStops())
	c.dirty = false

	retained.Logger().Debug("gradient: bound",
		"gradient", g.ID(), "kind", c.kind, "stops", len(c.stops))
	return c
}

// rebuildStops makes c.stops mirror svgStops exactly, reusing existing stop
// controllers in place and appending their elements in order.
func (c *Controller) rebuildStops(svgStops []paint.Stop) {
	for i, st := range svgStops {
		if i < len(c.stops) {
			c.stops[i].initialize(c, st.Ratio, st.Color)
		} else {
			c.stops = append(c.stops, c.newStop().initialize(c, st.Ratio, st.Color))
		}
		c.definition.AppendChild(c.stops[i].element)
	}

	surplus := c.stops[len(svgStops):]
	for i, st := range surplus {
		c.definition.RemoveChild(st.element)
		st.dispose()
		surplus[i] = nil
	}
	c.stops = c.stops[:len(svgStops)]
}

func (c *Controller) newStop() *StopController {
	if c.pool != nil {
		return c.pool.stops.Get()
	}
	return new(StopController)
}

// MarkDirty records that a stop changed color. Only the first call of a
// dirty period reaches the surface.
func (c *Controller) MarkDirty() {
	assert.That(c.surface != nil, "Controller.MarkDirty", "%v is not bound", c)
	if c.dirty {
		return
	}
	c.dirty = true
	if c.surface != nil {
		c.surface.MarkDirtyGradient(c)
	}
}

// IsDirty reports whether c is waiting for Update.
func (c *Controller) IsDirty() bool { return c.dirty }

// Update writes changed stop colors to the definition and reports whether c
// was dirty.
func (c *Controller) Update() bool {
	if !c.dirty {
		return false
	}
	for _, st := range c.stops {
		st.Update()
	}
	c.dirty = false
	return true
}

// Dispose detaches and releases every stop, clears the binding and returns
// c to its pool. The definition element is kept for the next binding; the
// surface is responsible for removing it from its defs.
func (c *Controller) Dispose() {
	assert.That(c.surface != nil, "Controller.Dispose", "%v is not bound", c)

	for i, st := range c.stops {
		c.definition.RemoveChild(st.element)
		st.dispose()
		c.stops[i] = nil
	}
	c.stops = c.stops[:0]
	c.surface = nil
	c.gradient = nil
	c.dirty = false

	c.freeToPool()
}

func (c *Controller) freeToPool() {
	if c.pool == nil {
		return
	}
	switch c.kind {
	case paint.KindRadial:
		c.pool.radial.Put(c)
	default:
		c.pool.linear.Put(c)
	}
}

// Kind returns the gradient kind c mirrors.
func (c *Controller) Kind() paint.Kind { return c.kind }

// ID returns the bound gradient's id, or 0 when unbound.
func (c *Controller) ID() uint64 {
	if c.gradient == nil {
		return 0
	}
	return c.gradient.ID()
}

// Surface returns the bound surface, or nil.
func (c *Controller) Surface() Surface { return c.surface }

// Gradient returns the bound gradient, or nil.
func (c *Controller) Gradient() paint.Gradient { return c.gradient }

// Definition returns the platform definition, or nil before the first
// binding.
func (c *Controller) Definition() *svgdom.Element { return c.definition }

// Stops returns the stop controllers in definition order.
// The returned slice must not be modified.
func (c *Controller) Stops() []*StopController { return c.stops }

// DefinitionsCreated returns how many definitions c has created over its
// lifetime.
func (c *Controller) DefinitionsCreated() int { return c.created }

func (c *Controller) String() string {
	if c.gradient == nil {
		return fmt.Sprintf("%v controller (unbound)", c.kind)
	}
	return fmt.Sprintf("%v controller for %s", c.kind, ElementID(c.gradient))
}
