package display

import (
	"fmt"

	"github.com/gogpu/retained"
	"github.com/gogpu/retained/gradient"
	"github.com/gogpu/retained/internal/assert"
	"github.com/gogpu/retained/paint"
)

// paintRef is a shared gradient controller and the number of fills using it.
type paintRef struct {
	ctrl  *gradient.Controller
	count int
}

// IncrementPaint records one more fill using g. The first reference binds
// a pooled controller and attaches its definition to the document's defs.
func (d *Display) IncrementPaint(g paint.Gradient) (*gradient.Controller, error) {
	if d.disposed {
		return nil, fmt.Errorf("display: increment paint: %w", retained.ErrInvalidState)
	}
	if ref, ok := d.paints[g.ID()]; ok {
		ref.count++
		return ref.ctrl, nil
	}

	c := d.gradients.Controller(d, g)
	d.doc.Defs().AppendChild(c.Definition())
	d.paints[g.ID()] = &paintRef{ctrl: c, count: 1}
	retained.Logger().Debug("display: gradient referenced", "gradient", g.ID(), "kind", g.Kind())
	return c, nil
}

// DecrementPaint drops one reference to g. The last reference detaches the
// definition and disposes the controller. Releasing an unreferenced
// gradient is an invariant violation; after Dispose it is ignored.
func (d *Display) DecrementPaint(g paint.Gradient) {
	if d.disposed {
		return
	}
	ref, ok := d.paints[g.ID()]
	assert.That(ok, "Display.DecrementPaint", "gradient %d is not referenced", g.ID())
	if !ok {
		return
	}
	ref.count--
	if ref.count == 0 {
		d.releasePaint(g.ID())
	}
}

func (d *Display) releasePaint(id uint64) {
	ref := d.paints[id]
	delete(d.paints, id)
	d.doc.Defs().RemoveChild(ref.ctrl.Definition())
	ref.ctrl.Dispose()
	retained.Logger().Debug("display: gradient released", "gradient", id)
}

// RefreshPaint rebinds the controller of g after its stop list, geometry or
// transform changed, and reports whether g is referenced at all.
func (d *Display) RefreshPaint(g paint.Gradient) bool {
	ref, ok := d.paints[g.ID()]
	if !ok {
		return false
	}
	ref.ctrl.Initialize(d, g)
	return true
}

// PaintRefs returns the number of fills referencing g.
func (d *Display) PaintRefs(g paint.Gradient) int {
	if ref, ok := d.paints[g.ID()]; ok {
		return ref.count
	}
	return 0
}

// GradientController returns the controller bound to g, if referenced.
func (d *Display) GradientController(g paint.Gradient) (*gradient.Controller, bool) {
	ref, ok := d.paints[g.ID()]
	if !ok {
		return nil, false
	}
	return ref.ctrl, true
}
