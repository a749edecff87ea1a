package display

import (
	"slices"
	"strconv"

	"github.com/gogpu/retained"
	"github.com/gogpu/retained/block"
	"github.com/gogpu/retained/gradient"
	"github.com/gogpu/retained/paint"
	"github.com/gogpu/retained/svgdom"
)

// svgBlock paints a block as one <g> element whose children are the
// committed interval's drawables in paint order.
type svgBlock struct {
	display  *Display
	group    *svgdom.Element
	elements map[*block.Drawable]*svgdom.Element
	fills    map[*block.Drawable]paint.Gradient // gradients referenced via IncrementPaint
}

func newSVGBlock(d *Display, b *block.Block) (block.Backend, error) {
	g := d.doc.CreateElement("g")
	g.SetAttr("id", "block"+strconv.FormatUint(b.ID(), 10))

	var ref *svgdom.Element
	if next := d.groupAfter(b); next != nil {
		ref = next.group
	}
	d.doc.Root().InsertBefore(g, ref)

	return &svgBlock{
		display:  d,
		group:    g,
		elements: make(map[*block.Drawable]*svgdom.Element),
		fills:    make(map[*block.Drawable]paint.Gradient),
	}, nil
}

// Group returns the block's <g> element.
func (s *svgBlock) Group() *svgdom.Element { return s.group }

func (s *svgBlock) element(d *block.Drawable) *svgdom.Element {
	e, ok := s.elements[d]
	if !ok {
		e = s.display.doc.CreateElement("rect")
		e.SetAttr("data-drawable", strconv.FormatUint(d.ID(), 10))
		s.elements[d] = e
	}
	return e
}

// OnIntervalChange re-realizes the group's children from the new range.
func (s *svgBlock) OnIntervalChange(b *block.Block, first, last *block.Drawable) {
	s.group.RemoveChildren()
	if first == nil {
		return
	}
	for d := first; d != nil; d = d.Next {
		if d.Parent() == b {
			s.group.AppendChild(s.element(d))
		}
		if d == last {
			break
		}
	}
}

func (s *svgBlock) DrawableAdded(_ *block.Block, d *block.Drawable) {
	s.syncFill(d)
}

func (s *svgBlock) DrawableRemoved(_ *block.Block, d *block.Drawable) {
	if e, ok := s.elements[d]; ok {
		s.group.RemoveChild(e)
		delete(s.elements, d)
	}
	if g, ok := s.fills[d]; ok {
		delete(s.fills, d)
		s.display.DecrementPaint(g)
	}
}

func (s *svgBlock) Update(b *block.Block, dirty []*block.Drawable) {
	for _, d := range dirty {
		s.syncFill(d)
		e := s.element(d)
		if e.Parent() == nil && d.Parent() == b && b.First() != nil {
			s.attach(b, d, e)
		}
		s.paint(d, e)
	}
}

// attach inserts e into the group after the element of the nearest
// preceding member that is already attached. Members added without moving
// the interval's endpoints never see OnIntervalChange and land here.
func (s *svgBlock) attach(b *block.Block, d *block.Drawable, e *svgdom.Element) {
	children := s.group.Children()
	var ref *svgdom.Element
	if len(children) > 0 {
		ref = children[0]
	}
	for p := d.Previous; p != nil && p.Parent() == b; p = p.Previous {
		pe, ok := s.elements[p]
		if !ok || pe.Parent() != s.group {
			continue
		}
		ref = nil
		if i := slices.Index(children, pe); i >= 0 && i+1 < len(children) {
			ref = children[i+1]
		}
		break
	}
	s.group.InsertBefore(e, ref)
}

func (s *svgBlock) paint(d *block.Drawable, e *svgdom.Element) {
	r := d.Bounds
	e.SetAttr("x", strconv.Itoa(r.Min.X))
	e.SetAttr("y", strconv.Itoa(r.Min.Y))
	e.SetAttr("width", strconv.Itoa(r.Dx()))
	e.SetAttr("height", strconv.Itoa(r.Dy()))

	switch f := d.Fill.(type) {
	case paint.Color:
		e.SetAttr("fill", f.Opaque().CSS())
		if f.A < 1 {
			e.SetAttr("fill-opacity", strconv.FormatFloat(f.A, 'g', -1, 64))
		} else {
			e.RemoveAttr("fill-opacity")
		}
	case paint.Gradient:
		if s.fills[d] != f {
			// The reference was refused; never point at a missing definition.
			e.SetAttr("fill", "none")
		} else {
			e.SetAttr("fill", "url(#"+gradient.ElementID(f)+")")
		}
		e.RemoveAttr("fill-opacity")
	default:
		e.SetAttr("fill", "none")
		e.RemoveAttr("fill-opacity")
	}
}

// syncFill keeps the gradient reference of d in step with d.Fill. The new
// gradient is referenced before the old one is released so a shared
// controller survives the swap.
func (s *svgBlock) syncFill(d *block.Drawable) {
	next, _ := d.Fill.(paint.Gradient)
	prev := s.fills[d]
	if prev == next {
		return
	}
	if next != nil {
		if _, err := s.display.IncrementPaint(next); err != nil {
			retained.Logger().Warn("display: gradient fill dropped", "drawable", d.ID(), "err", err)
			next = nil
		}
	}
	if prev != nil {
		s.display.DecrementPaint(prev)
	}
	if next != nil {
		s.fills[d] = next
	} else {
		delete(s.fills, d)
	}
}

func (s *svgBlock) Dispose(*block.Block) {
	for d, g := range s.fills {
		delete(s.fills, d)
		s.display.DecrementPaint(g)
	}
	clear(s.elements)
	s.group.RemoveChildren()
	s.display.doc.Root().RemoveChild(s.group)
}
