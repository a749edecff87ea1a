package gradient

import (
	"strconv"

	"github.com/gogpu/retained/paint"
	"github.com/gogpu/retained/svgdom"
)

// StopController mirrors one stop of a gradient as a <stop> element.
type StopController struct {
	owner   *Controller
	ratio   float64
	color   paint.ColorSource
	element *svgdom.Element
	cancel  func()
	dirty   bool
	visits  int
}

// initialize (re)binds s to a stop of owner and writes its attributes.
// The element is created once per document and reused afterwards.
func (s *StopController) initialize(owner *Controller, ratio float64, color paint.ColorSource) *StopController {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	doc := owner.surface.Document()
	if s.element == nil || s.element.Document() != doc {
		s.element = doc.CreateElement("stop")
	}

	s.owner = owner
	s.ratio = ratio
	s.color = color
	s.visits = 0
	s.element.SetAttr("offset", formatFloat(ratio))
	s.write()
	s.cancel = color.Subscribe(s.colorChanged)
	return s
}

func (s *StopController) colorChanged() {
	if s.owner == nil {
		return
	}
	s.dirty = true
	s.owner.MarkDirty()
}

// Update writes the current color if it changed since the last write and
// reports whether a write happened.
func (s *StopController) Update() bool {
	s.visits++
	if !s.dirty {
		return false
	}
	s.write()
	return true
}

func (s *StopController) write() {
	c := s.color.Value()
	s.element.SetAttr("stop-color", c.Opaque().CSS())
	s.element.SetAttr("stop-opacity", formatFloat(c.A))
	s.dirty = false
}

// dispose unsubscribes from the color source and returns s to its owner's
// pool. The caller detaches the element first.
func (s *StopController) dispose() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	p := s.owner.pool
	s.owner = nil
	s.color = nil
	s.dirty = false
	s.visits = 0
	if p != nil {
		p.stops.Put(s)
	}
}

// Ratio returns the stop offset written to the element.
func (s *StopController) Ratio() float64 { return s.ratio }

// Color returns the stop's color source.
func (s *StopController) Color() paint.ColorSource { return s.color }

// Element returns the <stop> element.
func (s *StopController) Element() *svgdom.Element { return s.element }

// IsDirty reports whether the color changed since the last write.
func (s *StopController) IsDirty() bool { return s.dirty }

// Visits returns how many times Update ran since the stop was bound.
func (s *StopController) Visits() int { return s.visits }

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
