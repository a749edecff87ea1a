package gradient

import (
	"github.com/gogpu/retained/paint"
	"github.com/gogpu/retained/svgdom"
)

type linearDefiner struct{}

func (linearDefiner) createDefinition(doc *svgdom.Document) *svgdom.Element {
	return doc.CreateElement("linearGradient")
}

func (linearDefiner) applyGeometry(def *svgdom.Element, g paint.Gradient) {
	def.SetAttr("spreadMethod", g.Extend().SpreadMethod())
	lg, ok := g.(*paint.LinearGradient)
	if !ok {
		return
	}
	def.SetAttr("x1", formatFloat(lg.Start.X))
	def.SetAttr("y1", formatFloat(lg.Start.Y))
	def.SetAttr("x2", formatFloat(lg.End.X))
	def.SetAttr("y2", formatFloat(lg.End.Y))
}

type radialDefiner struct{}

func (radialDefiner) createDefinition(doc *svgdom.Document) *svgdom.Element {
	return doc.CreateElement("radialGradient")
}

// applyGeometry writes the large circle and the focal point. Stop ratios
// from SVGStops are already expressed relative to this geometry.
func (radialDefiner) applyGeometry(def *svgdom.Element, g paint.Gradient) {
	def.SetAttr("spreadMethod", g.Extend().SpreadMethod())
	rg, ok := g.(*paint.RadialGradient)
	if !ok {
		return
	}
	center, radius, focal := rg.SVGGeometry()
	def.SetAttr("cx", formatFloat(center.X))
	def.SetAttr("cy", formatFloat(center.Y))
	def.SetAttr("r", formatFloat(radius))
	def.SetAttr("fx", formatFloat(focal.X))
	def.SetAttr("fy", formatFloat(focal.Y))
}
