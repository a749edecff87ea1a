// Package display is the output surface that owns blocks, drawables and
// gradient controllers and drives their commit phase.
//
// A Display is both a block.Surface and a gradient.Surface. Objects mark
// themselves dirty during a frame; UpdateDisplay then flushes gradient
// controllers first, so fills that reference them see the new stops, and
// dirty blocks second, in the order they were scheduled.
//
// Basic usage:
//
//	d := display.New(640, 480)
//	b, _ := d.NewBlock(retained.RendererSVG, 0)
//	a, c := d.NewDrawable(retained.RendererSVG), d.NewDrawable(retained.RendererSVG)
//	block.Link(a, c)
//	b.AddDrawable(a)
//	b.AddDrawable(c)
//	b.NotifyInterval(a, c)
//	stats := d.UpdateDisplay()
//
// Which Backend a block gets is decided by the backend registry: backends
// register per renderer with a priority, and the highest available one
// wins. The SVG backend is registered by default.
package display
