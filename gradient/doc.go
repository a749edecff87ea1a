// Package gradient keeps platform gradient resources in sync with logical
// paint gradients.
//
// A Controller binds one paint.Gradient to one output surface. On first
// binding it creates the platform definition (a linearGradient or
// radialGradient element); every later binding reuses it. Each color stop
// is mirrored by a StopController that listens to its color source.
//
// Color changes are coalesced: any number of stop changes within a frame
// mark the controller dirty once and reach the surface as a single
// MarkDirtyGradient call. The commit sweep then calls Update, which writes
// every changed stop exactly once.
//
//	c := pool.Controller(surface, g) // Unbound -> Bound/Clean
//	prop.Set(paint.Red)              // Bound/Clean -> Bound/Dirty
//	c.Update()                       // Bound/Dirty -> Bound/Clean
//	c.Dispose()                      // -> Unbound
package gradient
