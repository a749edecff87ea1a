// Package retained is the retained-mode rendering backend of a 2D
// scene-graph UI toolkit.
//
// # Overview
//
// retained keeps persistent platform drawing resources synchronized with a
// scene graph that mutates every frame. It does not rebuild output from
// scratch: mutations are recorded cheaply while the frame is being built and
// flushed to the platform in a single commit sweep.
//
// # Architecture
//
// The module is organized into:
//   - block: Drawables (per node/renderer render state linked into one global
//     paint order) and Blocks (contiguous renderer-homogeneous runs of
//     Drawables with a pending/committed interval protocol)
//   - gradient: per-surface gradient resource controllers that mirror a
//     logical gradient's color stops and coalesce color changes
//   - paint: logical colors, observable color properties and gradients
//   - svgdom: the retained element tree platform resources are written to
//   - display: the output surface that owns pools, schedules dirty blocks
//     and gradients, and runs the per-frame commit
//   - pool: arena-with-recycling free lists
//
// # Frame Model
//
// A frame has two phases:
//
//	// mutation phase: any number of calls
//	b.AddDrawable(d)
//	b.NotifyInterval(first, last)
//	stopColor.Set(paint.Hex("#f00"))
//
//	// commit phase: exactly one sweep
//	stats := disp.UpdateDisplay()
//
// The sweep produces the same output immediate re-application of every
// mutation would have, while writing each platform resource at most once.
//
// # Verification
//
// Invariant checks (drawable counts, parent pointers, interval consistency)
// are debug-only. Enable them with the retainedverify build tag or at
// runtime with [SetVerify]. A violated invariant panics with an
// [InvariantError].
//
// # Logging
//
// retained is silent by default. Use [SetLogger] to route diagnostics to a
// [log/slog] logger.
package retained
