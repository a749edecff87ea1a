// Package block implements Drawables and Blocks, the units the stitcher
// uses to map a scene graph onto output surfaces.
//
// # Drawables
//
// A Drawable is the render state for one (scene node, renderer) pair. All
// drawables of a display are threaded into one global paint order through
// their Next and Previous links. The links are owned by the stitcher; no
// drawable owns another.
//
// # Blocks
//
// A Block owns a contiguous, renderer-homogeneous run of that order and
// realizes it on one output surface. Blocks keep two intervals:
//
//   - the pending interval, last requested with NotifyInterval
//   - the committed interval, the range actually realized
//
// UpdateInterval reconciles them and calls the renderer backend only when
// they differ:
//
//	b.NotifyInterval(first, last) // Synced -> PendingChange -> Synced
//
// Membership is tracked separately with AddDrawable and RemoveDrawable.
//
// # Verification
//
// Every precondition is checked only while verification is on (see
// retained.SetVerify). Audit and AuditChain walk the committed chains and
// panic with a *retained.InvariantError on the first violation; Check and
// CheckChain return the same error instead of panicking.
package block
