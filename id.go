package retained

import "sync/atomic"

var nextID atomic.Uint64

// NextID returns a process-wide, monotonically increasing identifier.
// Drawables, blocks and gradients use it for diagnostics and element ids.
func NextID() uint64 {
	return nextID.Add(1)
}
