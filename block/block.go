package block

import (
	"fmt"
	"slices"

	"github.com/gogpu/retained"
	"github.com/gogpu/retained/internal/assert"
)

// Surface is the output surface a Block realizes its drawables on.
type Surface interface {
	// IsDisposed reports whether the surface is tearing down.
	IsDisposed() bool

	// MarkDirtyBlock schedules b for the next commit. It is called at most
	// once per dirty period of b.
	MarkDirtyBlock(b *Block)
}

// Backend is the renderer-specific half of a Block. The zero Block has no
// backend and behaves as a stub: intervals are committed, nothing is drawn.
type Backend interface {
	// OnIntervalChange is called by UpdateInterval before the new interval
	// is committed. b.First and b.Last still return the old interval.
	OnIntervalChange(b *Block, first, last *Drawable)

	// DrawableAdded and DrawableRemoved follow membership changes.
	DrawableAdded(b *Block, d *Drawable)
	DrawableRemoved(b *Block, d *Drawable)

	// Update repaints b. dirty lists the members marked dirty since the
	// previous update, in the order they were marked.
	Update(b *Block, dirty []*Drawable)

	// Dispose releases the backend's platform resources.
	Dispose(b *Block)
}

// Block owns a contiguous run of same-renderer drawables on one surface.
type Block struct {
	// Renderer is shared by the block and every committed member.
	Renderer retained.Renderer

	// ZIndex orders blocks on the surface.
	ZIndex int

	// Used is scratch state for the stitcher during a restitch pass.
	Used bool

	// PreviousBlock and NextBlock link sibling blocks in output order.
	PreviousBlock *Block
	NextBlock     *Block

	id      uint64
	surface Surface
	backend Backend

	count        int
	first, last  *Drawable // committed interval
	pendingFirst *Drawable
	pendingLast  *Drawable

	dirty          bool
	dirtyDrawables []*Drawable

	// debugList shadows membership while verification is on.
	debugList []*Drawable

	disposed bool
	pool     *Pool
}

// NewBlock allocates and initializes a block outside of any pool.
func NewBlock(s Surface, renderer retained.Renderer) (*Block, error) {
	return new(Block).Initialize(s, renderer)
}

// Initialize (re)binds b to surface s with the given renderer, resetting
// every counter and link. It fails with retained.ErrInvalidState if s is
// tearing down.
func (b *Block) Initialize(s Surface, renderer retained.Renderer) (*Block, error) {
	if s == nil || s.IsDisposed() {
		return nil, fmt.Errorf("block: initialize %v block: surface is disposed: %w",
			renderer, retained.ErrInvalidState)
	}
	assert.That(renderer.Valid(), "Block.Initialize", "invalid renderer %v", renderer)

	*b = Block{
		Renderer:       renderer,
		id:             retained.NextID(),
		surface:        s,
		dirtyDrawables: b.dirtyDrawables[:0],
		pool:           b.pool,
	}
	if assert.Enabled() {
		b.debugList = make([]*Drawable, 0, 8)
	}
	return b, nil
}

// SetBackend attaches the renderer-specific implementation.
func (b *Block) SetBackend(be Backend) { b.backend = be }

// Backend returns the attached backend, or nil.
func (b *Block) Backend() Backend { return b.backend }

// Surface returns the surface b draws into.
func (b *Block) Surface() Surface { return b.surface }

// ID returns the block's process-wide identifier.
func (b *Block) ID() uint64 { return b.id }

// Count returns the number of member drawables.
func (b *Block) Count() int { return b.count }

// First and Last return the committed interval.
func (b *Block) First() *Drawable { return b.first }
func (b *Block) Last() *Drawable  { return b.last }

// PendingFirst and PendingLast return the requested interval.
func (b *Block) PendingFirst() *Drawable { return b.pendingFirst }
func (b *Block) PendingLast() *Drawable  { return b.pendingLast }

// IsDirty reports whether b is waiting for Update.
func (b *Block) IsDirty() bool { return b.dirty }

// IsDisposed reports whether b has been released.
func (b *Block) IsDisposed() bool { return b.disposed }

// AddDrawable makes d a member of b and marks it dirty.
// d must not already be a member of any block.
func (b *Block) AddDrawable(d *Drawable) {
	assert.That(!b.disposed, "Block.AddDrawable", "%v is disposed", b)
	assert.That(!d.disposed, "Block.AddDrawable", "%v is disposed", d)
	assert.That(d.parent == nil, "Block.AddDrawable", "%v already belongs to %v", d, d.parent)
	assert.That(d.Renderer == b.Renderer, "Block.AddDrawable",
		"%v renderer differs from %v", d, b)
	if b.debugList != nil && assert.Enabled() {
		assert.That(!slices.Contains(b.debugList, d), "Block.AddDrawable",
			"%v already listed in %v", d, b)
		b.debugList = append(b.debugList, d)
	}

	b.count++
	d.parent = b
	b.MarkDirtyDrawable(d)

	if b.backend != nil {
		b.backend.DrawableAdded(b, d)
	}
}

// RemoveDrawable drops d from b. The block is marked dirty: a removal
// changes output even if no remaining member changed.
func (b *Block) RemoveDrawable(d *Drawable) {
	assert.That(d.parent == b, "Block.RemoveDrawable", "%v is not a member of %v", d, b)
	if b.debugList != nil && assert.Enabled() {
		i := slices.Index(b.debugList, d)
		assert.That(i >= 0, "Block.RemoveDrawable", "%v not listed in %v", d, b)
		if i >= 0 {
			b.debugList = slices.Delete(b.debugList, i, i+1)
		}
	}

	b.count--
	d.parent = nil
	if d.queued {
		if i := slices.Index(b.dirtyDrawables, d); i >= 0 {
			b.dirtyDrawables = slices.Delete(b.dirtyDrawables, i, i+1)
		}
		d.queued = false
	}
	b.MarkDirty()

	if b.backend != nil {
		b.backend.DrawableRemoved(b, d)
	}
}

// NotifyInterval requests that b realize the range first..last (inclusive,
// following Next links) and reconciles immediately.
func (b *Block) NotifyInterval(first, last *Drawable) {
	b.pendingFirst = first
	b.pendingLast = last
	b.UpdateInterval()
}

// UpdateInterval commits the pending interval if it differs from the
// committed one and reports whether it did. Calling it again without an
// intervening NotifyInterval does nothing.
func (b *Block) UpdateInterval() bool {
	if b.pendingFirst == b.first && b.pendingLast == b.last {
		return false
	}

	if b.backend != nil {
		b.backend.OnIntervalChange(b, b.pendingFirst, b.pendingLast)
	}
	retained.Logger().Debug("block: interval committed",
		"block", b.id, "first", b.pendingFirst, "last", b.pendingLast)

	b.first = b.pendingFirst
	b.last = b.pendingLast
	return true
}

// MarkDirty schedules b for the next commit.
func (b *Block) MarkDirty() {
	if b.dirty {
		return
	}
	b.dirty = true
	if b.surface != nil {
		b.surface.MarkDirtyBlock(b)
	}
}

// MarkDirtyDrawable records that member d needs repainting and schedules b.
func (b *Block) MarkDirtyDrawable(d *Drawable) {
	assert.That(d.parent == b, "Block.MarkDirtyDrawable", "%v is not a member of %v", d, b)
	d.dirty = true
	if !d.queued {
		d.queued = true
		b.dirtyDrawables = append(b.dirtyDrawables, d)
	}
	b.MarkDirty()
}

// Update repaints b if it is dirty and reports whether it did.
// Every member marked dirty since the last update is passed to the backend
// exactly once and then cleaned.
func (b *Block) Update() bool {
	if !b.dirty {
		return false
	}

	dirty := b.dirtyDrawables
	if b.backend != nil {
		b.backend.Update(b, dirty)
	}
	for i, d := range dirty {
		d.Update()
		d.queued = false
		dirty[i] = nil
	}
	b.dirtyDrawables = dirty[:0]
	b.dirty = false
	return true
}

// Dispose releases b. Every drawable must have been removed first.
func (b *Block) Dispose() {
	assert.That(!b.disposed, "Block.Dispose", "%v disposed twice", b)
	assert.That(b.count == 0, "Block.Dispose", "%v still has %d drawables", b, b.count)

	if b.backend != nil {
		b.backend.Dispose(b)
	}

	clear(b.dirtyDrawables)
	*b = Block{
		dirtyDrawables: b.dirtyDrawables[:0],
		disposed:       true,
		pool:           b.pool,
	}
	if b.pool != nil {
		b.pool.blocks.Put(b)
	}
}

func (b *Block) String() string {
	if b == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v block#%d", b.Renderer, b.id)
}
