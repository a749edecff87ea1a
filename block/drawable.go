package block

import (
	"fmt"
	"image"

	"github.com/gogpu/retained"
	"github.com/gogpu/retained/internal/assert"
	"github.com/gogpu/retained/paint"
)

// Drawable is the render state of one scene node for one renderer.
//
// Next and Previous thread every drawable of a display into the global
// paint order. They are maintained by the stitcher (see Link and Unlink);
// Blocks only read them.
type Drawable struct {
	// Renderer is the output technology this state renders with.
	Renderer retained.Renderer

	// Next and Previous are the global paint order links.
	Next     *Drawable
	Previous *Drawable

	// Fill is the paint the drawable's node is filled with, if any.
	// Backends use it to reference shared paint resources.
	Fill paint.Paint

	// Bounds is the user-space box the drawable covers. Backends that have
	// no geometry of their own paint it as a rectangle.
	Bounds image.Rectangle

	id     uint64
	parent *Block
	dirty  bool
	queued bool // listed in parent.dirtyDrawables

	disposed bool
	pool     *Pool
}

// NewDrawable allocates and initializes a drawable outside of any pool.
func NewDrawable(renderer retained.Renderer) *Drawable {
	return new(Drawable).Initialize(renderer)
}

// Initialize resets d for use with renderer. New drawables start dirty so
// that their first commit paints them.
func (d *Drawable) Initialize(renderer retained.Renderer) *Drawable {
	assert.That(renderer.Valid(), "Drawable.Initialize", "invalid renderer %v", renderer)
	*d = Drawable{
		Renderer: renderer,
		id:       retained.NextID(),
		dirty:    true,
		pool:     d.pool,
	}
	return d
}

// ID returns the drawable's process-wide identifier.
func (d *Drawable) ID() uint64 { return d.id }

// Parent returns the Block the drawable is a member of, or nil.
func (d *Drawable) Parent() *Block { return d.parent }

// IsDirty reports whether the drawable changed since its last update.
func (d *Drawable) IsDirty() bool { return d.dirty }

// IsDisposed reports whether the drawable has been released.
func (d *Drawable) IsDisposed() bool { return d.disposed }

// MarkDirty flags the drawable for repaint. If it belongs to a block the
// block is scheduled too. Redundant calls are cheap.
func (d *Drawable) MarkDirty() {
	assert.That(!d.disposed, "Drawable.MarkDirty", "%v is disposed", d)
	if d.parent != nil {
		d.parent.MarkDirtyDrawable(d)
		return
	}
	d.dirty = true
}

// Update clears the dirty flag and reports whether it was set.
// Blocks call it for their members during Block.Update.
func (d *Drawable) Update() bool {
	was := d.dirty
	d.dirty = false
	return was
}

// Audit checks the drawable's own invariants.
func (d *Drawable) Audit(allowDirty bool) {
	if !assert.Enabled() {
		return
	}
	if err := d.check(allowDirty); err != nil {
		panic(err)
	}
}

func (d *Drawable) check(allowDirty bool) error {
	switch {
	case d.disposed:
		return invariant("Drawable.Audit", "%v is disposed", d)
	case !allowDirty && d.dirty:
		return invariant("Drawable.Audit", "%v is dirty", d)
	case d.Next != nil && d.Next.Previous != d:
		return invariant("Drawable.Audit", "%v.Next.Previous is %v", d, d.Next.Previous)
	case d.Previous != nil && d.Previous.Next != d:
		return invariant("Drawable.Audit", "%v.Previous.Next is %v", d, d.Previous.Next)
	}
	return nil
}

// Dispose releases the drawable. It must already have been removed from
// its block.
func (d *Drawable) Dispose() {
	assert.That(!d.disposed, "Drawable.Dispose", "%v disposed twice", d)
	assert.That(d.parent == nil, "Drawable.Dispose", "%v is still a member of %v", d, d.parent)

	p := d.pool
	*d = Drawable{disposed: true, pool: p, id: d.id}
	if p != nil {
		p.drawables.Put(d)
	}
}

func (d *Drawable) String() string {
	if d == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v#%d", d.Renderer, d.id)
}

func invariant(op, format string, args ...any) error {
	return &retained.InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
