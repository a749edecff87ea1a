package display

import (
	"fmt"
	"slices"
	"time"

	"github.com/gogpu/retained"
	"github.com/gogpu/retained/block"
	"github.com/gogpu/retained/gradient"
	"github.com/gogpu/retained/pool"
	"github.com/gogpu/retained/svgdom"
)

// FrameStats describes one commit.
type FrameStats struct {
	// Frame is the 1-based commit number.
	Frame uint64
	// Gradients is the number of gradient controllers that were flushed.
	Gradients int
	// Blocks is the number of blocks that were repainted.
	Blocks int
	// Writes is the number of element mutations the commit produced.
	Writes uint64
	// Duration is the wall time spent in UpdateDisplay.
	Duration time.Duration
}

// Display owns the retained output of one drawing surface.
//
// Display is NOT thread-safe. All calls must come from the thread that
// drives the frame loop.
type Display struct {
	width, height int

	doc       *svgdom.Document
	objects   *block.Pool
	gradients *gradient.Pool

	registry *Registry
	backends map[retained.Renderer]BackendFactory

	blocks []*block.Block        // live blocks in z order
	paints map[uint64]*paintRef // gradient id -> shared controller

	dirtyGradients []*gradient.Controller
	dirtyBlocks    []*block.Block

	frame    uint64
	disposed bool
}

// New creates a display of the given size.
func New(width, height int, opts ...Option) *Display {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger != nil {
		retained.SetLogger(o.logger)
	}
	if o.verify != nil {
		retained.SetVerify(*o.verify)
	}

	d := &Display{
		width:     width,
		height:    height,
		doc:       svgdom.NewDocument(width, height),
		objects:   block.NewPool(),
		gradients: gradient.NewPool(),
		registry:  o.registry,
		backends:  o.backends,
		paints:    make(map[uint64]*paintRef),
	}
	d.objects.Warmup(o.blocks, o.drawables)
	d.gradients.Warmup(o.gradients)

	retained.Logger().Info("display: created",
		"width", width, "height", height, "verify", retained.Verifying())
	return d
}

// NewFromConfig creates a display described by cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Display, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return New(cfg.Width, cfg.Height, append(cfg.Options(), opts...)...), nil
}

// Width returns the display width.
func (d *Display) Width() int { return d.width }

// Height returns the display height.
func (d *Display) Height() int { return d.height }

// Document implements gradient.Surface.
func (d *Display) Document() *svgdom.Document { return d.doc }

// IsDisposed implements block.Surface.
func (d *Display) IsDisposed() bool { return d.disposed }

// MarkDirtyBlock implements block.Surface.
func (d *Display) MarkDirtyBlock(b *block.Block) {
	d.dirtyBlocks = append(d.dirtyBlocks, b)
}

// MarkDirtyGradient implements gradient.Surface.
func (d *Display) MarkDirtyGradient(c *gradient.Controller) {
	d.dirtyGradients = append(d.dirtyGradients, c)
}

// NewDrawable returns a pooled drawable for renderer.
func (d *Display) NewDrawable(renderer retained.Renderer) *block.Drawable {
	return d.objects.Drawable(renderer)
}

// DisposeDrawable releases dr. It must not belong to a block.
func (d *Display) DisposeDrawable(dr *block.Drawable) {
	dr.Dispose()
}

// NewBlock returns a pooled block for renderer at zIndex, with a backend
// chosen by WithBackend or the registry. Blocks with equal z index keep
// creation order.
func (d *Display) NewBlock(renderer retained.Renderer, zIndex int) (*block.Block, error) {
	factory, err := d.factory(renderer)
	if err != nil {
		return nil, err
	}

	b, err := d.objects.Block(d, renderer)
	if err != nil {
		return nil, fmt.Errorf("display: new block: %w", err)
	}
	b.ZIndex = zIndex

	i, _ := slices.BinarySearchFunc(d.blocks, zIndex, func(e *block.Block, z int) int {
		if e.ZIndex <= z {
			return -1
		}
		return 1
	})
	d.blocks = slices.Insert(d.blocks, i, b)

	be, err := factory(d, b)
	if err != nil {
		d.blocks = slices.Delete(d.blocks, i, i+1)
		b.Dispose()
		return nil, fmt.Errorf("display: %v backend: %w", renderer, err)
	}
	b.SetBackend(be)

	retained.Logger().Debug("display: block created", "block", b.ID(), "renderer", renderer, "z", zIndex)
	return b, nil
}

func (d *Display) factory(renderer retained.Renderer) (BackendFactory, error) {
	if f, ok := d.backends[renderer]; ok {
		return f, nil
	}
	return d.registry.Factory(renderer)
}

// DisposeBlock releases b. Every drawable must have been removed first.
func (d *Display) DisposeBlock(b *block.Block) {
	if i := slices.Index(d.blocks, b); i >= 0 {
		d.blocks = slices.Delete(d.blocks, i, i+1)
	}
	b.Dispose()
}

// Blocks returns the live blocks in z order.
// The returned slice must not be modified.
func (d *Display) Blocks() []*block.Block { return d.blocks }

// blockIndex returns the position of b in z order. Blocks the display did
// not create sort last.
func (d *Display) blockIndex(b *block.Block) int {
	if i := slices.Index(d.blocks, b); i >= 0 {
		return i
	}
	return len(d.blocks)
}

// groupAfter returns the first live block after b whose backend is an
// svgBlock, or nil.
func (d *Display) groupAfter(b *block.Block) *svgBlock {
	i := slices.Index(d.blocks, b)
	if i < 0 {
		return nil
	}
	for _, next := range d.blocks[i+1:] {
		if sb, ok := next.Backend().(*svgBlock); ok {
			return sb
		}
	}
	return nil
}

// UpdateDisplay commits the frame. Dirty gradient controllers are flushed
// first, each once; dirty blocks follow in block (z) order, each once.
// With verification on, every live block is audited afterwards.
func (d *Display) UpdateDisplay() FrameStats {
	start := time.Now()
	writes := d.doc.Writes()
	d.frame++
	stats := FrameStats{Frame: d.frame}

	for i, c := range d.dirtyGradients {
		if c.IsActive() && c.Update() {
			stats.Gradients++
		}
		d.dirtyGradients[i] = nil
	}
	d.dirtyGradients = d.dirtyGradients[:0]

	slices.SortStableFunc(d.dirtyBlocks, func(a, b *block.Block) int {
		return d.blockIndex(a) - d.blockIndex(b)
	})
	// Repainting may schedule more blocks, so the length is re-read.
	for i := 0; i < len(d.dirtyBlocks); i++ {
		b := d.dirtyBlocks[i]
		d.dirtyBlocks[i] = nil
		if !b.IsDisposed() && b.Update() {
			stats.Blocks++
		}
	}
	d.dirtyBlocks = d.dirtyBlocks[:0]

	if retained.Verifying() {
		for _, b := range d.blocks {
			b.Audit(false, false, false)
		}
	}

	stats.Writes = d.doc.Writes() - writes
	stats.Duration = time.Since(start)
	retained.Logger().Debug("display: frame committed",
		"frame", stats.Frame, "gradients", stats.Gradients,
		"blocks", stats.Blocks, "writes", stats.Writes)
	return stats
}

// Dispose tears the display down. Gradient controllers still referenced
// are released and no new block can be initialized on d afterwards.
func (d *Display) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true

	ids := make([]uint64, 0, len(d.paints))
	for id := range d.paints {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		d.releasePaint(id)
	}
	clear(d.dirtyGradients)
	d.dirtyGradients = d.dirtyGradients[:0]

	retained.Logger().Info("display: disposed", "frames", d.frame, "blocks", len(d.blocks))
}

// Stats reports pool usage.
type Stats struct {
	Blocks    int // live blocks
	Gradients int // gradients with a live controller
	Objects   struct{ Blocks, Drawables pool.Stats }
	Paint     gradient.PoolStats
}

// Stats returns pool and registry usage.
func (d *Display) Stats() Stats {
	var s Stats
	s.Blocks = len(d.blocks)
	s.Gradients = len(d.paints)
	s.Objects.Blocks, s.Objects.Drawables = d.objects.Stats()
	s.Paint = d.gradients.Stats()
	return s
}
