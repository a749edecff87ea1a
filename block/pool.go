package block

import (
	"github.com/gogpu/retained"
	"github.com/gogpu/retained/pool"
)

// Pool recycles the Blocks and Drawables of one surface. Disposed objects
// obtained from a Pool return to it automatically.
//
// Pool is NOT thread-safe.
type Pool struct {
	blocks    *pool.Pool[Block]
	drawables *pool.Pool[Drawable]
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	p := &Pool{}
	p.blocks = pool.New(func() *Block { return &Block{pool: p} })
	p.drawables = pool.New(func() *Drawable { return &Drawable{pool: p} })
	return p
}

// Warmup pre-allocates blocks and drawables.
func (p *Pool) Warmup(blocks, drawables int) {
	p.blocks.Warmup(blocks)
	p.drawables.Warmup(drawables)
}

// Drawable returns an initialized drawable for renderer.
func (p *Pool) Drawable(renderer retained.Renderer) *Drawable {
	return p.drawables.Get().Initialize(renderer)
}

// Block returns a block initialized on s. On error the block is returned
// to the pool.
func (p *Pool) Block(s Surface, renderer retained.Renderer) (*Block, error) {
	b := p.blocks.Get()
	if _, err := b.Initialize(s, renderer); err != nil {
		p.blocks.Put(b)
		return nil, err
	}
	return b, nil
}

// Stats returns block and drawable pool statistics.
func (p *Pool) Stats() (blocks, drawables pool.Stats) {
	return p.blocks.Stats(), p.drawables.Stats()
}
