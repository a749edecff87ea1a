package gradient

import (
	"github.com/gogpu/retained/paint"
	"github.com/gogpu/retained/pool"
)

// Pool recycles controllers per gradient kind together with their stop
// controllers. Definitions stay attached to recycled controllers, so a
// controller taken from the pool for the same document never creates a
// second one.
type Pool struct {
	linear *pool.Pool[Controller]
	radial *pool.Pool[Controller]
	stops  *pool.Pool[StopController]
}

// PoolStats reports per-kind pool counters.
type PoolStats struct {
	Linear pool.Stats
	Radial pool.Stats
	Stops  pool.Stats
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	p := &Pool{}
	p.linear = pool.New(func() *Controller {
		c := NewController(paint.KindLinear)
		c.pool = p
		return c
	})
	p.radial = pool.New(func() *Controller {
		c := NewController(paint.KindRadial)
		c.pool = p
		return c
	})
	p.stops = pool.New[StopController](nil)
	return p
}

// Warmup pre-allocates n controllers of each kind and 2n stop controllers.
func (p *Pool) Warmup(n int) {
	p.linear.Warmup(n)
	p.radial.Warmup(n)
	p.stops.Warmup(2 * n)
}

// Controller returns a pooled controller bound to g on s.
func (p *Pool) Controller(s Surface, g paint.Gradient) *Controller {
	var c *Controller
	switch g.Kind() {
	case paint.KindRadial:
		c = p.radial.Get()
	default:
		c = p.linear.Get()
	}
	return c.Initialize(s, g)
}

// Stats returns the pool counters.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Linear: p.linear.Stats(),
		Radial: p.radial.Stats(),
		Stops:  p.stops.Stats(),
	}
}
