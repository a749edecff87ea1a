// Package pool provides the arena-with-recycling free lists that back
// Blocks, Drawables and gradient controllers.
//
// A Pool hands out previously released objects before allocating new ones,
// so after warmup a steady-state frame allocates nothing. Objects are
// responsible for resetting themselves in their own Initialize method; the
// pool only stores and returns pointers.
//
// Usage:
//
//	p := pool.New(func() *Block { return new(Block) })
//	b := p.Get()
//	defer p.Put(b)
//
// A Pool is not safe for concurrent use. Each output surface owns its pools
// and drives them from the single frame goroutine.
package pool

import "github.com/gogpu/retained/internal/assert"

// Pool is a LIFO free list of *T.
type Pool[T any] struct {
	free  []*T
	alloc func() *T

	gets   uint64
	puts   uint64
	misses uint64
}

// Stats contains pool statistics for monitoring.
type Stats struct {
	// Free is the number of objects waiting for reuse.
	Free int
	// Gets is the number of Get calls.
	Gets uint64
	// Puts is the number of Put calls.
	Puts uint64
	// Misses is the number of Gets that had to allocate.
	Misses uint64
	// Live is Gets minus Puts: objects currently handed out.
	Live int64
}

// New creates an empty pool that allocates with alloc on a miss.
func New[T any](alloc func() *T) *Pool[T] {
	if alloc == nil {
		alloc = func() *T { return new(T) }
	}
	return &Pool[T]{alloc: alloc}
}

// Get returns a released object, or a freshly allocated one if none is free.
// The object is returned as-is; the caller initializes it.
func (p *Pool[T]) Get() *T {
	p.gets++
	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return v
	}
	p.misses++
	return p.alloc()
}

// Put releases v for reuse. Nil is ignored.
// Releasing the same object twice is an invariant violation.
func (p *Pool[T]) Put(v *T) {
	if v == nil {
		return
	}
	if assert.Enabled() {
		for _, f := range p.free {
			assert.That(f != v, "Pool.Put", "object %p released twice", v)
		}
	}
	p.puts++
	p.free = append(p.free, v)
}

// Warmup pre-allocates count objects so that the next count Gets do not
// allocate.
func (p *Pool[T]) Warmup(count int) {
	for i := 0; i < count; i++ {
		p.free = append(p.free, p.alloc())
	}
}

// Len returns the number of free objects.
func (p *Pool[T]) Len() int {
	return len(p.free)
}

// Stats returns pool statistics.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Free:   len(p.free),
		Gets:   p.gets,
		Puts:   p.puts,
		Misses: p.misses,
		Live:   int64(p.gets) - int64(p.puts),
	}
}
