package display

import (
	"log/slog"

	"github.com/gogpu/retained"
)

// Option configures a Display during creation.
//
// Example:
//
//	d := display.New(800, 600,
//	    display.WithVerify(true),
//	    display.WithPoolWarmup(8, 256, 16))
type Option func(*options)

// options holds optional configuration for Display creation.
type options struct {
	verify    *bool
	logger    *slog.Logger
	registry  *Registry
	backends  map[retained.Renderer]BackendFactory
	blocks    int
	drawables int
	gradients int
}

// defaultOptions returns the default display options.
func defaultOptions() options {
	return options{
		registry: globalRegistry,
	}
}

// WithVerify turns invariant checking on or off for the process.
// Without it the current setting is kept.
func WithVerify(on bool) Option {
	return func(o *options) {
		o.verify = &on
	}
}

// WithLogger installs l as the package-wide logger (see retained.SetLogger).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithPoolWarmup pre-allocates pooled objects so that the first frames do
// not allocate.
func WithPoolWarmup(blocks, drawables, gradients int) Option {
	return func(o *options) {
		o.blocks = blocks
		o.drawables = drawables
		o.gradients = gradients
	}
}

// WithBackend forces blocks of renderer to use factory, bypassing the
// registry.
func WithBackend(renderer retained.Renderer, factory BackendFactory) Option {
	return func(o *options) {
		if o.backends == nil {
			o.backends = make(map[retained.Renderer]BackendFactory)
		}
		o.backends[renderer] = factory
	}
}

// WithRegistry selects the registry backends are looked up in.
// The default is the global registry.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}
