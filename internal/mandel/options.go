package mandel

import "runtime"

// DefaultRowsPerTask is the height of one render partition.
const DefaultRowsPerTask = 8

type options struct {
	workers     int
	rowsPerTask int
	inside      byte
}

// Option tunes a render.
type Option func(*options)

// WithWorkers caps concurrent partitions. n <= 0 uses GOMAXPROCS; 1 renders sequentially.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithRowsPerTask sets the partition height.
func WithRowsPerTask(n int) Option {
	return func(o *options) { o.rowsPerTask = n }
}

// WithInside sets the value written for points that never escape.
func WithInside(b byte) Option {
	return func(o *options) { o.inside = b }
}

func newOptions(opts []Option) options {
	o := options{inside: 255}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.rowsPerTask <= 0 {
		o.rowsPerTask = DefaultRowsPerTask
	}
	return o
}
