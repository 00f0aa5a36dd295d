package group

// DefaultMaxElements is the default closure-size cap: 0, meaning no cap.
// Closure termination is then entirely the caller's obligation.
const DefaultMaxElements = 0

// Options configures closure construction. Fields are unexported;
// public APIs consume ...Option.
type Options struct {
	maxElements int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{maxElements: DefaultMaxElements}
}

// Option mutates Options.
type Option func(*Options)

// WithMaxElements caps the closure at n elements; construction fails
// with ErrClosureExceeded once the cap is crossed. n <= 0 removes the
// cap. Use this as a guard against generator sets whose true closure is
// infinite, which would otherwise never terminate.
func WithMaxElements(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.maxElements = n
	}
}
