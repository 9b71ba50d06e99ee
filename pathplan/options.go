package pathplan

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/surveyor/terrain"
)

// ErrOptionViolation is returned by Validate when an invalid Option is supplied.
var ErrOptionViolation = errors.New("pathplan: invalid option supplied")

// Option configures a search via functional arguments.
// Invalid options are recorded and make FindPath report no route.
type Option func(*Options)

// Options holds the tunables of a search.
type Options struct {
	// MaxDepth, if > 0, rejects routes longer than MaxDepth steps.
	MaxDepth int

	// Filter can veto individual steps by returning false.
	Filter func(from, to terrain.Coord) bool

	err error
}

// DefaultOptions returns options with no depth limit and no filtering.
func DefaultOptions() Options {
	return Options{
		MaxDepth: 0,
		Filter:   func(_, _ terrain.Coord) bool { return true },
	}
}

// WithMaxDepth bounds the route length.
//
//	d > 0: routes of at most d steps
//	d == 0: no limit
//	d < 0: invalid → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilter skips steps for which fn returns false.
func WithFilter(fn func(from, to terrain.Coord) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// Validate applies opts and reports the first recorded violation.
func Validate(opts ...Option) error {
	_, err := build(opts)
	return err
}

func build(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
