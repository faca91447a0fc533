package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt work factor used when no cost is given.
	DefaultCost = 10

	// MinCost and MaxCost bound the accepted work factor.
	MinCost = bcrypt.MinCost
	MaxCost = bcrypt.MaxCost
)

// Options configures hashing and simulation.
type Options struct {
	// Cost is the bcrypt work factor (logarithmic).  Zero selects
	// [DefaultCost].  Valid range: [MinCost, MaxCost].
	Cost int
}

// Option mutates Options.  Options are applied in order.
type Option func(*Options)

// WithCost sets the bcrypt work factor.
func WithCost(cost int) Option {
	return func(o *Options) { o.Cost = cost }
}

// DefaultOptions returns Options with [DefaultCost].
func DefaultOptions() Options {
	return Options{Cost: DefaultCost}
}

// resolve merges opts over the defaults and validates the result.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Cost == 0 {
		o.Cost = DefaultCost
	}
	if err := validateCost(o.Cost); err != nil {
		return Options{}, err
	}
	return o, nil
}

func validateCost(cost int) error {
	if cost < MinCost || cost > MaxCost {
		return fmt.Errorf("%w: cost %d must be in [%d, %d]",
			ErrInvalidParameter, cost, MinCost, MaxCost)
	}
	return nil
}
