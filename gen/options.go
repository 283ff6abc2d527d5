package gen

import (
	"errors"
	"math/rand"
)

// ErrTooFewVertices reports a size parameter below the constructor's
// minimum.
var ErrTooFewVertices = errors.New("gen: too few vertices")

// ErrInvalidProbability reports an edge probability outside [0, 1].
var ErrInvalidProbability = errors.New("gen: probability out of range")

// ErrInvalidWeightRange reports a weight range with max < min.
var ErrInvalidWeightRange = errors.New("gen: invalid weight range")

const (
	defaultSeed      = 1
	defaultMinWeight = 1.0
	defaultMaxWeight = 10.0
)

type config struct {
	rng       *rand.Rand
	minWeight float64
	maxWeight float64
}

// Option adjusts a constructor's configuration.
type Option func(*config)

// WithSeed fixes the random source. Constructors default to seed 1, so
// every call is reproducible even without this option.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightRange draws edge weights uniformly from [min, max). The
// default range is [1, 10).
func WithWeightRange(min, max float64) Option {
	return func(c *config) {
		c.minWeight = min
		c.maxWeight = max
	}
}

func newConfig(opts []Option) (config, error) {
	c := config{
		rng:       rand.New(rand.NewSource(defaultSeed)),
		minWeight: defaultMinWeight,
		maxWeight: defaultMaxWeight,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.maxWeight < c.minWeight {
		return c, ErrInvalidWeightRange
	}

	return c, nil
}

// weight draws one edge weight from the configured range.
func (c config) weight() float64 {
	if c.maxWeight == c.minWeight {
		return c.minWeight
	}

	return c.minWeight + c.rng.Float64()*(c.maxWeight-c.minWeight)
}
