package tsp

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/tspprune/geometry"
	"github.com/katalvlaran/tspprune/spatial"
)

// Option customizes an Instance.
type Option func(*instanceConfig)

type instanceConfig struct {
	decimals   int
	dominance  Dominance
	bucketSize int
	logger     *slog.Logger
}

func defaultInstanceConfig() instanceConfig {
	return instanceConfig{
		decimals:   geometry.DefaultDecimals,
		dominance:  DominanceSpatialIndex,
		bucketSize: spatial.DefaultBucketSize,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithDecimals sets the fixed-point precision of edge lengths (0, 1 or 2).
// Panics on any other value.
func WithDecimals(d int) Option {
	if d < 0 || d > 2 {
		panic(fmt.Sprintf("tsp: WithDecimals(%d): want 0..2", d))
	}
	return func(c *instanceConfig) {
		c.decimals = d
	}
}

// WithDominance selects the dominated-edge construction. Panics on an
// unknown strategy.
func WithDominance(d Dominance) Option {
	if d != DominanceSpatialIndex && d != DominanceAllVsAll {
		panic(fmt.Sprintf("tsp: WithDominance(%v)", d))
	}
	return func(c *instanceConfig) {
		c.dominance = d
	}
}

// WithBucketSize sets the leaf capacity of the spatial index used for the
// dominated-edge table. Panics if k < 1.
func WithBucketSize(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("tsp: WithBucketSize(%d)", k))
	}
	return func(c *instanceConfig) {
		c.bucketSize = k
	}
}

// WithLogger routes debug output to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("tsp: WithLogger(nil)")
	}
	return func(c *instanceConfig) {
		c.logger = l
	}
}
