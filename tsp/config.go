package tsp

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/tspprune/geometry"
	"github.com/katalvlaran/tspprune/spatial"
)

// Config is the file form of the instance options.
//
//	decimals    = 2
//	dominance   = "spatial"   # or "all-vs-all"
//	bucket_size = 8
//
// Zero values fall back to the defaults.
type Config struct {
	Decimals   *int   `toml:"decimals"`
	Dominance  string `toml:"dominance"`
	BucketSize int    `toml:"bucket_size"`
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, fmt.Errorf("tsp: load config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("tsp: load config: %w", err)
	}
	return c, nil
}

// DecodeConfig reads a TOML configuration from r.
func DecodeConfig(r io.Reader) (Config, error) {
	var c Config
	if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
		return Config{}, fmt.Errorf("tsp: decode config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("tsp: decode config: %w", err)
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Decimals != nil && (*c.Decimals < 0 || *c.Decimals > 2) {
		return fmt.Errorf("decimals = %d: want 0..2", *c.Decimals)
	}
	if _, err := ParseDominance(c.Dominance); err != nil {
		return err
	}
	if c.BucketSize < 0 {
		return fmt.Errorf("bucket_size = %d: want >= 1", c.BucketSize)
	}
	return nil
}

// Options converts c to instance options. c must have passed LoadConfig or
// DecodeConfig validation; Options panics otherwise.
func (c Config) Options() []Option {
	decimals := geometry.DefaultDecimals
	if c.Decimals != nil {
		decimals = *c.Decimals
	}
	dominance, err := ParseDominance(c.Dominance)
	if err != nil {
		panic(err)
	}
	bucket := c.BucketSize
	if bucket == 0 {
		bucket = spatial.DefaultBucketSize
	}
	return []Option{
		WithDecimals(decimals),
		WithDominance(dominance),
		WithBucketSize(bucket),
	}
}
