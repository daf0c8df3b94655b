// Package config resolves optimizer defaults from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by WithEnvConfig.
const (
	EnvCount    = "DISTINCT_COUNT"
	EnvWeights  = "DISTINCT_WEIGHTS"
	EnvSeedMode = "DISTINCT_SEED_MODE"
	EnvSeed     = "DISTINCT_SEED"
	EnvParallel = "DISTINCT_PARALLEL"
)

// Config holds settings that may come from the environment before flags are applied.
type Config struct {
	// Count is the number of colours to generate; 0 means use the optimizer default.
	Count int

	// Weights holds objective weight overrides keyed by term name.
	// Format: "normal=1,range=0.5".
	Weights map[string]string

	// SeedMode selects how the random seed is chosen (content, manual, random).
	SeedMode string

	// Seed is the manual seed value, if any.
	Seed *int64

	// Parallel evaluates vision spaces concurrently.
	Parallel bool
}

// Builder provides a fluent interface for constructing a Config.
type Builder struct {
	config Config
	useEnv bool
	lookup func(string) (string, bool)
}

// NewBuilder creates a new Config builder with default settings.
func NewBuilder() *Builder {
	return &Builder{
		config: Config{Weights: map[string]string{}},
		lookup: os.LookupEnv,
	}
}

// WithConfig sets the base configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	if b.config.Weights == nil {
		b.config.Weights = map[string]string{}
	}
	return b
}

// WithEnvConfig loads configuration from DISTINCT_* environment variables.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLookup replaces the environment lookup (useful for testing).
func (b *Builder) WithLookup(lookup func(string) (string, bool)) *Builder {
	b.lookup = lookup
	return b
}

// Build constructs the Config. Environment values override the base config.
func (b *Builder) Build() (Config, error) {
	config := b.config
	config.Weights = make(map[string]string, len(b.config.Weights))
	for k, v := range b.config.Weights {
		config.Weights[k] = v
	}

	if !b.useEnv {
		return config, nil
	}

	if v, ok := b.lookup(EnvCount); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%s: invalid count %q: %w", EnvCount, v, err)
		}
		config.Count = n
	}

	if v, ok := b.lookup(EnvWeights); ok && v != "" {
		weights, err := ParsePairs(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvWeights, err)
		}
		for k, w := range weights {
			config.Weights[k] = w
		}
	}

	if v, ok := b.lookup(EnvSeedMode); ok && v != "" {
		config.SeedMode = strings.TrimSpace(v)
	}

	if v, ok := b.lookup(EnvSeed); ok && v != "" {
		s, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: invalid seed %q: %w", EnvSeed, v, err)
		}
		config.Seed = &s
		if config.SeedMode == "" {
			config.SeedMode = "manual"
		}
	}

	if v, ok := b.lookup(EnvParallel); ok && v != "" {
		p, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%s: invalid boolean %q: %w", EnvParallel, v, err)
		}
		config.Parallel = p
	}

	return config, nil
}

// ParsePairs parses a comma-separated list of name=value pairs.
func ParsePairs(s string) (map[string]string, error) {
	pairs := make(map[string]string)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, value, ok := strings.Cut(item, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid pair %q, expected name=value", item)
		}
		pairs[strings.ToLower(strings.TrimSpace(name))] = strings.TrimSpace(value)
	}
	return pairs, nil
}
