// Package seed provides deterministic seed generation for the palette optimizer.
// Seeds make annealing runs reproducible: the same targets and seed always
// produce the same palette.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"
)

// Mode determines how the random seed for annealing is generated.
type Mode string

const (
	// ModeContent generates seed from the target colours (default, deterministic by content).
	ModeContent Mode = "content"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeRandom uses non-deterministic random seed (varies each run).
	ModeRandom Mode = "random"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the seed value based on the seed mode.
// targets: normalised hex strings of the target colours (required for ModeContent)
func Calculate(targets []string, config Config) (int64, error) {
	switch config.Mode {
	case ModeContent, "":
		if len(targets) == 0 {
			return 0, fmt.Errorf("target colours are required for content-based seed mode")
		}
		return CalculateContentSeed(targets), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRandom:
		return GenerateRandomSeed(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// CalculateContentSeed generates a deterministic seed from the target colours.
// Order and case do not matter, so equivalent target sets share a seed.
func CalculateContentSeed(targets []string) int64 {
	normalised := make([]string, len(targets))
	for i, t := range targets {
		normalised[i] = strings.ToLower(strings.TrimSpace(t))
	}
	slices.Sort(normalised)

	hasher := sha256.New()
	hasher.Write([]byte(strings.Join(normalised, ",")))
	hash := hasher.Sum(nil)
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// GenerateRandomSeed generates a non-deterministic random seed.
func GenerateRandomSeed() int64 {
	// #nosec G404 -- Random seed generation is intentionally non-deterministic
	return time.Now().UnixNano() + rand.Int64N(1000000)
}

// NewRand returns a generator seeded from a single int64.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed) // #nosec G115 -- bit pattern reuse is intended
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeContent, ModeManual, ModeRandom}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: content, manual, random)", s)
}
