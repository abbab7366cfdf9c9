// Package seed derives the random seed used for harmony jitter.
// A colour-derived seed gives every base colour its own stable palette while
// still looking varied across colours.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/jmylchreest/chromatic/internal/colour"
)

// Mode determines how the random seed for harmony jitter is generated.
type Mode string

const (
	// ModeColour generates seed from the base colour (deterministic by colour).
	ModeColour Mode = "colour"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeRandom uses non-deterministic random seed (varies each run, default).
	ModeRandom Mode = "random"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the seed value based on the seed mode.
func Calculate(base colour.RGB, config Config) (int64, error) {
	switch config.Mode {
	case ModeColour:
		return ColourSeed(base), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRandom, "":
		return GenerateRandomSeed(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// ColourSeed generates a deterministic seed from the canonical hex form of a colour.
func ColourSeed(c colour.RGB) int64 {
	hash := sha256.Sum256([]byte(c.Hex()))
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// GenerateRandomSeed generates a non-deterministic random seed.
func GenerateRandomSeed() int64 {
	// #nosec G404 -- Random seed generation is intentionally non-deterministic
	return time.Now().UnixNano() + int64(rand.Intn(1000000))
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeColour, ModeManual, ModeRandom}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: colour, manual, random)", s)
}
