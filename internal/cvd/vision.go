package cvd

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/distinct/internal/colour"
)

// VisionSpace names one simulated way of seeing colour.
type VisionSpace int

const (
	Normal VisionSpace = iota
	Protanopia
	Protanomaly
	Deuteranopia
	Deuteranomaly
	Tritanopia
	Tritanomaly
	Achromatopsia
	Achromatomaly

	visionSpaceCount
)

const (
	anopiaSeverity  = 1.0
	anomalySeverity = 0.6
)

var visionSpaceNames = [visionSpaceCount]string{
	Normal:        "Normal",
	Protanopia:    "Protanopia",
	Protanomaly:   "Protanomaly",
	Deuteranopia:  "Deuteranopia",
	Deuteranomaly: "Deuteranomaly",
	Tritanopia:    "Tritanopia",
	Tritanomaly:   "Tritanomaly",
	Achromatopsia: "Achromatopsia",
	Achromatomaly: "Achromatomaly",
}

// UnknownVisionSpaceError is returned when a vision space name is not recognised.
type UnknownVisionSpaceError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownVisionSpaceError) Error() string {
	return fmt.Sprintf("unknown vision space: %s (valid: %s)", e.Name, strings.Join(VisionSpaceNames(), ", "))
}

// String returns the canonical name of the vision space.
func (v VisionSpace) String() string {
	if v < 0 || v >= visionSpaceCount {
		return fmt.Sprintf("VisionSpace(%d)", int(v))
	}
	return visionSpaceNames[v]
}

// AllVisionSpaces returns every supported vision space in declaration order.
func AllVisionSpaces() []VisionSpace {
	all := make([]VisionSpace, visionSpaceCount)
	for i := range all {
		all[i] = VisionSpace(i)
	}
	return all
}

// VisionSpaceNames returns the canonical names of every vision space.
func VisionSpaceNames() []string {
	names := make([]string, len(visionSpaceNames))
	copy(names, visionSpaceNames[:])
	return names
}

// ParseVisionSpace converts a name to a VisionSpace, ignoring case.
func ParseVisionSpace(name string) (VisionSpace, error) {
	for i, n := range visionSpaceNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return VisionSpace(i), nil
		}
	}
	return 0, &UnknownVisionSpaceError{Name: name}
}

// Simulate returns c as it appears in vision space v.
// Unrecognised spaces return c unchanged; use ParseVisionSpace to validate names.
func Simulate(c colour.Color, v VisionSpace) colour.Color {
	switch v {
	case Protanopia:
		return Brettel(c, Protan, anopiaSeverity)
	case Protanomaly:
		return Brettel(c, Protan, anomalySeverity)
	case Deuteranopia:
		return Brettel(c, Deutan, anopiaSeverity)
	case Deuteranomaly:
		return Brettel(c, Deutan, anomalySeverity)
	case Tritanopia:
		return Brettel(c, Tritan, anopiaSeverity)
	case Tritanomaly:
		return Brettel(c, Tritan, anomalySeverity)
	case Achromatopsia:
		return Monochrome(c, anopiaSeverity)
	case Achromatomaly:
		return Monochrome(c, anomalySeverity)
	default:
		return c
	}
}

// Variants holds a colour simulated in every vision space.
type Variants struct {
	values [visionSpaceCount]colour.Color
}

// NewVariants computes all simulations of c up front.
func NewVariants(c colour.Color) Variants {
	var v Variants
	for i := range v.values {
		v.values[i] = Simulate(c, VisionSpace(i))
	}
	return v
}

// Get returns the simulation for a vision space.
func (v Variants) Get(space VisionSpace) colour.Color {
	if space < 0 || space >= visionSpaceCount {
		return v.values[Normal]
	}
	return v.values[space]
}

// Lookup returns the simulation for a vision space given by name.
func (v Variants) Lookup(name string) (colour.Color, error) {
	space, err := ParseVisionSpace(name)
	if err != nil {
		return colour.Color{}, err
	}
	return v.values[space], nil
}

// PairwiseDistances simulates every colour into space v and returns the
// CIEDE2000 distance of each unordered pair (i < j), in lexicographic order.
func PairwiseDistances(colors []colour.Color, v VisionSpace) []float64 {
	simulated := make([]colour.Color, len(colors))
	for i, c := range colors {
		simulated[i] = Simulate(c, v)
	}

	n := len(simulated)
	if n < 2 {
		return []float64{}
	}

	distances := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			distances = append(distances, colour.Distance(simulated[i], simulated[j]))
		}
	}
	return distances
}
