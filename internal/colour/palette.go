// Package colour provides the colour model used by the palette optimizer:
// clamped sRGB colours with cached Lab coordinates, CIEDE2000 distances and
// the random perturbations the annealer draws from.
package colour

import (
	"encoding/json"
	"fmt"
)

// Palette is an ordered, fixed-length collection of colours.
type Palette struct {
	Colors []Color
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(colors []Color) *Palette {
	return &Palette{
		Colors: colors,
	}
}

// ParsePalette parses a list of hex strings into a Palette.
// The first malformed entry aborts parsing with a *ParseError.
func ParsePalette(hexes []string) (*Palette, error) {
	colors := make([]Color, len(hexes))
	for i, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("colour %d: %w", i+1, err)
		}
		colors[i] = c
	}
	return NewPalette(colors), nil
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// RGB represents a colour rounded to 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ToHex converts the palette colours to hex strings.
// Returns a slice of hex colour codes (e.g., ["#1a2b3c", "#4d5e6f"]).
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexColors[i] = c.Hex()
	}
	return hexColors
}

// ColorJSON represents a colour in JSON output format.
type ColorJSON struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
	Lab Lab    `json:"lab"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count  int         `json:"count"`
	Colors []ColorJSON `json:"colors"`
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON() ([]byte, error) {
	colors := make([]ColorJSON, len(p.Colors))
	for i, c := range p.Colors {
		colors[i] = ColorJSON{
			Hex: c.Hex(),
			RGB: c.RGB(),
			Lab: c.Lab(),
		}
	}

	paletteJSON := PaletteJSON{
		Count:  len(p.Colors),
		Colors: colors,
	}

	return json.MarshalIndent(paletteJSON, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colors) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colors:\n", len(p.Colors))
	for i, c := range p.Colors {
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, c.Hex(), c.RGB().String())
	}
	return result
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (Color, error) {
	if index < 0 || index >= len(p.Colors) {
		return Color{}, fmt.Errorf("index out of bounds: %d (palette has %d colors)", index, len(p.Colors))
	}
	return p.Colors[index], nil
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, Color) bool) {
	return func(yield func(int, Color) bool) {
		for i, c := range p.Colors {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Clone returns a palette with its own copy of the colour slice.
func (p *Palette) Clone() *Palette {
	colors := make([]Color, len(p.Colors))
	copy(colors, p.Colors)
	return NewPalette(colors)
}

// With returns a copy of the palette with the colour at index replaced.
// Panics if index is out of range.
func (p *Palette) With(index int, c Color) *Palette {
	next := p.Clone()
	next.Colors[index] = c
	return next
}
