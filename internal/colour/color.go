package colour

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultDrift is the perturbation range used by Nearby when no other value is configured.
const DefaultDrift = 0.1

// Lab is a CIE L*a*b* coordinate relative to the D65 white point.
// L is in [0, 100]; A and B are unbounded but roughly within [-128, 128].
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Color is an immutable sRGB colour. Channels are clamped to [0, 255] on
// construction and the hex and Lab representations are derived once.
//
// The zero value is black without its cached representations; construct
// colours with FromRGB, ParseHex or Random.
type Color struct {
	r, g, b float64
	hex     string
	lab     Lab
}

// FromRGB creates a colour from channel values, clamping each into [0, 255].
func FromRGB(r, g, b float64) Color {
	r = clampChannel(r)
	g = clampChannel(g)
	b = clampChannel(b)
	return Color{
		r:   r,
		g:   g,
		b:   b,
		hex: formatHex(r, g, b),
		lab: toLab(r, g, b),
	}
}

// ParseHex parses a hex colour string into a Color.
// Supports formats: #RRGGBB, RRGGBB, #RGB, RGB.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 {
		return Color{}, &ParseError{Input: s, Err: fmt.Errorf("expected 6 hex digits, got %d", len(hex))}
	}

	var ch [3]float64
	for i, name := range []string{"red", "green", "blue"} {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, &ParseError{Input: s, Err: fmt.Errorf("invalid %s component: %w", name, err)}
		}
		ch[i] = float64(v)
	}

	return FromRGB(ch[0], ch[1], ch[2]), nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for constant colours in tests and tables.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Random returns a colour with each channel drawn uniformly from the integers 1..255.
// Zero is excluded to keep hue well defined.
func Random(rng *rand.Rand) Color {
	r := float64(1 + rng.IntN(255))
	g := float64(1 + rng.IntN(255))
	b := float64(1 + rng.IntN(255))
	return FromRGB(r, g, b)
}

// Nearby returns a copy of c with one randomly chosen channel nudged by a
// uniform amount in [-0.05, drift-0.05) of the full channel range.
func (c Color) Nearby(rng *rand.Rand, drift float64) Color {
	ch := [3]float64{c.r, c.g, c.b}
	i := rng.IntN(3)

	v := ch[i]/255.0 + rng.Float64()*drift - 0.05
	ch[i] = clamp(v, 0, 1) * 255.0

	return FromRGB(ch[0], ch[1], ch[2])
}

// Channels returns the clamped red, green and blue values in [0, 255].
func (c Color) Channels() (r, g, b float64) {
	return c.r, c.g, c.b
}

// Hex returns the colour as a lowercase hex string (e.g., "#1a2b3c").
func (c Color) Hex() string {
	if c.hex == "" {
		return formatHex(c.r, c.g, c.b)
	}
	return c.hex
}

// Lab returns the cached CIE Lab coordinate.
func (c Color) Lab() Lab {
	return c.lab
}

// RGB returns the colour rounded to 8-bit channels.
func (c Color) RGB() RGB {
	return RGB{
		R: uint8(math.RoundToEven(c.r)),
		G: uint8(math.RoundToEven(c.g)),
		B: uint8(math.RoundToEven(c.b)),
	}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	rgb := c.RGB()
	r = uint32(rgb.R)
	r |= r << 8
	g = uint32(rgb.G)
	g |= g << 8
	b = uint32(rgb.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// String returns the hex form.
func (c Color) String() string {
	return c.Hex()
}

func clampChannel(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return clamp(v, 0, 255)
}

func formatHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(math.RoundToEven(r)), uint8(math.RoundToEven(g)), uint8(math.RoundToEven(b)))
}

// toLab converts clamped sRGB channels to Lab through linear RGB and XYZ.
// go-colorful scales L, a and b to hundredths; they are restored to the
// conventional CIE ranges here.
func toLab(r, g, b float64) Lab {
	x, y, z := colorful.LinearRgbToXyz(SRGBToLinear(r), SRGBToLinear(g), SRGBToLinear(b))
	l, a, bb := colorful.XyzToLab(x, y, z)
	return Lab{L: l * 100, A: a * 100, B: bb * 100}
}
