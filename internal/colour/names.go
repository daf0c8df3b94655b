package colour

import (
	"fmt"
	"math"
	"strings"
)

// namedColour is a common colour name with its typical sRGB value.
type namedColour struct {
	name    string
	r, g, b uint8
	aliases []string
}

// Terminal (xterm 16) names first, then a few common extras.
var namedColours = []namedColour{
	{name: "black", r: 0, g: 0, b: 0, aliases: []string{"color0"}},
	{name: "red", r: 205, g: 49, b: 49, aliases: []string{"color1"}},
	{name: "green", r: 13, g: 188, b: 121, aliases: []string{"color2"}},
	{name: "yellow", r: 229, g: 229, b: 16, aliases: []string{"color3"}},
	{name: "blue", r: 36, g: 114, b: 200, aliases: []string{"color4"}},
	{name: "magenta", r: 188, g: 63, b: 188, aliases: []string{"color5", "purple"}},
	{name: "cyan", r: 17, g: 168, b: 205, aliases: []string{"color6"}},
	{name: "white", r: 229, g: 229, b: 229, aliases: []string{"color7", "gray", "grey"}},

	{name: "brightblack", r: 102, g: 102, b: 102, aliases: []string{"color8", "darkgray", "darkgrey"}},
	{name: "brightred", r: 241, g: 76, b: 76, aliases: []string{"color9"}},
	{name: "brightgreen", r: 35, g: 209, b: 139, aliases: []string{"color10"}},
	{name: "brightyellow", r: 245, g: 245, b: 67, aliases: []string{"color11"}},
	{name: "brightblue", r: 59, g: 142, b: 234, aliases: []string{"color12"}},
	{name: "brightmagenta", r: 214, g: 112, b: 214, aliases: []string{"color13", "brightpurple"}},
	{name: "brightcyan", r: 41, g: 184, b: 219, aliases: []string{"color14"}},
	{name: "brightwhite", r: 255, g: 255, b: 255, aliases: []string{"color15"}},

	{name: "orange", r: 255, g: 165, b: 0},
	{name: "pink", r: 255, g: 192, b: 203},
	{name: "brown", r: 165, g: 42, b: 42},
	{name: "lime", r: 0, g: 255, b: 0},
	{name: "navy", r: 0, g: 0, b: 128, aliases: []string{"darkblue"}},
	{name: "teal", r: 0, g: 128, b: 128, aliases: []string{"darkcyan"}},
	{name: "maroon", r: 128, g: 0, b: 0, aliases: []string{"darkred"}},
	{name: "olive", r: 128, g: 128, b: 0, aliases: []string{"darkyellow"}},
	{name: "violet", r: 238, g: 130, b: 238},
	{name: "indigo", r: 75, g: 0, b: 130},
}

func normaliseName(name string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.TrimSpace(name)))
}

func (n namedColour) colour() Color {
	return FromRGB(float64(n.r), float64(n.g), float64(n.b))
}

// LookupName returns the colour for a name such as "red", "bright-blue" or
// "color12". Matching ignores case, spaces, dashes and underscores.
func LookupName(name string) (Color, bool) {
	key := normaliseName(name)
	for _, n := range namedColours {
		if n.name == key {
			return n.colour(), true
		}
		for _, alias := range n.aliases {
			if alias == key {
				return n.colour(), true
			}
		}
	}
	return Color{}, false
}

// Parse accepts a hex colour or a colour name. When both fail the hex
// *ParseError is returned.
func Parse(s string) (Color, error) {
	c, err := ParseHex(s)
	if err == nil {
		return c, nil
	}
	if named, ok := LookupName(s); ok {
		return named, nil
	}
	return Color{}, err
}

// Names returns every canonical colour name.
func Names() []string {
	names := make([]string, len(namedColours))
	for i, n := range namedColours {
		names[i] = n.name
	}
	return names
}

// NearestName returns the canonical name perceptually closest to c and its
// CIEDE2000 distance. Ties resolve to the earlier name.
func NearestName(c Color) (string, float64) {
	best := ""
	bestDist := math.Inf(1)
	for _, n := range namedColours {
		if d := Distance(c, n.colour()); d < bestDist {
			best, bestDist = n.name, d
		}
	}
	return best, bestDist
}

// ParseList parses hex colours or colour names, in order. The first bad
// entry aborts parsing with its 1-based position.
func ParseList(values []string) ([]Color, error) {
	colors := make([]Color, len(values))
	for i, v := range values {
		c, err := Parse(v)
		if err != nil {
			return nil, fmt.Errorf("colour %d: %w", i+1, err)
		}
		colors[i] = c
	}
	return colors, nil
}
