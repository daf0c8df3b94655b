package colour

import (
	"math"
)

// Extended-precision sRGB breakpoints.
// https://entropymine.com/imageworsener/srgbformula/
const (
	srgbLinearThreshold = 0.0404482362771082
	linearSRGBThreshold = 0.00313066844250063
)

// SRGBToLinear converts an sRGB channel in [0, 255] to linear light in [0, 1].
func SRGBToLinear(v float64) float64 {
	fv := v / 255.0
	if fv < srgbLinearThreshold {
		return fv / 12.92
	}
	return math.Pow((fv+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear-light channel back to sRGB in [0, 255].
// Values outside [0, 1] are clamped.
func LinearToSRGB(v float64) float64 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	case v <= linearSRGBThreshold:
		return 255 * 12.92 * v
	default:
		return 255 * (1.055*math.Pow(v, 1.0/2.4) - 0.055)
	}
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c Color) float64 {
	return 0.2126*SRGBToLinear(c.r) + 0.7152*SRGBToLinear(c.g) + 0.0722*SRGBToLinear(c.b)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
func ContrastRatio(c1, c2 Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
