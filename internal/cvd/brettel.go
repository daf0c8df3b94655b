// Package cvd simulates how colours appear under colour-vision deficiencies.
//
// Dichromacy and anomalous trichromacy use the Brettel, Viénot and Mollon
// (1997) two-plane projection in linear RGB. Monochromacy blends towards
// Rec. 601 luma in sRGB.
package cvd

import (
	"math"

	"github.com/jmylchreest/distinct/internal/colour"
)

// Deficiency identifies the cone class a dichromat is missing.
type Deficiency int

const (
	// Protan is a missing or anomalous L (long-wavelength) cone.
	Protan Deficiency = iota
	// Deutan is a missing or anomalous M (medium-wavelength) cone.
	Deutan
	// Tritan is a missing or anomalous S (short-wavelength) cone.
	Tritan
)

// String returns the deficiency family name.
func (d Deficiency) String() string {
	switch d {
	case Protan:
		return "protan"
	case Deutan:
		return "deutan"
	case Tritan:
		return "tritan"
	default:
		return "unknown"
	}
}

type mat3 [9]float64

func (m *mat3) apply(v [3]float64) [3]float64 {
	return [3]float64{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// brettelParams holds the two half-plane projections for one deficiency and
// the normal of the plane separating them.
type brettelParams struct {
	rgbCvdFromRGB1        mat3
	rgbCvdFromRGB2        mat3
	separationPlaneNormal [3]float64
}

// Precomputed for sRGB primaries, from libDaltonLens.
var params = [...]brettelParams{
	Protan: {
		rgbCvdFromRGB1:        mat3{0.14510, 1.20165, -0.34675, 0.10447, 0.85316, 0.04237, 0.00429, -0.00603, 1.00174},
		rgbCvdFromRGB2:        mat3{0.14115, 1.16782, -0.30897, 0.10495, 0.85730, 0.03776, 0.00431, -0.00586, 1.00155},
		separationPlaneNormal: [3]float64{0.00048, 0.00416, -0.00464},
	},
	Deutan: {
		rgbCvdFromRGB1:        mat3{0.36198, 0.86755, -0.22953, 0.26099, 0.64512, 0.09389, -0.01975, 0.02686, 0.99289},
		rgbCvdFromRGB2:        mat3{0.37009, 0.88540, -0.25549, 0.25767, 0.63782, 0.10451, -0.01950, 0.02741, 0.99209},
		separationPlaneNormal: [3]float64{-0.00293, -0.00645, 0.00938},
	},
	Tritan: {
		rgbCvdFromRGB1:        mat3{1.01354, 0.14268, -0.15622, -0.01181, 0.87561, 0.13619, 0.07707, 0.81208, 0.11085},
		rgbCvdFromRGB2:        mat3{0.93337, 0.19999, -0.13336, 0.05809, 0.82565, 0.11626, -0.37923, 1.13825, 0.24098},
		separationPlaneNormal: [3]float64{0.03960, -0.02831, -0.01129},
	},
}

// Brettel returns c as seen with the given deficiency. Severity 1 is full
// dichromacy and 0 leaves the colour unchanged; values in between interpolate
// in linear RGB. Severity is clamped to [0, 1]. Unknown deficiencies return
// c unchanged.
func Brettel(c colour.Color, d Deficiency, severity float64) colour.Color {
	if d < 0 || int(d) >= len(params) {
		return c
	}
	p := &params[d]
	severity = math.Max(0, math.Min(1, severity))

	r, g, b := c.Channels()
	rgb := [3]float64{colour.SRGBToLinear(r), colour.SRGBToLinear(g), colour.SRGBToLinear(b)}

	n := p.separationPlaneNormal
	dot := rgb[0]*n[0] + rgb[1]*n[1] + rgb[2]*n[2]

	m := &p.rgbCvdFromRGB1
	if dot < 0 {
		m = &p.rgbCvdFromRGB2
	}
	cvd := m.apply(rgb)

	var out [3]float64
	for i := range out {
		lin := cvd[i]*severity + rgb[i]*(1-severity)
		out[i] = colour.LinearToSRGB(lin)
	}

	return colour.FromRGB(out[0], out[1], out[2])
}

// Monochrome blends each channel of c towards its rounded luma by severity.
// Severity 1 gives achromatopsia; 0 leaves the colour unchanged.
func Monochrome(c colour.Color, severity float64) colour.Color {
	severity = math.Max(0, math.Min(1, severity))

	r, g, b := c.Channels()
	z := math.RoundToEven(r*0.299 + g*0.587 + b*0.114)

	return colour.FromRGB(
		z*severity+(1-severity)*r,
		z*severity+(1-severity)*g,
		z*severity+(1-severity)*b,
	)
}
