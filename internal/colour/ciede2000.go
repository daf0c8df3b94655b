package colour

import (
	"math"
)

// pow25to7 is 25^7, used by the chroma compensation terms.
const pow25to7 = 6103515625.0

// Distance returns the CIEDE2000 colour difference between two colours.
func Distance(a, b Color) float64 {
	return DeltaE2000(a.lab, b.lab)
}

// DeltaE2000 returns the CIEDE2000 difference between two Lab coordinates
// with unit weighting factors (kL = kC = kH = 1).
// http://www2.ece.rochester.edu/~gsharma/ciede2000/ciede2000noteCRNA.pdf
func DeltaE2000(x, y Lab) float64 {
	c1 := math.Hypot(x.A, x.B)
	c2 := math.Hypot(y.A, y.B)
	cBar7 := math.Pow((c1+c2)/2, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25to7)))

	a1p := (1 + g) * x.A
	a2p := (1 + g) * y.A
	c1p := math.Hypot(a1p, x.B)
	c2p := math.Hypot(a2p, y.B)
	h1p := hueAngle(x.B, a1p)
	h2p := hueAngle(y.B, a2p)

	chromatic := c1p*c2p != 0

	dLp := y.L - x.L
	dCp := c2p - c1p

	var dhp float64
	if chromatic {
		dhp = h2p - h1p
		if dhp > 180 {
			dhp -= 360
		} else if dhp < -180 {
			dhp += 360
		}
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(radians(dhp/2))

	lBarP := (x.L + y.L) / 2
	cBarP := (c1p + c2p) / 2

	hBarP := h1p + h2p
	if chromatic {
		if math.Abs(h1p-h2p) > 180 {
			if hBarP < 360 {
				hBarP += 360
			} else {
				hBarP -= 360
			}
		}
		hBarP /= 2
	}

	t := 1 -
		0.17*math.Cos(radians(hBarP-30)) +
		0.24*math.Cos(radians(2*hBarP)) +
		0.32*math.Cos(radians(3*hBarP+6)) -
		0.20*math.Cos(radians(4*hBarP-63))

	dTheta := 30 * math.Exp(-((hBarP-275)/25)*((hBarP-275)/25))
	cBarP7 := math.Pow(cBarP, 7)
	rc := 2 * math.Sqrt(cBarP7/(cBarP7+pow25to7))

	lb := (lBarP - 50) * (lBarP - 50)
	sl := 1 + 0.015*lb/math.Sqrt(20+lb)
	sc := 1 + 0.045*cBarP
	sh := 1 + 0.015*cBarP*t
	rt := -math.Sin(radians(2*dTheta)) * rc

	dl := dLp / sl
	dc := dCp / sc
	dh := dHp / sh

	return math.Sqrt(dl*dl + dc*dc + dh*dh + rt*dc*dh)
}

// ClosestIn returns the candidate nearest to c by CIEDE2000 and its distance.
// Ties resolve to the earliest candidate. Returns ErrEmptyInput when there
// are no candidates.
func ClosestIn(c Color, candidates []Color) (Color, float64, error) {
	if len(candidates) == 0 {
		return Color{}, 0, ErrEmptyInput
	}

	best := 0
	bestDist := Distance(c, candidates[0])
	for i := 1; i < len(candidates); i++ {
		if d := Distance(c, candidates[i]); d < bestDist {
			best, bestDist = i, d
		}
	}

	return candidates[best], bestDist, nil
}

// hueAngle returns atan2(b, a) in degrees within [0, 360).
func hueAngle(b, a float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
