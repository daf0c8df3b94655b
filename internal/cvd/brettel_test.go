package cvd

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/jmylchreest/distinct/internal/colour"
)

func channelsClose(t *testing.T, got, want colour.Color, tol float64) bool {
	t.Helper()
	gr, gg, gb := got.Channels()
	wr, wg, wb := want.Channels()
	return math.Abs(gr-wr) <= tol && math.Abs(gg-wg) <= tol && math.Abs(gb-wb) <= tol
}

// fullProjection applies the full-severity projection without the brettel
// interpolation, selecting the matrix the same way.
func fullProjection(c colour.Color, d Deficiency) colour.Color {
	r, g, b := c.Channels()
	rgb := [3]float64{colour.SRGBToLinear(r), colour.SRGBToLinear(g), colour.SRGBToLinear(b)}
	p := params[d]
	n := p.separationPlaneNormal
	m := p.rgbCvdFromRGB1
	if rgb[0]*n[0]+rgb[1]*n[1]+rgb[2]*n[2] < 0 {
		m = p.rgbCvdFromRGB2
	}
	out := m.apply(rgb)
	return colour.FromRGB(colour.LinearToSRGB(out[0]), colour.LinearToSRGB(out[1]), colour.LinearToSRGB(out[2]))
}

func TestBrettelSeverityZeroIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 8))
	for range 300 {
		c := colour.Random(rng)
		for _, d := range []Deficiency{Protan, Deutan, Tritan} {
			if got := Brettel(c, d, 0); !channelsClose(t, got, c, 1e-9) {
				t.Fatalf("Brettel(%s, %s, 0) = %s, want unchanged", c, d, got)
			}
		}
	}
}

func TestBrettelSeverityOneIsFullProjection(t *testing.T) {
	rng := rand.New(rand.NewPCG(6, 9))
	for range 300 {
		c := colour.Random(rng)
		for _, d := range []Deficiency{Protan, Deutan, Tritan} {
			want := fullProjection(c, d)
			if got := Brettel(c, d, 1); !channelsClose(t, got, want, 1e-9) {
				t.Fatalf("Brettel(%s, %s, 1) = %s, want %s", c, d, got, want)
			}
		}
	}
}

func TestBrettelGreysStayGrey(t *testing.T) {
	// Both projections map the achromatic axis to itself (up to table rounding).
	for _, v := range []float64{0, 64, 128, 200, 255} {
		c := colour.FromRGB(v, v, v)
		for _, d := range []Deficiency{Protan, Deutan, Tritan} {
			got := Brettel(c, d, 1)
			if !channelsClose(t, got, c, 1.0) {
				t.Errorf("Brettel(%s, %s, 1) = %s, want near grey", c, d, got)
			}
		}
	}
}

func TestBrettelRedGreenConfusion(t *testing.T) {
	red := colour.MustParseHex("#ff0000")
	green := colour.MustParseHex("#00ff00")

	normal := colour.Distance(red, green)
	for _, d := range []Deficiency{Protan, Deutan} {
		simulated := colour.Distance(Brettel(red, d, 1), Brettel(green, d, 1))
		if simulated >= normal {
			t.Errorf("%s: simulated red/green distance %v, want less than normal %v", d, simulated, normal)
		}
	}
}

func TestMonochrome(t *testing.T) {
	tests := []struct {
		name     string
		hex      string
		severity float64
		want     [3]float64
	}{
		{name: "red full", hex: "#ff0000", severity: 1, want: [3]float64{76, 76, 76}},
		{name: "green full", hex: "#00ff00", severity: 1, want: [3]float64{150, 150, 150}},
		{name: "blue full", hex: "#0000ff", severity: 1, want: [3]float64{29, 29, 29}},
		{name: "red partial", hex: "#ff0000", severity: 0.6, want: [3]float64{76*0.6 + 255*0.4, 76 * 0.6, 76 * 0.6}},
		{name: "zero severity", hex: "#123456", severity: 0, want: [3]float64{0x12, 0x34, 0x56}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Monochrome(colour.MustParseHex(tt.hex), tt.severity)
			want := colour.FromRGB(tt.want[0], tt.want[1], tt.want[2])
			if !channelsClose(t, got, want, 1e-9) {
				r, g, b := got.Channels()
				t.Errorf("Monochrome(%s, %v) = (%v, %v, %v), want %v", tt.hex, tt.severity, r, g, b, tt.want)
			}
		})
	}
}

func TestSimulatedChannelsInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 34))
	samples := []colour.Color{
		colour.FromRGB(0, 0, 0),
		colour.FromRGB(255, 255, 255),
		colour.FromRGB(255, 0, 0),
		colour.FromRGB(0, 255, 0),
		colour.FromRGB(0, 0, 255),
		colour.FromRGB(255, 255, 0),
		colour.FromRGB(0, 255, 255),
		colour.FromRGB(255, 0, 255),
	}
	for range 500 {
		samples = append(samples, colour.Random(rng))
	}

	for _, c := range samples {
		for _, space := range AllVisionSpaces() {
			r, g, b := Simulate(c, space).Channels()
			for _, v := range []float64{r, g, b} {
				if v < 0 || v > 255 || math.IsNaN(v) {
					t.Fatalf("Simulate(%s, %s) channel = %v, outside [0, 255]", c, space, v)
				}
			}
		}
	}
}

func TestBrettelUnknownDeficiency(t *testing.T) {
	c := colour.MustParseHex("#c8102e")

	for _, d := range []Deficiency{-1, Deficiency(3), Deficiency(7)} {
		if got := Brettel(c, d, 1); got.Hex() != c.Hex() {
			t.Errorf("Brettel(%s, %d, 1) = %s, want colour unchanged", c.Hex(), int(d), got.Hex())
		}
	}
}
