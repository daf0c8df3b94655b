package colour

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

// Reference pairs from Sharma, Wu and Dalal, "The CIEDE2000 Color-Difference
// Formula: Implementation Notes, Supplementary Test Data".
var sharmaPairs = []struct {
	a, b Lab
	want float64
}{
	{Lab{50.0000, 2.6772, -79.7751}, Lab{50.0000, 0.0000, -82.7485}, 2.0425},
	{Lab{50.0000, 3.1571, -77.2803}, Lab{50.0000, 0.0000, -82.7485}, 2.8615},
	{Lab{50.0000, 2.8361, -74.0200}, Lab{50.0000, 0.0000, -82.7485}, 3.4412},
	{Lab{50.0000, -1.3802, -84.2814}, Lab{50.0000, 0.0000, -82.7485}, 1.0000},
	{Lab{50.0000, -1.1848, -84.8006}, Lab{50.0000, 0.0000, -82.7485}, 1.0000},
	{Lab{50.0000, -0.9009, -85.5211}, Lab{50.0000, 0.0000, -82.7485}, 1.0000},
	{Lab{50.0000, 0.0000, 0.0000}, Lab{50.0000, -1.0000, 2.0000}, 2.3669},
	{Lab{50.0000, -1.0000, 2.0000}, Lab{50.0000, 0.0000, 0.0000}, 2.3669},
	{Lab{50.0000, 2.4900, -0.0010}, Lab{50.0000, -2.4900, 0.0009}, 7.1792},
	{Lab{50.0000, 2.4900, -0.0010}, Lab{50.0000, -2.4900, 0.0010}, 7.1792},
	{Lab{50.0000, 2.4900, -0.0010}, Lab{50.0000, -2.4900, 0.0011}, 7.2195},
	{Lab{50.0000, 2.4900, -0.0010}, Lab{50.0000, -2.4900, 0.0012}, 7.2195},
	{Lab{50.0000, -0.0010, 2.4900}, Lab{50.0000, 0.0009, -2.4900}, 4.8045},
	{Lab{50.0000, -0.0010, 2.4900}, Lab{50.0000, 0.0010, -2.4900}, 4.8045},
	{Lab{50.0000, -0.0010, 2.4900}, Lab{50.0000, 0.0011, -2.4900}, 4.7461},
	{Lab{50.0000, 2.5000, 0.0000}, Lab{50.0000, 0.0000, -2.5000}, 4.3065},
	{Lab{50.0000, 2.5000, 0.0000}, Lab{73.0000, 25.0000, -18.0000}, 27.1492},
	{Lab{50.0000, 2.5000, 0.0000}, Lab{61.0000, -5.0000, 29.0000}, 22.8977},
	{Lab{50.0000, 2.5000, 0.0000}, Lab{56.0000, -27.0000, -3.0000}, 31.9030},
	{Lab{50.0000, 2.5000, 0.0000}, Lab{58.0000, 24.0000, 15.0000}, 19.4535},
	{Lab{50.0000, 2.5000, 0.0000}, Lab{50.0000, 3.1736, 0.5854}, 1.0000},
	{Lab{50.0000, 2.5000, 0.0000}, Lab{50.0000, 3.2972, 0.0000}, 1.0000},
	{Lab{50.0000, 2.5000, 0.0000}, Lab{50.0000, 1.8634, 0.5757}, 1.0000},
	{Lab{50.0000, 2.5000, 0.0000}, Lab{50.0000, 3.2592, 0.3350}, 1.0000},
	{Lab{60.2574, -34.0099, 36.2677}, Lab{60.4626, -34.1751, 39.4387}, 1.2644},
	{Lab{63.0109, -31.0961, -5.8663}, Lab{62.8187, -29.7946, -4.0864}, 1.2630},
	{Lab{61.2901, 3.7196, -5.3901}, Lab{61.4292, 2.2480, -4.9620}, 1.8731},
	{Lab{35.0831, -44.1164, 3.7933}, Lab{35.0232, -40.0716, 1.5901}, 1.8645},
	{Lab{22.7233, 20.0904, -46.6940}, Lab{23.0331, 14.9730, -42.5619}, 2.0373},
	{Lab{36.4612, 47.8580, 18.3852}, Lab{36.2715, 50.5065, 21.2231}, 1.4146},
	{Lab{90.8027, -2.0831, 1.4410}, Lab{91.1528, -1.6435, 0.0447}, 1.4441},
	{Lab{90.9257, -0.5406, -0.9208}, Lab{88.6381, -0.8985, -0.7239}, 1.5381},
	{Lab{6.7747, -0.2908, -2.4247}, Lab{5.8714, -0.0985, -2.2286}, 0.6377},
	{Lab{2.0776, 0.0795, -1.1350}, Lab{0.9033, -0.0636, -0.5514}, 0.9082},
}

func TestDeltaE2000Reference(t *testing.T) {
	for i, tt := range sharmaPairs {
		got := DeltaE2000(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-4 {
			t.Errorf("pair %d: DeltaE2000(%+v, %+v) = %.6f, want %.4f", i+1, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDistanceIdentityAndSymmetry(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 13))
	for range 500 {
		a := Random(rng)
		b := Random(rng)

		if d := Distance(a, a); d != 0 {
			t.Fatalf("Distance(%s, %s) = %v, want 0", a, a, d)
		}
		if ab, ba := Distance(a, b), Distance(b, a); math.Abs(ab-ba) > 1e-12 {
			t.Fatalf("Distance(%s, %s) = %v but reversed = %v", a, b, ab, ba)
		}
	}
}

func TestDistanceMatchesGoColorful(t *testing.T) {
	pairs := [][2]string{
		{"#ff0000", "#00ff00"},
		{"#1f77b4", "#ff7f0e"},
		{"#2ca02c", "#d62728"},
		{"#9467bd", "#8c564b"},
		{"#e377c2", "#7f7f7f"},
		{"#bcbd22", "#17becf"},
	}

	for _, p := range pairs {
		a, b := MustParseHex(p[0]), MustParseHex(p[1])
		ca, _ := colorful.Hex(p[0])
		cb, _ := colorful.Hex(p[1])

		want := ca.DistanceCIEDE2000(cb) * 100
		if got := Distance(a, b); math.Abs(got-want) > 1e-6 {
			t.Errorf("Distance(%s, %s) = %v, go-colorful = %v", p[0], p[1], got, want)
		}
	}
}

func TestClosestIn(t *testing.T) {
	red := MustParseHex("#ff0000")
	darkRed := MustParseHex("#cc0000")
	blue := MustParseHex("#0000ff")

	got, dist, err := ClosestIn(MustParseHex("#ee0000"), []Color{blue, darkRed, red})
	if err != nil {
		t.Fatalf("ClosestIn() error = %v", err)
	}
	if got != red {
		t.Errorf("ClosestIn() = %s, want %s", got, red)
	}
	if want := Distance(MustParseHex("#ee0000"), red); dist != want {
		t.Errorf("ClosestIn() distance = %v, want %v", dist, want)
	}
}

func TestClosestInTiesPickFirst(t *testing.T) {
	first := MustParseHex("#123456")
	second := MustParseHex("#123456")
	other := MustParseHex("#ffffff")

	candidates := []Color{other, first, second}
	got, dist, err := ClosestIn(first, candidates)
	if err != nil {
		t.Fatalf("ClosestIn() error = %v", err)
	}
	if dist != 0 || got != candidates[1] {
		t.Errorf("ClosestIn() = (%s, %v), want first exact match", got, dist)
	}
}

func TestClosestInEmpty(t *testing.T) {
	_, _, err := ClosestIn(MustParseHex("#ffffff"), nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("ClosestIn(nil) error = %v, want ErrEmptyInput", err)
	}
}
