package polyline_test

import (
	"math"
	"testing"

	"github.com/lurra-labs/elevate/internal/pkg/polyline"
)

// Reference encoding from Google's algorithm documentation.
const googleExample = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

var googlePoints = [][2]float64{
	{38.5, -120.2},
	{40.7, -120.95},
	{43.252, -126.453},
}

func TestDecode_GoogleExample(t *testing.T) {
	points, err := polyline.Decode(googleExample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	for i, want := range googlePoints {
		if math.Abs(points[i][0]-want[0]) > 1e-9 || math.Abs(points[i][1]-want[1]) > 1e-9 {
			t.Errorf("point %d: got %v, want %v", i, points[i], want)
		}
	}
}

func TestEncode_GoogleExample(t *testing.T) {
	if got := polyline.Encode(googlePoints); got != googleExample {
		t.Errorf("got %q, want %q", got, googleExample)
	}
}

func TestRoundTrip_DecodeThenEncode(t *testing.T) {
	// Re-encoding a decoded polyline must reproduce the original string.
	encodings := []string{
		googleExample,
		polyline.Encode([][2]float64{{0, 0}}),
		polyline.Encode([][2]float64{{-89.99999, 179.99999}, {89.99999, -179.99999}}),
	}
	for _, enc := range encodings {
		points, err := polyline.Decode(enc)
		if err != nil {
			t.Fatalf("decode %q: %v", enc, err)
		}
		if got := polyline.Encode(points); got != enc {
			t.Errorf("round trip of %q produced %q", enc, got)
		}
	}
}

func TestRoundTrip_EncodeThenDecode(t *testing.T) {
	points := [][2]float64{
		{-10, 120},
		{56.35, 123.89},
		{0.00001, -0.00001},
	}
	decoded, err := polyline.Decode(polyline.Encode(points))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decoded) != len(points) {
		t.Fatalf("expected %d points, got %d", len(points), len(decoded))
	}
	for i := range points {
		if math.Abs(decoded[i][0]-points[i][0]) > 1e-5 || math.Abs(decoded[i][1]-points[i][1]) > 1e-5 {
			t.Errorf("point %d: got %v, want %v", i, decoded[i], points[i])
		}
	}
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string]string{
		"byte below alphabet":  "_p~iF~ps|U !",
		"unterminated chunk":   "_p~iF~ps|U_ulL\x80",
		"latitude without lng": "_p~iF",
		"truncated value":      "~~~~~",
	}
	for name, input := range cases {
		if _, err := polyline.Decode(input); err == nil {
			t.Errorf("%s: expected error for %q", name, input)
		}
	}
}

func TestPointCount(t *testing.T) {
	if n := polyline.PointCount(googleExample); n != 3 {
		t.Errorf("expected 3, got %d", n)
	}
	if n := polyline.PointCount(""); n != 0 {
		t.Errorf("expected 0, got %d", n)
	}
	big := polyline.Encode(make([][2]float64, 500))
	if n := polyline.PointCount(big); n != 500 {
		t.Errorf("expected 500, got %d", n)
	}
}
