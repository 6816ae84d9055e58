package usecases_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/lurra-labs/elevate/internal/core/domain"
	"github.com/lurra-labs/elevate/internal/core/usecases"
	"github.com/lurra-labs/elevate/internal/pkg/polyline"
)

func TestParseLocations_DelimitedPairs(t *testing.T) {
	points, err := usecases.ParseLocations("40.714,-74.006|56.35,123.89|-10,120", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []domain.GeoPoint{
		{Lat: 40.714, Lng: -74.006},
		{Lat: 56.35, Lng: 123.89},
		{Lat: -10, Lng: 120},
	}
	if len(points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(points))
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("point %d: got %v, want %v", i, points[i], want[i])
		}
	}
}

func TestParseLocations_SinglePair(t *testing.T) {
	points, err := usecases.ParseLocations("40.7,-74.0", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 || points[0] != (domain.GeoPoint{Lat: 40.7, Lng: -74.0}) {
		t.Errorf("got %v", points)
	}
}

func TestParseLocations_SurroundingPipes(t *testing.T) {
	points, err := usecases.ParseLocations("|40.7,-74.0|", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 {
		t.Errorf("expected 1 point, got %d", len(points))
	}
}

func TestParseLocations_Empty(t *testing.T) {
	_, err := usecases.ParseLocations("", 100)
	var empty *domain.EmptyLocationsError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyLocationsError, got %v", err)
	}
	if !strings.Contains(err.Error(), "No locations provided") {
		t.Errorf("unexpected message: %q", err)
	}
}

func TestParseLocations_BatchLimit(t *testing.T) {
	segments := make([]string, 0, 11)
	for i := 0; i < 11; i++ {
		segments = append(segments, "1,2")
	}

	// Exactly at the ceiling succeeds.
	points, err := usecases.ParseLocations(strings.Join(segments[:10], "|"), 10)
	if err != nil {
		t.Fatalf("unexpected error at limit: %v", err)
	}
	if len(points) != 10 {
		t.Fatalf("expected 10 points, got %d", len(points))
	}

	// One over fails, citing both the count and the limit.
	_, err = usecases.ParseLocations(strings.Join(segments, "|"), 10)
	var tooMany *domain.TooManyLocationsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("expected TooManyLocationsError, got %v", err)
	}
	if tooMany.Count != 11 || tooMany.Limit != 10 {
		t.Errorf("got count=%d limit=%d", tooMany.Count, tooMany.Limit)
	}
	if !strings.Contains(err.Error(), "(11)") || !strings.Contains(err.Error(), "limit is 10") {
		t.Errorf("unexpected message: %q", err)
	}
}

func TestParseLocations_LatitudeBounds(t *testing.T) {
	for _, ok := range []string{"90,0", "-90,0", "0,180", "0,-180"} {
		if _, err := usecases.ParseLocations(ok, 100); err != nil {
			t.Errorf("%q: unexpected error: %v", ok, err)
		}
	}

	_, err := usecases.ParseLocations("90.0001,0", 100)
	var oor *domain.OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}
	if !oor.Latitude {
		t.Error("expected latitude violation")
	}
	if !strings.Contains(err.Error(), "Latitude must be between -90 and 90") {
		t.Errorf("unexpected message: %q", err)
	}
	if !strings.Contains(err.Error(), "lat,lon order") {
		t.Errorf("message should hint at lat,lon ordering: %q", err)
	}
}

func TestParseLocations_LongitudeBounds(t *testing.T) {
	_, err := usecases.ParseLocations("0,180.1", 100)
	var oor *domain.OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}
	if oor.Latitude {
		t.Error("expected longitude violation")
	}
	if !strings.Contains(err.Error(), "Longitude must be between -180 and 180") {
		t.Errorf("unexpected message: %q", err)
	}
}

func TestParseLocations_LatOutOfRangeCitesLatitude(t *testing.T) {
	// "200,50" violates latitude, not longitude.
	_, err := usecases.ParseLocations("200,50", 100)
	var oor *domain.OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}
	if !oor.Latitude {
		t.Error("expected the latitude bound to be cited")
	}
}

func TestParseLocations_MissingComma(t *testing.T) {
	// First segment has no comma; the error must cite position 1.
	_, err := usecases.ParseLocations("40.7|-74.0,1", 100)
	var seg *domain.SegmentFormatError
	if !errors.As(err, &seg) {
		t.Fatalf("expected SegmentFormatError, got %v", err)
	}
	if seg.Position != 1 {
		t.Errorf("expected position 1, got %d", seg.Position)
	}
	if !strings.Contains(err.Error(), "position 1") {
		t.Errorf("unexpected message: %q", err)
	}
}

func TestParseLocations_NonNumericSegment(t *testing.T) {
	_, err := usecases.ParseLocations("1,2|abc,def", 100)
	var seg *domain.SegmentFormatError
	if !errors.As(err, &seg) {
		t.Fatalf("expected SegmentFormatError, got %v", err)
	}
	if seg.Position != 2 {
		t.Errorf("expected position 2, got %d", seg.Position)
	}
}

func TestParseLocations_ExtraCommaInLongitude(t *testing.T) {
	// Only the first comma separates lat from lon; the rest of the
	// segment must still parse as one float.
	_, err := usecases.ParseLocations("1,2,3", 100)
	var seg *domain.SegmentFormatError
	if !errors.As(err, &seg) {
		t.Fatalf("expected SegmentFormatError, got %v", err)
	}
}

func TestParseLocations_Polyline(t *testing.T) {
	encoded := polyline.Encode([][2]float64{{-10, 120}, {56.35, 123.89}})

	for _, raw := range []string{encoded, "enc:" + encoded} {
		points, err := usecases.ParseLocations(raw, 100)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", raw, err)
		}
		if len(points) != 2 {
			t.Fatalf("expected 2 points, got %d", len(points))
		}
		if points[0].Lat != -10 || points[0].Lng != 120 {
			t.Errorf("first point: %v", points[0])
		}
	}
}

func TestParseLocations_PolylineTooMany(t *testing.T) {
	coords := make([][2]float64, 11)
	for i := range coords {
		coords[i] = [2]float64{float64(i), float64(i)}
	}
	_, err := usecases.ParseLocations(polyline.Encode(coords), 10)
	var tooMany *domain.TooManyLocationsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("expected TooManyLocationsError, got %v", err)
	}
	if tooMany.Count != 11 || tooMany.Limit != 10 {
		t.Errorf("got count=%d limit=%d", tooMany.Count, tooMany.Limit)
	}
}

func TestParseLocations_PolylineGarbage(t *testing.T) {
	// No comma, so the polyline branch handles it; the bang is outside
	// the encoding alphabet.
	_, err := usecases.ParseLocations("not a polyline!", 100)
	var dec *domain.PolylineDecodeError
	if !errors.As(err, &dec) {
		t.Fatalf("expected PolylineDecodeError, got %v", err)
	}
	if !strings.Contains(err.Error(), "polyline") {
		t.Errorf("unexpected message: %q", err)
	}
}

func TestParseLocations_PolylineOutOfRange(t *testing.T) {
	// A structurally valid polyline can still encode impossible
	// coordinates; both input forms enforce the same bounds.
	_, err := usecases.ParseLocations(polyline.Encode([][2]float64{{95, 0}}), 100)
	var oor *domain.OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}
	if !oor.Latitude {
		t.Error("expected latitude violation")
	}
}

func TestParseLocations_PolylinePrefixOnly(t *testing.T) {
	_, err := usecases.ParseLocations("enc:", 100)
	var empty *domain.EmptyLocationsError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyLocationsError, got %v", err)
	}
}
