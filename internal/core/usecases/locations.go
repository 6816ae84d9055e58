package usecases

import (
	"strconv"
	"strings"

	"github.com/lurra-labs/elevate/internal/core/domain"
	"github.com/lurra-labs/elevate/internal/pkg/polyline"
)

// polylinePrefix is prepended to encoded polylines by the Google Maps API
// and by several export tools; it is accepted and stripped.
const polylinePrefix = "enc:"

// ParseLocations decodes the locations query argument into an ordered batch
// of points. Two encodings are accepted: "lat,lon" pairs delimited by "|",
// or a single Google-format encoded polyline, optionally prefixed "enc:".
//
// Dispatch is structural: a comma can only appear in the delimited form,
// since the polyline alphabet starts above it. A string with no comma is
// decoded as a polyline even if it was intended as something else, so the
// error for garbage input is always the polyline one.
func ParseLocations(raw string, maxN int) ([]domain.GeoPoint, error) {
	if raw == "" {
		return nil, &domain.EmptyLocationsError{}
	}
	if strings.Contains(raw, ",") {
		return parseLatLonPairs(raw, maxN)
	}
	return parsePolyline(raw, maxN)
}

// parseLatLonPairs handles the "lat1,lon1|lat2,lon2" form. The size ceiling
// is enforced on the segment count before any per-segment work.
func parseLatLonPairs(raw string, maxN int) ([]domain.GeoPoint, error) {
	segments := strings.Split(strings.Trim(raw, "|"), "|")
	if len(segments) > maxN {
		return nil, &domain.TooManyLocationsError{Count: len(segments), Limit: maxN}
	}

	points := make([]domain.GeoPoint, 0, len(segments))
	for i, seg := range segments {
		pos := i + 1

		latPart, lonPart, found := strings.Cut(seg, ",")
		if !found {
			return nil, &domain.SegmentFormatError{Position: pos, Segment: seg, MissingComma: true}
		}

		lat, err := strconv.ParseFloat(latPart, 64)
		if err != nil {
			return nil, &domain.SegmentFormatError{Position: pos, Segment: seg}
		}
		lon, err := strconv.ParseFloat(lonPart, 64)
		if err != nil {
			return nil, &domain.SegmentFormatError{Position: pos, Segment: seg}
		}

		if err := checkBounds(lat, lon, pos, seg); err != nil {
			return nil, err
		}
		points = append(points, domain.GeoPoint{Lat: lat, Lng: lon})
	}

	return points, nil
}

// parsePolyline handles the encoded-polyline form. The size ceiling is
// checked with a cheap pre-scan so an oversized input is rejected before
// the decode allocates anything.
func parsePolyline(raw string, maxN int) ([]domain.GeoPoint, error) {
	encoded := strings.TrimPrefix(raw, polylinePrefix)

	if n := polyline.PointCount(encoded); n > maxN {
		return nil, &domain.TooManyLocationsError{Count: n, Limit: maxN}
	}

	pairs, err := polyline.Decode(encoded)
	if err != nil {
		return nil, &domain.PolylineDecodeError{}
	}
	if len(pairs) == 0 {
		return nil, &domain.EmptyLocationsError{}
	}

	points := make([]domain.GeoPoint, 0, len(pairs))
	for i, p := range pairs {
		// Decoded values are numeric by construction but can still exceed
		// geographic bounds if the encoder was misused; both input forms
		// enforce the same bounds.
		raw := strconv.FormatFloat(p[0], 'f', -1, 64) + "," + strconv.FormatFloat(p[1], 'f', -1, 64)
		if err := checkBounds(p[0], p[1], i+1, raw); err != nil {
			return nil, err
		}
		points = append(points, domain.GeoPoint{Lat: p[0], Lng: p[1]})
	}

	return points, nil
}

// checkBounds validates a coordinate pair against geographic bounds.
// pos is the 1-based position in the batch, raw the client's text for it.
func checkBounds(lat, lon float64, pos int, raw string) error {
	if !domain.LatInBounds(lat) {
		return &domain.OutOfRangeError{
			Position: pos, Raw: raw, Latitude: true,
			Min: domain.LatMin, Max: domain.LatMax,
		}
	}
	if !domain.LonInBounds(lon) {
		return &domain.OutOfRangeError{
			Position: pos, Raw: raw,
			Min: domain.LonMin, Max: domain.LonMax,
		}
	}
	return nil
}
