package domain

// Geographic bounds for WGS 84 coordinates.
const (
	LatMin = -90.0
	LatMax = 90.0
	LonMin = -180.0
	LonMax = 180.0
)

// GeoPoint represents a geographic coordinate (WGS 84).
// The JSON field names match the wire format of the elevation response.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LatInBounds reports whether a latitude is within [-90, 90].
func LatInBounds(lat float64) bool {
	return lat >= LatMin && lat <= LatMax
}

// LonInBounds reports whether a longitude is within [-180, 180].
func LonInBounds(lon float64) bool {
	return lon >= LonMin && lon <= LonMax
}

// Result pairs an elevation value with the point it was computed for.
// Elevation is nil when the dataset holds no data at the point.
type Result struct {
	Elevation *float64 `json:"elevation"`
	Location  GeoPoint `json:"location"`
}
