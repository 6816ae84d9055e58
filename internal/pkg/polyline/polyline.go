// Package polyline implements Google's encoded polyline algorithm format:
// coordinates scaled to 5 decimal digits, delta-encoded, zig-zag signed,
// and written as chunks of 5-bit groups offset by 63.
package polyline

import "errors"

// ErrMalformed is returned when the character stream is not a valid
// encoding: a byte outside the printable chunk alphabet, or a chunk left
// unterminated at the end of input.
var ErrMalformed = errors.New("polyline: malformed encoding")

const precision = 1e5

// Decode converts an encoded polyline into (lat, lng) pairs.
func Decode(encoded string) ([][2]float64, error) {
	var points [][2]float64
	var lat, lng int64

	for i := 0; i < len(encoded); {
		dlat, n, err := decodeValue(encoded[i:])
		if err != nil {
			return nil, err
		}
		i += n

		if i >= len(encoded) {
			// Latitude without a matching longitude.
			return nil, ErrMalformed
		}
		dlng, n, err := decodeValue(encoded[i:])
		if err != nil {
			return nil, err
		}
		i += n

		lat += dlat
		lng += dlng
		points = append(points, [2]float64{float64(lat) / precision, float64(lng) / precision})
	}

	return points, nil
}

// PointCount scans the encoding and returns the number of coordinate pairs
// it holds, without allocating the decoded points. Each value's final chunk
// has its continuation bit clear, so counting terminators counts values.
// Malformed input is not detected here; Decode still owns that.
func PointCount(encoded string) int {
	values := 0
	for i := 0; i < len(encoded); i++ {
		if (encoded[i]-63)&0x20 == 0 {
			values++
		}
	}
	return (values + 1) / 2
}

// decodeValue reads one zig-zag encoded signed value and returns it with
// the number of bytes consumed.
func decodeValue(s string) (int64, int, error) {
	var result int64
	var shift uint
	for i := 0; i < len(s); i++ {
		b := int64(s[i]) - 63
		if b < 0 || b > 63 {
			return 0, 0, ErrMalformed
		}
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			value := result >> 1
			if result&1 != 0 {
				value = ^value
			}
			return value, i + 1, nil
		}
	}
	return 0, 0, ErrMalformed
}

// Encode converts (lat, lng) pairs into an encoded polyline.
func Encode(points [][2]float64) string {
	var out []byte
	var lat, lng int64

	for _, p := range points {
		ilat := round(p[0] * precision)
		ilng := round(p[1] * precision)
		out = encodeValue(out, ilat-lat)
		out = encodeValue(out, ilng-lng)
		lat, lng = ilat, ilng
	}

	return string(out)
}

func encodeValue(out []byte, v int64) []byte {
	u := v << 1
	if v < 0 {
		u = ^u
	}
	for u >= 0x20 {
		out = append(out, byte((0x20|(u&0x1f))+63))
		u >>= 5
	}
	return append(out, byte(u+63))
}

func round(f float64) int64 {
	if f < 0 {
		return int64(f - 0.5)
	}
	return int64(f + 0.5)
}
