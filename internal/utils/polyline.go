package utils

import (
	"errors"
	"fmt"

	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// ErrMalformedPolyline is returned when the input ends inside a value or
// contains a byte outside the encoding alphabet
var ErrMalformedPolyline = errors.New("malformed polyline")

const (
	polylineOffset    = 63
	polylineChunkMask = 0x1f
	polylineContinue  = 0x20
	polylineFactor    = 1e-5
	// 32 bits of payload is the most a coordinate delta can carry
	polylineMaxShift = 35
)

// DecodePolyline decodes an encoded polyline into its ordered points. The
// empty string decodes to no points.
func DecodePolyline(encoded string) ([]models.Coordinate, error) {
	points := make([]models.Coordinate, 0, len(encoded)/4)

	var lat, lng int64
	index := 0
	for index < len(encoded) {
		deltaLat, next, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		deltaLng, next, err := decodeValue(encoded, next)
		if err != nil {
			return nil, err
		}
		index = next

		lat += deltaLat
		lng += deltaLng
		points = append(points, models.Coordinate{
			Latitude:  float64(lat) * polylineFactor,
			Longitude: float64(lng) * polylineFactor,
		})
	}

	return points, nil
}

// decodeValue reads one zig-zag encoded delta starting at index
func decodeValue(encoded string, index int) (int64, int, error) {
	var result int64
	shift := uint(0)

	for {
		if index >= len(encoded) {
			return 0, index, fmt.Errorf("%w: input ends mid-value at byte %d", ErrMalformedPolyline, index)
		}
		c := encoded[index]
		if c < polylineOffset || c > polylineOffset+0x3f {
			return 0, index, fmt.Errorf("%w: invalid byte %q at %d", ErrMalformedPolyline, c, index)
		}
		index++

		b := int64(c) - polylineOffset
		result |= (b & polylineChunkMask) << shift
		shift += 5

		if b < polylineContinue {
			break
		}
		if shift > polylineMaxShift {
			return 0, index, fmt.Errorf("%w: value too long at byte %d", ErrMalformedPolyline, index)
		}
	}

	if result&1 != 0 {
		return ^(result >> 1), index, nil
	}
	return result >> 1, index, nil
}
