// Package geo holds the geodesic helpers used for stop proximity and target areas.
//
// Points are orb.Point values in [longitude, latitude] order. A coordinate that is
// NaN or infinite is treated as missing, and any distance involving it is Undefined.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusMeters is the mean Earth radius used by DistanceMeters.
const EarthRadiusMeters = 6371000.0

// Undefined is the distance reported when either point has a missing coordinate.
// It compares greater than every finite radius, so it never matches.
var Undefined = math.Inf(1)

// Circle is a center with an optional radius in meters.
type Circle struct {
	Center orb.Point
	Radius *float64
}

// Missing returns a point whose coordinates are both missing.
func Missing() orb.Point {
	return orb.Point{math.NaN(), math.NaN()}
}

// Valid reports whether both coordinates of p are finite numbers.
func Valid(p orb.Point) bool {
	return isFinite(p[0]) && isFinite(p[1])
}

// DistanceMeters returns the haversine distance between a and b.
func DistanceMeters(a, b orb.Point) float64 {
	if !Valid(a) || !Valid(b) {
		return Undefined
	}

	lat1 := a.Lat() * math.Pi / 180
	lon1 := a.Lon() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	lon2 := b.Lon() * math.Pi / 180

	deltaLat := lat2 - lat1
	deltaLon := lon2 - lon1

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// IsWithinRadius reports whether point lies within radiusMeters of center.
func IsWithinRadius(point, center orb.Point, radiusMeters float64) bool {
	if math.IsNaN(radiusMeters) {
		return false
	}

	return DistanceMeters(point, center) <= radiusMeters
}

// IsWithinAnyRadius reports whether point lies inside at least one circle.
// Circles without a radius never match.
func IsWithinAnyRadius(point orb.Point, circles []Circle) bool {
	for _, circle := range circles {
		if circle.Radius == nil {
			continue
		}
		if IsWithinRadius(point, circle.Center, *circle.Radius) {
			return true
		}
	}

	return false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
