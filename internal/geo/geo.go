// Package geo provides great-circle math on a spherical Earth.
package geo

import "math"

// EarthRadius is the mean Earth radius in meters used for all distance
// calculations.
const EarthRadius = 6371000.0

// Distance calculates the great-circle distance in meters between two
// lat/lon pairs (degrees) using the haversine formula. Elevation is
// ignored; this is horizontal distance only.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLatRad := (lat2 - lat1) * math.Pi / 180
	deltaLonRad := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLatRad/2)*math.Sin(deltaLatRad/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLonRad/2)*math.Sin(deltaLonRad/2)

	// Floating-point overshoot can push a slightly outside [0,1] for
	// antipodal points, which would make the square roots below NaN.
	if a > 1 {
		a = 1
	} else if a < 0 {
		a = 0
	}

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * c
}

// Bearing calculates the initial bearing in degrees from the first point
// to the second using spherical trigonometry. The result is normalized
// to [0, 360).
func Bearing(lat1, lon1, lat2, lon2 float64) float64 {
	φ1 := lat1 * math.Pi / 180
	φ2 := lat2 * math.Pi / 180
	λ1 := lon1 * math.Pi / 180
	λ2 := lon2 * math.Pi / 180

	y := math.Sin(λ2-λ1) * math.Cos(φ2)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(λ2-λ1)

	θ := math.Atan2(y, x)
	return math.Mod((θ*180/math.Pi)+360, 360)
}
