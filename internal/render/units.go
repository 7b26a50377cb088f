// Package render formats derived profiles for the supported outputs:
// plain data table, gnuplot script, Google Chart URL and PNG chart.
// The profile pipeline never formats anything itself; everything
// display-related lives here.
package render

import "github.com/planbiir/gpxprof/internal/profile"

// Display units follow the original gpxplot table layout: metric
// profiles store SI values (m, m/s) and are shown as km / km/h, while
// imperial profiles already carry miles / mph / ft.

func distUnit(u profile.UnitSystem) string {
	if u == profile.Imperial {
		return "miles"
	}
	return "km"
}

func eleUnit(u profile.UnitSystem) string {
	if u == profile.Imperial {
		return "ft"
	}
	return "m"
}

func velUnit(u profile.UnitSystem) string {
	if u == profile.Imperial {
		return "miles/h"
	}
	return "km/h"
}

func displayDistance(u profile.UnitSystem, meters float64) float64 {
	if u == profile.Imperial {
		return meters // already miles
	}
	return meters / 1000
}

func displayVelocity(u profile.UnitSystem, mps float64) float64 {
	if u == profile.Imperial {
		return mps // already mph
	}
	return mps * 3.6
}
