// Package profile derives distance/velocity series from parsed tracks
// and applies the resampling and unit conversion stages of the pipeline.
package profile

import "time"

// UnitSystem selects the measurement system of a Profile's values.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

// Fixed conversion constants; there is no per-track calibration.
const (
	milesPerMeter = 0.000621371192
	feetPerMeter  = 3.2808399
	mphPerMps     = 2.2369362912 // 3600 * milesPerMeter
)

// Sample is one derived profile record. Elapsed, Elevation and Velocity
// are nil when the source data cannot support them; they are never
// defaulted to zero.
type Sample struct {
	Time         *time.Time
	Elapsed      *time.Duration
	Distance     float64
	Elevation    *float64
	Velocity     *float64
	Segment      int
	SegmentStart bool
}

// Profile is the ordered sample series for a track plus metadata about
// the transforms applied to it.
type Profile struct {
	Samples []Sample
	Units   UnitSystem
	// Timezone is the IANA name the timestamps were shifted to, empty
	// when they were left in their source zone.
	Timezone string
	// OriginalPoints is the sample count before resampling; Points is
	// the current count.
	OriginalPoints int
	Points         int
}

// TotalDistance returns the cumulative distance of the last sample, in
// the profile's distance unit.
func (p Profile) TotalDistance() float64 {
	if len(p.Samples) == 0 {
		return 0
	}
	return p.Samples[len(p.Samples)-1].Distance
}

// Duration returns the elapsed time covered by the samples, or false
// when the track carries no timestamps.
func (p Profile) Duration() (time.Duration, bool) {
	var first, last *time.Duration
	for i := range p.Samples {
		if e := p.Samples[i].Elapsed; e != nil {
			if first == nil {
				first = e
			}
			last = e
		}
	}
	if first == nil {
		return 0, false
	}
	return *last - *first, true
}

// SegmentCount returns the number of distinct segments represented in
// the samples.
func (p Profile) SegmentCount() int {
	n := 0
	for _, s := range p.Samples {
		if s.SegmentStart {
			n++
		}
	}
	return n
}
