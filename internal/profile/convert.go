package profile

import "time"

// Convert produces a copy of the profile in the target unit system with
// timestamps shifted to loc (nil keeps the source zone). Metric values
// are SI (meters, m/s); imperial scales distance to miles, velocity to
// miles/h and elevation to feet. Absent values stay absent.
//
// This stage is a pure value remap: sample count, ordering and
// segment-start flags are untouched, and the input is never mutated.
func Convert(p Profile, units UnitSystem, loc *time.Location) Profile {
	distScale, eleScale, velScale := 1.0, 1.0, 1.0
	switch {
	case p.Units == Metric && units == Imperial:
		distScale, eleScale, velScale = milesPerMeter, feetPerMeter, mphPerMps
	case p.Units == Imperial && units == Metric:
		distScale, eleScale, velScale = 1/milesPerMeter, 1/feetPerMeter, 1/mphPerMps
	}

	out := p
	out.Units = units
	if loc != nil {
		out.Timezone = loc.String()
	}

	out.Samples = make([]Sample, len(p.Samples))
	for i, s := range p.Samples {
		c := s
		c.Distance = s.Distance * distScale
		if s.Elevation != nil {
			ele := *s.Elevation * eleScale
			c.Elevation = &ele
		}
		if s.Velocity != nil {
			vel := *s.Velocity * velScale
			c.Velocity = &vel
		}
		if s.Time != nil {
			ts := *s.Time
			if loc != nil {
				ts = ts.In(loc)
			}
			c.Time = &ts
		}
		if s.Elapsed != nil {
			elapsed := *s.Elapsed
			c.Elapsed = &elapsed
		}
		out.Samples[i] = c
	}
	return out
}
