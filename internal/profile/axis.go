package profile

import (
	"fmt"
	"strings"
)

// Axis identifies a plottable profile variable.
type Axis int

const (
	AxisTime Axis = iota
	AxisDistance
	AxisElevation
	AxisVelocity
)

func (a Axis) String() string {
	switch a {
	case AxisTime:
		return "time"
	case AxisDistance:
		return "distance"
	case AxisElevation:
		return "elevation"
	case AxisVelocity:
		return "velocity"
	}
	return "unknown"
}

var axisNames = map[string]Axis{
	"t":         AxisTime,
	"time":      AxisTime,
	"d":         AxisDistance,
	"dist":      AxisDistance,
	"distance":  AxisDistance,
	"ele":       AxisElevation,
	"elevation": AxisElevation,
	"a":         AxisElevation,
	"alt":       AxisElevation,
	"altitude":  AxisElevation,
	"v":         AxisVelocity,
	"vel":       AxisVelocity,
	"velocity":  AxisVelocity,
}

// ParseAxis resolves an axis name or one of its short aliases.
func ParseAxis(name string) (Axis, error) {
	a, ok := axisNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown axis variable %q", name)
	}
	return a, nil
}

// MissingDataError reports that a requested axis has no supporting data
// anywhere in the track.
type MissingDataError struct {
	Axis Axis
}

func (e *MissingDataError) Error() string {
	switch e.Axis {
	case AxisTime, AxisVelocity:
		return fmt.Sprintf("%s profile requested but the track has no timestamps", e.Axis)
	case AxisElevation:
		return "elevation profile requested but the track has no elevation data"
	}
	return fmt.Sprintf("track has no %s data", e.Axis)
}

// EnsureAxis fails fast when the profile cannot supply the requested
// axis at all. Per-sample gaps are tolerated downstream; a track-wide
// absence is reported before any output is produced. An empty profile
// passes: there is nothing to render, but nothing is missing either.
func EnsureAxis(p Profile, axis Axis) error {
	if len(p.Samples) == 0 || axis == AxisDistance {
		return nil
	}

	for i := range p.Samples {
		s := &p.Samples[i]
		switch axis {
		case AxisElevation:
			if s.Elevation != nil {
				return nil
			}
		case AxisTime, AxisVelocity:
			// Velocity derives from timestamps, so either axis only
			// needs one timestamped point to be structurally available.
			if s.Time != nil {
				return nil
			}
		}
	}

	return &MissingDataError{Axis: axis}
}
