package profile

import (
	"errors"
	"testing"
	"time"
)

func TestParseAxisAliases(t *testing.T) {
	cases := map[string]Axis{
		"t":         AxisTime,
		"time":      AxisTime,
		"d":         AxisDistance,
		"dist":      AxisDistance,
		"distance":  AxisDistance,
		"ele":       AxisElevation,
		"a":         AxisElevation,
		"alt":       AxisElevation,
		"altitude":  AxisElevation,
		"elevation": AxisElevation,
		"v":         AxisVelocity,
		"vel":       AxisVelocity,
		"velocity":  AxisVelocity,
		"Velocity":  AxisVelocity, // case-insensitive
	}

	for name, want := range cases {
		got, err := ParseAxis(name)
		if err != nil {
			t.Errorf("ParseAxis(%q) failed: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("ParseAxis(%q) = %s, want %s", name, got, want)
		}
	}

	if _, err := ParseAxis("speed"); err == nil {
		t.Error("ParseAxis must reject unknown names")
	}
}

func TestEnsureAxisMissingTimestamps(t *testing.T) {
	p := Profile{Units: Metric, Samples: []Sample{
		{Distance: 0, SegmentStart: true},
		{Distance: 100},
	}}

	for _, axis := range []Axis{AxisVelocity, AxisTime} {
		err := EnsureAxis(p, axis)
		if err == nil {
			t.Fatalf("EnsureAxis(%s) on untimed track must fail", axis)
		}
		var missing *MissingDataError
		if !errors.As(err, &missing) {
			t.Errorf("Expected *MissingDataError, got %T", err)
		} else if missing.Axis != axis {
			t.Errorf("MissingDataError axis = %s, want %s", missing.Axis, axis)
		}
	}

	// Distance is always derivable.
	if err := EnsureAxis(p, AxisDistance); err != nil {
		t.Errorf("EnsureAxis(distance) failed: %v", err)
	}
}

func TestEnsureAxisMissingElevation(t *testing.T) {
	ts := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	p := Profile{Units: Metric, Samples: []Sample{
		{Time: &ts, SegmentStart: true},
	}}

	if err := EnsureAxis(p, AxisElevation); err == nil {
		t.Error("EnsureAxis(elevation) must fail when no sample has elevation")
	}
	if err := EnsureAxis(p, AxisVelocity); err != nil {
		t.Errorf("One timestamp is enough for the velocity axis: %v", err)
	}
}

func TestEnsureAxisPartialDataPasses(t *testing.T) {
	ele := 1000.0
	p := Profile{Units: Metric, Samples: []Sample{
		{SegmentStart: true},
		{Elevation: &ele},
	}}

	if err := EnsureAxis(p, AxisElevation); err != nil {
		t.Errorf("A single sample with elevation must satisfy the axis: %v", err)
	}
}

func TestEnsureAxisEmptyProfile(t *testing.T) {
	p := Profile{Units: Metric}
	for _, axis := range []Axis{AxisTime, AxisDistance, AxisElevation, AxisVelocity} {
		if err := EnsureAxis(p, axis); err != nil {
			t.Errorf("Empty profile must pass EnsureAxis(%s), got %v", axis, err)
		}
	}
}
