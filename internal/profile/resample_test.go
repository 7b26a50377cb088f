package profile

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// syntheticProfile builds a metric profile with count samples split into
// the given segment lengths.
func syntheticProfile(segLens ...int) Profile {
	p := Profile{Units: Metric}
	dist := 0.0
	for segIdx, n := range segLens {
		for i := 0; i < n; i++ {
			if i > 0 {
				dist += 10
			}
			p.Samples = append(p.Samples, Sample{
				Distance:     dist,
				Segment:      segIdx,
				SegmentStart: i == 0,
			})
		}
	}
	p.OriginalPoints = len(p.Samples)
	p.Points = len(p.Samples)
	return p
}

func TestResampleInvalidTarget(t *testing.T) {
	p := syntheticProfile(10)

	for _, target := range []int{0, -1, -100} {
		if _, err := Resample(p, target); !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("Resample(%d): expected ErrInvalidTarget, got %v", target, err)
		}
	}
}

func TestResampleIdentityWhenTargetCoversInput(t *testing.T) {
	p := syntheticProfile(5, 5)

	for _, target := range []int{10, 11, 1000} {
		out, err := Resample(p, target)
		if err != nil {
			t.Fatalf("Resample(%d) failed: %v", target, err)
		}
		if diff := cmp.Diff(p, out); diff != "" {
			t.Errorf("Resample(%d) changed the profile (-want +got):\n%s", target, diff)
		}
	}
}

func TestResampleDecimates(t *testing.T) {
	p := syntheticProfile(100)

	out, err := Resample(p, 10)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}

	if len(out.Samples) > len(p.Samples) {
		t.Error("Resample must never grow the series")
	}
	// stride = ceil(100/10) = 10; every 10th plus the final sample.
	if len(out.Samples) < 10 || len(out.Samples) > 11 {
		t.Errorf("Expected ~10 samples, got %d", len(out.Samples))
	}

	first := out.Samples[0]
	last := out.Samples[len(out.Samples)-1]
	if first.Distance != p.Samples[0].Distance {
		t.Error("First sample was dropped")
	}
	if last.Distance != p.Samples[len(p.Samples)-1].Distance {
		t.Error("Final sample was dropped")
	}

	if out.OriginalPoints != 100 || out.Points != len(out.Samples) {
		t.Errorf("Metadata counts wrong: original=%d points=%d", out.OriginalPoints, out.Points)
	}
	if p.Points != 100 {
		t.Error("Resample mutated its input")
	}
}

func TestResampleKeepsSegmentStarts(t *testing.T) {
	// Segment boundaries fall between strides on purpose.
	p := syntheticProfile(37, 41, 22)

	out, err := Resample(p, 8)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}

	starts := 0
	for _, s := range out.Samples {
		if s.SegmentStart {
			starts++
		}
	}
	if starts != 3 {
		t.Errorf("Expected all 3 segment-start samples retained, got %d", starts)
	}

	// Order must be preserved.
	for i := 1; i < len(out.Samples); i++ {
		if out.Samples[i].Distance < out.Samples[i-1].Distance {
			t.Fatalf("Sample order broken at %d", i)
		}
	}
}

func TestResampleEmptyProfile(t *testing.T) {
	out, err := Resample(Profile{Units: Metric}, 10)
	if err != nil {
		t.Fatalf("Resample of empty profile failed: %v", err)
	}
	if len(out.Samples) != 0 {
		t.Errorf("Expected empty output, got %d samples", len(out.Samples))
	}
}
