package profile

import (
	"errors"
	"fmt"
)

// ErrInvalidTarget reports a non-positive resample target.
var ErrInvalidTarget = errors.New("resample target must be positive")

// Resample decimates the profile to approximately target samples by
// keeping every stride-th sample. The first sample, the final sample
// and every segment-start sample always survive — continuity markers
// are never lost — so the result may slightly exceed the target. No
// interpolation or smoothing is performed.
//
// A target at or above the current count returns the profile unchanged.
// The input is never mutated.
func Resample(p Profile, target int) (Profile, error) {
	if target <= 0 {
		return Profile{}, fmt.Errorf("%w, got %d", ErrInvalidTarget, target)
	}

	total := len(p.Samples)
	if target >= total {
		return p, nil
	}

	stride := (total + target - 1) / target // ceil(total/target)

	out := p
	out.Samples = make([]Sample, 0, target+p.SegmentCount())
	for i, s := range p.Samples {
		if i%stride == 0 || s.SegmentStart || i == total-1 {
			out.Samples = append(out.Samples, s)
		}
	}
	out.Points = len(out.Samples)
	return out, nil
}
