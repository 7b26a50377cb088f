package profile

import (
	"time"

	"github.com/planbiir/gpxprof/internal/geo"
	"github.com/planbiir/gpxprof/internal/gpx"
)

// Build walks the track in order and derives the cumulative-distance and
// velocity series. Cumulative distance accumulates across segment
// boundaries (it is total distance travelled), but no step distance or
// velocity is ever computed across one: each segment's first sample
// contributes zero step and carries SegmentStart.
//
// An empty track, or one whose segments are all empty, yields an empty
// profile rather than an error.
func Build(track *gpx.Track) Profile {
	p := Profile{Units: Metric}
	if track == nil {
		return p
	}

	start := trackStart(track)

	cumulative := 0.0
	for segIdx, seg := range track.Segments {
		var prev *gpx.Point
		for i := range seg.Points {
			pt := &seg.Points[i]

			s := Sample{
				Segment:      segIdx,
				SegmentStart: prev == nil,
			}

			if pt.Elevation != nil {
				ele := *pt.Elevation
				s.Elevation = &ele
			}
			if pt.Time != nil {
				ts := *pt.Time
				s.Time = &ts
				if start != nil {
					elapsed := ts.Sub(*start)
					s.Elapsed = &elapsed
				}
			}

			if prev != nil {
				step := geo.Distance(prev.Lat, prev.Lon, pt.Lat, pt.Lon)
				cumulative += step

				if prev.Time != nil && pt.Time != nil {
					// Timestamps are not validated for order, so a
					// negative velocity is possible here; only a zero
					// time delta suppresses the value.
					dt := pt.Time.Sub(*prev.Time).Seconds()
					if dt != 0 {
						vel := step / dt
						s.Velocity = &vel
					}
				}
			}
			s.Distance = cumulative

			p.Samples = append(p.Samples, s)
			prev = pt
		}
	}

	p.OriginalPoints = len(p.Samples)
	p.Points = len(p.Samples)
	return p
}

// trackStart returns the timestamp of the first point in the whole
// track that carries one, or nil when no point is timestamped.
func trackStart(track *gpx.Track) *time.Time {
	for _, seg := range track.Segments {
		for i := range seg.Points {
			if ts := seg.Points[i].Time; ts != nil {
				return ts
			}
		}
	}
	return nil
}
