// Package gpx ingests GPX documents into the normalized track model
// consumed by the profile pipeline.
package gpx

import "time"

// Point is a single track fix. Elevation and Time are nil when the
// source omits them; consumers must branch on presence instead of
// treating zero as data.
type Point struct {
	Lat       float64
	Lon       float64
	Elevation *float64
	Time      *time.Time
}

// Segment is one continuous recording run. No distance or velocity is
// ever derived across a segment boundary.
type Segment struct {
	Points []Point
}

// Track is an ordered sequence of segments, in recording order.
type Track struct {
	Segments []Segment
}

// PointCount returns the total number of points across all segments.
func (t *Track) PointCount() int {
	n := 0
	for _, seg := range t.Segments {
		n += len(seg.Points)
	}
	return n
}

// ParseError reports malformed GPX input. It wraps the decoder error,
// which carries the offending line for XML syntax problems.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "malformed GPX: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
