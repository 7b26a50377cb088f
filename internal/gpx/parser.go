package gpx

import (
	"fmt"
	"io"
	"os"

	gogpx "github.com/tkrajina/gpxgo/gpx"
)

// Parse converts raw GPX bytes into a Track. Tracks without a single
// <trkseg> fall back to route points (<rte>/<rtept>), one segment per
// route. An input with no points at all yields a track with zero
// segments, which downstream stages treat as an empty profile.
func Parse(data []byte) (*Track, error) {
	doc, err := gogpx.ParseBytes(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return fromDocument(doc), nil
}

// ParseReader reads all input and parses it as GPX.
func ParseReader(r io.Reader) (*Track, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read GPX input: %w", err)
	}
	return Parse(data)
}

// ParseFile opens and parses a GPX file.
func ParseFile(filename string) (*Track, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read GPX file: %w", err)
	}
	return Parse(data)
}

func fromDocument(doc *gogpx.GPX) *Track {
	track := &Track{}

	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			track.Segments = append(track.Segments, convertPoints(seg.Points))
		}
	}

	// Planned-route files carry <rte> instead of <trk>; fall back to
	// route points when the file has no track segments at all.
	if len(track.Segments) == 0 {
		for _, rte := range doc.Routes {
			track.Segments = append(track.Segments, convertPoints(rte.Points))
		}
	}

	return track
}

func convertPoints(pts []gogpx.GPXPoint) Segment {
	seg := Segment{Points: make([]Point, 0, len(pts))}
	for _, p := range pts {
		pt := Point{Lat: p.Latitude, Lon: p.Longitude}
		if p.Elevation.NotNull() {
			ele := p.Elevation.Value()
			pt.Elevation = &ele
		}
		if !p.Timestamp.IsZero() {
			ts := p.Timestamp
			pt.Time = &ts
		}
		seg.Points = append(seg.Points, pt)
	}
	return seg
}
