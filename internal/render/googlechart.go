package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/planbiir/gpxprof/internal/profile"
)

// Google Charts extended encoding, two characters per value in the
// range 0..4095.
const extAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-."

const chartURLLimit = 2048

func extEncode(v int) string {
	v %= 4096
	if v < 0 {
		v += 4096
	}
	n := len(extAlphabet)
	return string(extAlphabet[v/n]) + string(extAlphabet[v%n])
}

// GoogleChartURL builds a static chart URL for the distance-elevation
// profile. Only that axis pair is supported; other combinations and
// tracks without usable samples are rejected. URLs that exceed the
// Google Charts length limit fail with a hint to resample first.
func GoogleChartURL(p profile.Profile, x, y profile.Axis) (string, error) {
	if x != profile.AxisDistance || y != profile.AxisElevation {
		return "", errors.New("only distance-elevation profiles are supported in chart URL mode")
	}
	if len(p.Samples) == 0 {
		return "", errors.New("parsed track is empty")
	}

	// Segments of display-unit (x, y) pairs; samples without elevation
	// cannot be plotted and are skipped.
	var segs [][][2]float64
	for _, s := range p.Samples {
		if s.SegmentStart || len(segs) == 0 {
			segs = append(segs, nil)
		}
		if s.Elevation == nil {
			continue
		}
		last := len(segs) - 1
		segs[last] = append(segs[last], [2]float64{
			displayDistance(p.Units, s.Distance),
			*s.Elevation,
		})
	}

	minX, maxX := 0.0, 0.0
	var minY, maxY float64
	seen := false
	for _, seg := range segs {
		for _, pt := range seg {
			if !seen {
				minY, maxY = pt[1], pt[1]
				seen = true
			}
			if pt[0] > maxX {
				maxX = pt[0]
			}
			if pt[1] < minY {
				minY = pt[1]
			}
			if pt[1] > maxY {
				maxY = pt[1]
			}
		}
	}
	if !seen {
		return "", errors.New("track has no elevation data to chart")
	}

	xenc := func(v float64) string {
		if maxX == minX {
			return extEncode(0)
		}
		return extEncode(int((v - minX) * 4095 / (maxX - minX)))
	}
	yenc := func(v float64) string {
		if maxY == minY {
			return extEncode(0)
		}
		return extEncode(int((v - minY) * 4095 / (maxY - minY)))
	}

	var series []string
	for _, seg := range segs {
		if len(seg) == 0 {
			continue
		}
		var xs, ys strings.Builder
		for _, pt := range seg {
			xs.WriteString(xenc(pt[0]))
			ys.WriteString(yenc(pt[1]))
		}
		series = append(series, xs.String()+","+ys.String())
	}

	var b strings.Builder
	b.WriteString("http://chart.apis.google.com/chart?chtt=gpxprof&chts=cccccc,9&")
	b.WriteString("chs=600x400&chco=9090FF&cht=lxy&chxt=x,y,x,y&chxp=2,100|3,100&")
	fmt.Fprintf(&b, "chxl=2:|distance, %s|3:|elevation, %s|", distUnit(p.Units), eleUnit(p.Units))
	fmt.Fprintf(&b, "&chxr=0,0,%d|1,%d,%d", int(maxX), int(minY), int(maxY))
	b.WriteString("&chd=e:")
	b.WriteString(strings.Join(series, ","))

	url := b.String()
	if len(url) > chartURLLimit {
		return "", fmt.Errorf("chart URL is %d bytes, over the %d limit; reduce the number of points with -n", len(url), chartURLLimit)
	}
	return url, nil
}
