package render

import (
	"fmt"
	"image"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/planbiir/gpxprof/internal/profile"
)

// ChartOptions configures the PNG chart renderer. Zero values pick the
// defaults; OnSample, when set, is called once per sample so callers
// can drive a progress bar.
type ChartOptions struct {
	Width    int
	Height   int
	X        profile.Axis
	Y        profile.Axis
	OnSample func(done, total int)
}

const (
	defaultChartWidth  = 800
	defaultChartHeight = 600

	marginLeft   = 70.0
	marginRight  = 25.0
	marginTop    = 25.0
	marginBottom = 50.0

	axisTicks = 5
)

// chartPoint is one plottable sample projected onto the chosen axes.
type chartPoint struct {
	x, y     float64
	newTrace bool
}

// Chart renders the profile as a line chart. Samples missing a value
// for either axis are skipped; segment boundaries break the line. An
// empty projection still yields a frame with axes so the output file is
// always a valid image.
func Chart(p profile.Profile, opts ChartOptions) (image.Image, error) {
	if opts.Width <= 0 {
		opts.Width = defaultChartWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultChartHeight
	}

	fnt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing builtin font: %w", err)
	}
	labelFace := truetype.NewFace(fnt, &truetype.Options{Size: 13})
	tickFace := truetype.NewFace(fnt, &truetype.Options{Size: 11})

	pts := projectSamples(p, opts)

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	plotW := float64(opts.Width) - marginLeft - marginRight
	plotH := float64(opts.Height) - marginTop - marginBottom

	minX, maxX, minY, maxY := bounds(pts)

	toPx := func(pt chartPoint) (float64, float64) {
		px := marginLeft + (pt.x-minX)/(maxX-minX)*plotW
		py := marginTop + plotH - (pt.y-minY)/(maxY-minY)*plotH
		return px, py
	}

	// Grid and tick labels.
	dc.SetFontFace(tickFace)
	for i := 0; i <= axisTicks; i++ {
		frac := float64(i) / axisTicks

		gx := marginLeft + frac*plotW
		gy := marginTop + plotH - frac*plotH

		dc.SetRGB(0.88, 0.88, 0.88)
		dc.SetLineWidth(1)
		dc.DrawLine(gx, marginTop, gx, marginTop+plotH)
		dc.DrawLine(marginLeft, gy, marginLeft+plotW, gy)
		dc.Stroke()

		dc.SetRGB(0.25, 0.25, 0.25)
		dc.DrawStringAnchored(tickLabel(opts.X, minX+frac*(maxX-minX)),
			gx, marginTop+plotH+14, 0.5, 0.5)
		dc.DrawStringAnchored(tickLabel(opts.Y, minY+frac*(maxY-minY)),
			marginLeft-8, gy, 1, 0.5)
	}

	// Frame.
	dc.SetRGB(0.25, 0.25, 0.25)
	dc.SetLineWidth(1.5)
	dc.DrawLine(marginLeft, marginTop, marginLeft, marginTop+plotH)
	dc.DrawLine(marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH)
	dc.Stroke()

	// Axis labels.
	dc.SetFontFace(labelFace)
	dc.DrawStringAnchored(axisLabel(opts.X, p.Units),
		marginLeft+plotW/2, float64(opts.Height)-14, 0.5, 0.5)
	dc.Push()
	dc.RotateAbout(-math.Pi/2, 18, marginTop+plotH/2)
	dc.DrawStringAnchored(axisLabel(opts.Y, p.Units), 18, marginTop+plotH/2, 0.5, 0.5)
	dc.Pop()

	// One polyline per segment, same color as the chart URL output.
	dc.SetRGB(0x90/255.0, 0x90/255.0, 0xFF/255.0)
	dc.SetLineWidth(2)
	started := false
	for _, pt := range pts {
		px, py := toPx(pt)
		if pt.newTrace || !started {
			if started {
				dc.Stroke()
			}
			dc.MoveTo(px, py)
			started = true
			continue
		}
		dc.LineTo(px, py)
	}
	if started {
		dc.Stroke()
	}

	return dc.Image(), nil
}

// SaveChartPNG renders the chart and writes it to path. Only PNG output
// is supported here; other extensions are the gnuplot backend's job.
func SaveChartPNG(path string, p profile.Profile, opts ChartOptions) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext != "png" {
		return &UnsupportedFormatError{Ext: ext}
	}
	img, err := Chart(p, opts)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}

// projectSamples flattens the profile onto the requested axes, dropping
// samples that cannot supply both values.
func projectSamples(p profile.Profile, opts ChartOptions) []chartPoint {
	total := len(p.Samples)
	var pts []chartPoint
	pending := false
	for i, s := range p.Samples {
		if opts.OnSample != nil {
			opts.OnSample(i+1, total)
		}
		if s.SegmentStart {
			pending = true
		}
		xv, ok := axisValue(p.Units, s, opts.X)
		if !ok {
			continue
		}
		yv, ok := axisValue(p.Units, s, opts.Y)
		if !ok {
			continue
		}
		pts = append(pts, chartPoint{x: xv, y: yv, newTrace: pending})
		pending = false
	}
	return pts
}

// axisValue extracts a sample's display-unit value for an axis. The
// time axis plots elapsed seconds since track start.
func axisValue(u profile.UnitSystem, s profile.Sample, a profile.Axis) (float64, bool) {
	switch a {
	case profile.AxisTime:
		if s.Elapsed == nil {
			return 0, false
		}
		return s.Elapsed.Seconds(), true
	case profile.AxisDistance:
		return displayDistance(u, s.Distance), true
	case profile.AxisElevation:
		if s.Elevation == nil {
			return 0, false
		}
		return *s.Elevation, true
	case profile.AxisVelocity:
		if s.Velocity == nil {
			return 0, false
		}
		return displayVelocity(u, *s.Velocity), true
	}
	return 0, false
}

// bounds returns padded plot ranges that are never degenerate.
func bounds(pts []chartPoint) (minX, maxX, minY, maxY float64) {
	if len(pts) == 0 {
		return 0, 1, 0, 1
	}
	minX, maxX = pts[0].x, pts[0].x
	minY, maxY = pts[0].y, pts[0].y
	for _, pt := range pts[1:] {
		minX = math.Min(minX, pt.x)
		maxX = math.Max(maxX, pt.x)
		minY = math.Min(minY, pt.y)
		maxY = math.Max(maxY, pt.y)
	}
	if minX == maxX {
		minX, maxX = minX-0.5, maxX+0.5
	}
	if minY == maxY {
		minY, maxY = minY-0.5, maxY+0.5
	}
	return minX, maxX, minY, maxY
}

func tickLabel(a profile.Axis, v float64) string {
	if a == profile.AxisTime {
		d := time.Duration(v * float64(time.Second)).Round(time.Second)
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%.1f", v)
}
