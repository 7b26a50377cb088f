package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/planbiir/gpxprof/internal/profile"
)

// timeLayout matches the gnuplot timefmt used in the generated scripts.
const timeLayout = "2006-01-02T15:04:05"

// Table writes the profile as space-separated columns in the order
// time, elevation, distance, velocity, with a blank line between
// segments so plotting tools treat them as separate lines. Absent
// values print as "-"; an empty profile prints the header only.
func Table(w io.Writer, p profile.Profile) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# time(ISO) elevation(%s) distance(%s) velocity(%s)\n",
		eleUnit(p.Units), distUnit(p.Units), velUnit(p.Units))

	for i, s := range p.Samples {
		if s.SegmentStart && i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "%s %s %f %s\n",
			timeColumn(s),
			eleColumn(s),
			displayDistance(p.Units, s.Distance),
			velColumn(p.Units, s))
	}

	return bw.Flush()
}

func timeColumn(s profile.Sample) string {
	if s.Time == nil {
		return "-"
	}
	return s.Time.Format(timeLayout)
}

func eleColumn(s profile.Sample) string {
	if s.Elevation == nil {
		return "-"
	}
	return fmt.Sprintf("%f", *s.Elevation)
}

func velColumn(u profile.UnitSystem, s profile.Sample) string {
	if s.Velocity == nil {
		return "-"
	}
	return fmt.Sprintf("%f", displayVelocity(u, *s.Velocity))
}
