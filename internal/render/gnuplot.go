package render

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/planbiir/gpxprof/internal/profile"
)

// UnsupportedFormatError reports an image file extension none of the
// output backends can produce.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Ext)
}

// gnuplotTerminal maps an output filename to a gnuplot terminal.
func gnuplotTerminal(savefig string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(savefig), "."))
	switch ext {
	case "png":
		return "png", nil
	case "jpg", "jpeg":
		return "jpeg", nil
	case "eps":
		return "post eps", nil
	case "svg":
		return "svg", nil
	}
	return "", &UnsupportedFormatError{Ext: ext}
}

// axisColumn returns the 1-based column of an axis in the table output.
func axisColumn(a profile.Axis) int {
	switch a {
	case profile.AxisTime:
		return 1
	case profile.AxisElevation:
		return 2
	case profile.AxisDistance:
		return 3
	}
	return 4 // velocity
}

func axisLabel(a profile.Axis, u profile.UnitSystem) string {
	switch a {
	case profile.AxisTime:
		return "time"
	case profile.AxisElevation:
		return fmt.Sprintf("elevation, %s", eleUnit(u))
	case profile.AxisDistance:
		return fmt.Sprintf("distance, %s", distUnit(u))
	}
	return fmt.Sprintf("velocity, %s", velUnit(u))
}

// GnuplotScript writes a self-contained gnuplot script that plots the
// profile with inline data. When savefig is non-empty the script sets a
// file terminal chosen by the filename extension; otherwise the plot
// goes to gnuplot's default interactive terminal.
func GnuplotScript(w io.Writer, p profile.Profile, x, y profile.Axis, savefig string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "unset key")
	if x == profile.AxisTime {
		fmt.Fprintln(bw, "set xdata time")
		bw.WriteString("set timefmt '%Y-%m-%dT%H:%M:%S'\n")
		fmt.Fprintln(bw, "set xlabel 'time'")
	} else {
		fmt.Fprintf(bw, "set xlabel '%s'\n", axisLabel(x, p.Units))
	}
	fmt.Fprintf(bw, "set ylabel '%s'\n", axisLabel(y, p.Units))

	if savefig != "" {
		term, err := gnuplotTerminal(savefig)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "set terminal %s; set output '%s';\n", term, savefig)
	}

	fmt.Fprintf(bw, "plot '-' u %d:%d w l\n", axisColumn(x), axisColumn(y))
	if err := bw.Flush(); err != nil {
		return err
	}
	if err := Table(w, p); err != nil {
		return err
	}
	fmt.Fprintln(bw, "e")
	return bw.Flush()
}
