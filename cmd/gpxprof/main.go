package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/planbiir/gpxprof/internal/config"
	"github.com/planbiir/gpxprof/internal/gpx"
	"github.com/planbiir/gpxprof/internal/profile"
	"github.com/planbiir/gpxprof/internal/render"
)

// Exit codes, stable for scripting: 1 bad options, 2 bad or missing
// track data, 3 unsupported output format.
const (
	exitOptions = 1
	exitData    = 2
	exitFormat  = 3
)

func main() {
	var (
		inputFile  = flag.String("i", "", "Input GPX file (\"-\" reads stdin)")
		xName      = flag.String("x", "", "X axis variable: distance, time (default: distance)")
		yName      = flag.String("y", "", "Y axis variable: elevation, velocity (default: elevation)")
		imperial   = flag.Bool("E", false, "Use imperial units (miles, miles/h, feet)")
		tzName     = flag.String("t", "", "IANA timezone to shift timestamps into (e.g. Europe/Moscow)")
		points     = flag.Int("n", 0, "Resample the profile down to about this many points")
		imageFile  = flag.String("o", "", "Output image file (PNG; with -g also jpeg/eps/svg)")
		gnuplot    = flag.Bool("g", false, "Print a gnuplot script instead of a data table")
		gprint     = flag.Bool("gprint", false, "Alias for -g")
		google     = flag.Bool("google", false, "Print a Google Chart URL (distance-elevation only)")
		configFile = flag.String("config", "", "YAML file with default options")
		version    = flag.Bool("version", false, "Show version information")
	)

	flag.Usage = func() {
		fmt.Printf("gpxprof - plot profiles of GPS tracks\n\n")
		fmt.Printf("usage: gpxprof [options] track.gpx\n\n")
		fmt.Printf("examples:\n")
		fmt.Printf("  gpxprof track.gpx                      # distance-elevation table\n")
		fmt.Printf("  gpxprof -g -o profile.png track.gpx    # gnuplot script for a PNG\n")
		fmt.Printf("  gpxprof -o profile.png track.gpx       # render PNG directly\n")
		fmt.Printf("  gpxprof -x time -y velocity track.gpx  # velocity over time\n")
		fmt.Printf("  cat track.gpx | gpxprof -google -n 250 -\n\n")
		fmt.Printf("options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Println("gpxprof v1.0.0 - GPS track profile plotter")
		fmt.Println("https://github.com/planbiir/gpxprof")
		os.Exit(0)
	}

	// A gpxprof.yaml next to the working directory acts as an implicit
	// config file.
	if *configFile == "" {
		if _, err := os.Stat("gpxprof.yaml"); err == nil {
			*configFile = "gpxprof.yaml"
		}
	}

	cfg := config.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(exitOptions)
		}
	}

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "too many files given")
		flag.Usage()
		os.Exit(exitOptions)
	}
	if *inputFile == "" && flag.NArg() == 1 {
		*inputFile = flag.Arg(0)
	}
	if *inputFile == "" {
		flag.Usage()
		os.Exit(exitOptions)
	}

	// Explicit flags win over config file values, which win over the
	// built-in defaults.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if *xName == "" {
		*xName = cfg.XAxis
	}
	if *yName == "" {
		*yName = cfg.YAxis
	}
	if !set["n"] && cfg.Points > 0 {
		*points = cfg.Points
	}
	if *tzName == "" {
		*tzName = cfg.Timezone
	}
	units := profile.Metric
	if *imperial || (!set["E"] && cfg.Units == "imperial") {
		units = profile.Imperial
	}

	xAxis, err := profile.ParseAxis(*xName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unknown x variable %q\n", *xName)
		os.Exit(exitOptions)
	}
	yAxis, err := profile.ParseAxis(*yName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unknown y variable %q\n", *yName)
		os.Exit(exitOptions)
	}
	if *google && (xAxis != profile.AxisDistance || yAxis != profile.AxisElevation) {
		fmt.Fprintln(os.Stderr, "only distance-elevation profiles are supported in -google mode")
		os.Exit(exitOptions)
	}

	var loc *time.Location
	if *tzName != "" {
		loc, err = time.LoadLocation(*tzName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "unknown timezone %q\n", *tzName)
			os.Exit(exitOptions)
		}
	}

	var track *gpx.Track
	if *inputFile == "-" {
		track, err = gpx.ParseReader(os.Stdin)
	} else {
		track, err = gpx.ParseFile(*inputFile)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading GPX data: %v\n", err)
		os.Exit(exitData)
	}

	prof := profile.Build(track)

	for _, axis := range []profile.Axis{xAxis, yAxis} {
		if err := profile.EnsureAxis(prof, axis); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitData)
		}
	}

	if *points > 0 {
		prof, err = profile.Resample(prof, *points)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitOptions)
		}
	}

	prof = profile.Convert(prof, units, loc)
	printStats(prof)

	switch {
	case *google:
		url, err := render.GoogleChartURL(prof, xAxis, yAxis)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitData)
		}
		fmt.Println(url)

	case *gnuplot || *gprint:
		if err := render.GnuplotScript(os.Stdout, prof, xAxis, yAxis, *imageFile); err != nil {
			var unsupported *render.UnsupportedFormatError
			if errors.As(err, &unsupported) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(exitFormat)
			}
			fmt.Fprintf(os.Stderr, "Error writing script: %v\n", err)
			os.Exit(exitOptions)
		}

	case *imageFile != "":
		bar := progressbar.Default(int64(prof.Points), "Rendering")
		err := render.SaveChartPNG(*imageFile, prof, render.ChartOptions{
			X: xAxis,
			Y: yAxis,
			OnSample: func(done, total int) {
				_ = bar.Set(done)
			},
		})
		if err != nil {
			var unsupported *render.UnsupportedFormatError
			if errors.As(err, &unsupported) {
				fmt.Fprintf(os.Stderr, "Error: %v (use -g for gnuplot output)\n", err)
				os.Exit(exitFormat)
			}
			fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
			os.Exit(exitOptions)
		}
		fmt.Fprintf(os.Stderr, "✅ Wrote %s\n", *imageFile)

	default:
		if err := render.Table(os.Stdout, prof); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing table: %v\n", err)
			os.Exit(exitOptions)
		}
	}
}

// printStats summarizes the profile on stderr so stdout stays clean for
// tables, scripts and URLs.
func printStats(p profile.Profile) {
	unit := "km"
	dist := p.TotalDistance() / 1000
	if p.Units == profile.Imperial {
		unit = "miles"
		dist = p.TotalDistance()
	}

	fmt.Fprintf(os.Stderr, "📊 %d points across %d segments", p.Points, p.SegmentCount())
	if p.OriginalPoints != p.Points {
		fmt.Fprintf(os.Stderr, " (resampled from %d)", p.OriginalPoints)
	}
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "📏 Total distance: %.2f %s\n", dist, unit)
	if d, ok := p.Duration(); ok {
		fmt.Fprintf(os.Stderr, "⏱️  Duration: %v\n", d.Round(time.Second))
	}
}
