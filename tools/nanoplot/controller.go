package nanoplot

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"gonum.org/v1/plot/vg"

	"nanoplot_go/config"
	"nanoplot_go/nanoplotter"
	"nanoplot_go/report"
	"nanoplot_go/summary"
)

func Run(args []string) {

	fs := flag.NewFlagSet("nanoplot", flag.ExitOnError) 		// Isolated flag set specifically for "nanoplot" subcommand

	summaryFile := fs.String("summary", "", "Sequencing summary file generated by albacore or guppy")
	outDir := fs.String("outdir", ".", "Directory for the output files")
	prefix := fs.String("prefix", "", "Prefix for the output file names")
	title := fs.String("title", "", "Title for the HTML report")
	colorName := fs.String("color", "", "Color for the plots, a CSS name or #RRGGBB value")
	colormap := fs.String("colormap", "", "Colorbrewer palette for the activity map")
	format := fs.String("format", "", "Output format of the plots")
	plotList := fs.String("plots", "dot,kde", "Comma separated bivariate plot kinds: dot, kde, hex")
	logLength := fs.Bool("log_length", false, "Show read lengths on a log10 scale in the bivariate plots")
	noN50 := fs.Bool("no_N50", false, "Hide the N50 mark in the read length histograms")
	downsample := fs.Int("downsample", 0, "Restrict the analysis to this many randomly sampled reads")
	htmlOut := fs.Bool("html", false, "Bundle statistics and plots into an HTML report")
	settingsFile := fs.String("settings", "", "TOML file with default settings")
	verbose := fs.Bool("verbose", false, "Log debug messages")

	err := fs.Parse(args)										// Parse inputs
	if err != nil {
		fmt.Println("Error parsing flags:", err)				// Check for outright input failures
		os.Exit(1)												// E.g., expected int by recieved str
	}

	if len(fs.Args()) > 0 {										// If unparsed arguments remain:
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())	// Flag the error and report it
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if *summaryFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -summary is required")
		fs.Usage()
		os.Exit(1)
	}

	kinds, err := parsePlotKinds(*plotList)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	settings := config.Defaults()
	if *settingsFile != "" {
		settings, err = config.Load(*settingsFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to read settings file:", err)
			os.Exit(1)
		}
	}
	// Explicit flags win over the settings file.
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["color"] {
		settings.Color = *colorName
	}
	if set["colormap"] {
		settings.Colormap = *colormap
	}
	if set["format"] {
		settings.Format = *format
	}
	if set["downsample"] {
		settings.Downsample = *downsample
	}
	if set["verbose"] {
		settings.Verbose = *verbose
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "nanoplot",
	})
	if settings.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	nanoplotter.SetLogger(logger.WithPrefix("nanoplotter"))

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatalf("could not create output directory: %v", err)
	}
	base := filepath.Join(*outDir, *prefix)
	if *prefix == "" {
		base += string(filepath.Separator)
	}

	logger.Infof("reading summary file %s", *summaryFile)
	rs, err := summary.ParseFile(*summaryFile)
	if err != nil {
		logger.Fatalf("could not read summary file: %v", err)
	}
	if rs.Skipped > 0 {
		logger.Warnf("skipped %d unusable rows in %s", rs.Skipped, *summaryFile)
	}
	if settings.Downsample > 0 && settings.Downsample < rs.Len() {
		logger.Infof("downsampling dataset from %d to %d reads", rs.Len(), settings.Downsample)
		rs = rs.Downsample(settings.Downsample)
	}

	stats := summary.Describe(rs)
	statsFile := base + "NanoStats.txt"
	if err := os.WriteFile(statsFile, []byte(stats.String()), 0o644); err != nil {
		logger.Fatalf("could not write statistics: %v", err)
	}
	fmt.Printf("Wrote statistics to file: %s\n", statsFile)

	opts := nanoplotter.NewOptions(settings.Color, settings.Colormap, settings.Format)
	if settings.Width > 0 {
		opts.Width = vg.Length(settings.Width) * vg.Inch
	}
	if settings.Height > 0 {
		opts.Height = vg.Length(settings.Height) * vg.Inch
	}

	// The x axis of the bivariate plots, log10 transformed on request.
	xLengths := rs.Lengths
	if *logLength {
		xLengths = make([]float64, len(rs.Lengths))
		for i, l := range rs.Lengths {
			xLengths[i] = math.Log10(l)
		}
	}

	var (
		scatterPlots, lengthPlots, timePlots, spatialPlots []*nanoplotter.Plot
	)
	var wg sync.WaitGroup

	if rs.HasQuals() && (kinds.Dot || kinds.Kde || kinds.Hex) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ps, err := nanoplotter.Scatter(xLengths, rs.Quals,
				[2]string{"Read lengths", "Average read quality"},
				base+"LengthvsQualityScatterPlot", kinds, *logLength, opts)
			if err != nil {
				logger.Errorf("failed to create length vs quality plots: %v", err)
			}
			scatterPlots = ps
		}()
	} else if !rs.HasQuals() {
		logger.Infof("no quality scores in summary file, skipping bivariate plots")
	}

	n50 := stats.N50
	if *noN50 {
		n50 = 0
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		ps, err := nanoplotter.LengthPlots(rs.Lengths, "Read lengths", base, n50, opts)
		if err != nil {
			logger.Errorf("failed to create length plots: %v", err)
		}
		lengthPlots = ps
	}()

	if rs.HasTimes() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ps, err := nanoplotter.TimePlots(rs, base, opts)
			if err != nil {
				logger.Errorf("failed to create time plots: %v", err)
			}
			timePlots = ps
		}()
	}

	if rs.HasChannels() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ps, err := nanoplotter.SpatialHeatmap(rs.Channels,
				"Number of reads generated per channel",
				base+"ActivityMap_ReadsPerChannel", opts)
			if err != nil {
				logger.Errorf("failed to create activity map: %v", err)
			}
			spatialPlots = ps
		}()
	} else {
		logger.Warnf("no channel column in summary file, skipping the activity map")
	}

	wg.Wait()

	var plots []*nanoplotter.Plot
	plots = append(plots, scatterPlots...)
	plots = append(plots, lengthPlots...)
	plots = append(plots, timePlots...)
	plots = append(plots, spatialPlots...)
	for _, p := range plots {
		fmt.Printf("Wrote plot: %s\n", p.Path)
	}

	if *htmlOut {
		reportTitle := *title
		if reportTitle == "" {
			reportTitle = "NanoPlot report"
		}
		reportFile := base + "NanoPlot-report"
		datasets := []report.Dataset{{Name: rs.Dataset, Stats: stats}}
		if err := report.WriteHTMLReport(reportFile, reportTitle, datasets, plots); err != nil {
			logger.Errorf("failed to write HTML report: %v", err)
		} else {
			fmt.Printf("Wrote HTML file: %s.html\n", reportFile)
		}
	}
}

// parsePlotKinds resolves the -plots flag into the bivariate plot
// selection.
func parsePlotKinds(list string) (nanoplotter.ScatterKinds, error) {
	var kinds nanoplotter.ScatterKinds
	for _, kind := range strings.Split(list, ",") {
		switch strings.TrimSpace(strings.ToLower(kind)) {
		case "dot":
			kinds.Dot = true
		case "kde":
			kinds.Kde = true
		case "hex":
			kinds.Hex = true
		case "":
		default:
			return kinds, fmt.Errorf("unknown plot kind %q, valid kinds are dot, kde and hex", kind)
		}
	}
	return kinds, nil
}
