package nanocomp

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gonum.org/v1/plot/vg"

	"nanoplot_go/config"
	"nanoplot_go/nanoplotter"
	"nanoplot_go/report"
	"nanoplot_go/summary"
)

// summaryArg is one dataset to compare, optionally carrying a display
// name given as name=path.
type summaryArg struct {
	Name string
	Path string
}

// summaryList collects repeated -summary flags.
type summaryList []summaryArg

func (l *summaryList) String() string {
	parts := make([]string, len(*l))
	for i, a := range *l {
		parts[i] = a.Path
	}
	return strings.Join(parts, ",")
}

func (l *summaryList) Set(value string) error {
	if value == "" {
		return fmt.Errorf("empty summary file")
	}
	if name, path, found := strings.Cut(value, "="); found {
		if name == "" || path == "" {
			return fmt.Errorf("dataset must be given as name=path, got %q", value)
		}
		*l = append(*l, summaryArg{Name: name, Path: path})
		return nil
	}
	*l = append(*l, summaryArg{Path: value})
	return nil
}

func Run(args []string) {

	fs := flag.NewFlagSet("nanocomp", flag.ExitOnError) 		// Isolated flag set specifically for "nanocomp" subcommand

	var summaries summaryList
	fs.Var(&summaries, "summary", "Sequencing summary file to compare, repeatable, optionally name=path")
	plotType := fs.String("plot_type", "violin", "Comparison plot type: violin or box")
	outDir := fs.String("outdir", ".", "Directory for the output files")
	prefix := fs.String("prefix", "", "Prefix for the output file names")
	title := fs.String("title", "", "Title for the HTML report")
	colorName := fs.String("color", "", "Color for the plots, a CSS name or #RRGGBB value")
	format := fs.String("format", "", "Output format of the plots")
	logLength := fs.Bool("log_length", false, "Compare read lengths on a log10 scale")
	downsample := fs.Int("downsample", 0, "Restrict every dataset to this many randomly sampled reads")
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

	if len(summaries) < 2 {
		fmt.Fprintln(os.Stderr, "Error: at least two -summary files are required")
		fs.Usage()
		os.Exit(1)
	}
	if *plotType != "violin" && *plotType != "box" {
		fmt.Fprintf(os.Stderr, "Unsupported plot type: %s\n", *plotType)
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
		Prefix:          "nanocomp",
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

	names := make([]string, 0, len(summaries))
	lengths := make([][]float64, 0, len(summaries))
	quals := make([][]float64, 0, len(summaries))
	datasets := make([]report.Dataset, 0, len(summaries))
	allQuals := true
	for _, arg := range summaries {
		logger.Infof("reading summary file %s", arg.Path)
		rs, err := summary.ParseFile(arg.Path)
		if err != nil {
			logger.Fatalf("could not read summary file: %v", err)
		}
		if rs.Skipped > 0 {
			logger.Warnf("skipped %d unusable rows in %s", rs.Skipped, arg.Path)
		}
		if settings.Downsample > 0 && settings.Downsample < rs.Len() {
			logger.Infof("downsampling %s from %d to %d reads", arg.Path, rs.Len(), settings.Downsample)
			rs = rs.Downsample(settings.Downsample)
		}
		name := arg.Name
		if name == "" {
			name = rs.Dataset
		}
		names = append(names, name)
		lengths = append(lengths, rs.Lengths)
		quals = append(quals, rs.Quals)
		if !rs.HasQuals() {
			allQuals = false
		}
		datasets = append(datasets, report.Dataset{Name: name, Stats: summary.Describe(rs)})
	}

	opts := nanoplotter.NewOptions(settings.Color, settings.Colormap, settings.Format)
	if settings.Width > 0 {
		opts.Width = vg.Length(settings.Width) * vg.Inch
	}
	if settings.Height > 0 {
		opts.Height = vg.Length(settings.Height) * vg.Inch
	}

	violin := *plotType == "violin"
	var plots []*nanoplotter.Plot

	bars, err := nanoplotter.OutputBarplot(names, lengths, base, opts)
	if err != nil {
		logger.Errorf("failed to create barplots: %v", err)
	}
	plots = append(plots, bars...)

	lengthVals := lengths
	metric := "Read length"
	if *logLength {
		metric = "Log transformed read lengths"
		lengthVals = make([][]float64, len(lengths))
		for i, ls := range lengths {
			lengthVals[i] = make([]float64, len(ls))
			for j, l := range ls {
				lengthVals[i][j] = math.Log10(l)
			}
		}
	}
	p, err := nanoplotter.ViolinOrBox(names, lengthVals, metric, violin, *logLength, base, opts)
	if err != nil {
		logger.Errorf("failed to create length comparison: %v", err)
	} else {
		plots = append(plots, p)
	}

	if allQuals {
		p, err := nanoplotter.ViolinOrBox(names, quals, "Average read quality", violin, false, base, opts)
		if err != nil {
			logger.Errorf("failed to create quality comparison: %v", err)
		} else {
			plots = append(plots, p)
		}
	} else {
		logger.Infof("not every dataset has quality scores, skipping quality comparison")
	}

	for _, p := range plots {
		fmt.Printf("Wrote plot: %s\n", p.Path)
	}

	if *htmlOut {
		reportTitle := *title
		if reportTitle == "" {
			reportTitle = "NanoComp report"
		}
		reportFile := base + "NanoComp-report"
		if err := report.WriteHTMLReport(reportFile, reportTitle, datasets, plots); err != nil {
			logger.Errorf("failed to write HTML report: %v", err)
		} else {
			fmt.Printf("Wrote HTML file: %s.html\n", reportFile)
		}
	}
}
