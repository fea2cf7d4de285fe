package nanoplotter

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// logHistBins is the bin count of the log transformed histogram.
const logHistBins = 100

// LengthPlots draws a histogram of read lengths and one of their log10
// transform. A positive n50 is marked with a labelled vertical line.
func LengthPlots(lengths []float64, name, prefix string, n50 float64, opts *Options) ([]*Plot, error) {
	if len(lengths) == 0 {
		return nil, fmt.Errorf("no read lengths to plot")
	}
	logger.Infof("creating length plots for %s", name)
	maxval := floats.Max(lengths)
	if n50 > 0 {
		logger.Infof("using %d reads with read length N50 of %.0fbp and maximum of %.0fbp", len(lengths), n50, maxval)
	} else {
		logger.Infof("using %d reads with maximum of %.0fbp", len(lengths), maxval)
	}
	clean := strings.ReplaceAll(name, " ", "")

	hist, err := lengthHistogram(lengths, clean, prefix, n50, maxval, opts)
	if err != nil {
		return nil, err
	}
	logHist, err := logLengthHistogram(lengths, clean, prefix, n50, maxval, opts)
	if err != nil {
		return nil, err
	}
	return []*Plot{hist, logHist}, nil
}

func lengthHistogram(lengths []float64, name, prefix string, n50, maxval float64, opts *Options) (*Plot, error) {
	out := &Plot{
		Path:  prefix + "Histogram" + name + "." + opts.Format,
		Title: "Histogram of read lengths",
	}
	// One bin per hundred bases, capped so absurd read lengths cannot
	// explode the bin count.
	bins := int(math.Round(maxval / 100))
	if bins < 1 {
		bins = 1
	}
	if bins > 10000 {
		bins = 10000
	}

	p := plot.New()
	p.Title.Text = out.Title
	p.X.Label.Text = "Read length"
	p.Y.Label.Text = "Number of reads"

	h, err := plotter.NewHist(plotter.Values(lengths), bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = opts.Color
	p.Add(h)

	if n50 > 0 {
		if err := markN50(p, n50, histPeak(lengths, bins)); err != nil {
			return nil, err
		}
	}
	if err := p.Save(opts.Width, opts.Height, out.Path); err != nil {
		return nil, err
	}
	return out, nil
}

func logLengthHistogram(lengths []float64, name, prefix string, n50, maxval float64, opts *Options) (*Plot, error) {
	out := &Plot{
		Path:  prefix + "LogTransformedHistogram" + name + "." + opts.Format,
		Title: "Histogram of read lengths after log transformation",
	}
	logs := make([]float64, len(lengths))
	for i, l := range lengths {
		logs[i] = math.Log10(l)
	}

	p := plot.New()
	p.Title.Text = out.Title
	p.X.Label.Text = "Read length"
	p.Y.Label.Text = "Number of reads"
	p.X.Tick.Marker = DecadeTicks{Max: maxval}

	h, err := plotter.NewHist(plotter.Values(logs), logHistBins)
	if err != nil {
		return nil, err
	}
	h.FillColor = opts.Color
	p.Add(h)

	if n50 > 0 {
		if err := markN50(p, math.Log10(n50), histPeak(logs, logHistBins)); err != nil {
			return nil, err
		}
	}
	if err := p.Save(opts.Width, opts.Height, out.Path); err != nil {
		return nil, err
	}
	return out, nil
}

// markN50 draws a vertical marker with an N50 label reaching the height of
// the tallest histogram bin.
func markN50(p *plot.Plot, x, peak float64) error {
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: peak}})
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: peak}},
		Labels: []string{"N50"},
	})
	if err != nil {
		return err
	}
	p.Add(labels)
	return nil
}

// histPeak returns the tallest bin count of an equal width histogram.
func histPeak(values []float64, bins int) float64 {
	lo := floats.Min(values)
	hi := floats.Max(values)
	if hi == lo {
		return float64(len(values))
	}
	counts := make([]float64, bins)
	width := (hi - lo) / float64(bins)
	for _, v := range values {
		b := int((v - lo) / width)
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}
	return floats.Max(counts)
}
