package nanoplotter

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"nanoplot_go/summary"
)

// Time based plots are limited to runs of this many days; longer spans
// indicate merged runs and get truncated.
const maxRunDays = 5

// timeSamples is the number of reads sampled for the plots over time.
const timeSamples = 2000

// checkValidTimeAndSort orders reads by start time. When the observed span
// reaches maxDays the tail is cut off: a span that long means several runs
// were combined and time based plots would be meaningless.
func checkValidTimeAndSort(rs *summary.ReadSet, maxDays int) *summary.ReadSet {
	sorted := rs.SortedByTime()
	span := int(sorted.TimeSpan().Hours()) / 24
	if span < maxDays {
		return sorted
	}
	logger.Warnf("reads were generated over more than %d days, likely combining multiple runs", maxDays)
	logger.Warnf("time plots are truncated to the first %d days (observed span: %d days)", maxDays, span)
	return sorted.Before(float64(maxDays) * 24 * 3600)
}

// TimePlots draws cumulative yield and read length over time and, when
// qualities are available, a violin plot of quality per six hour interval.
func TimePlots(rs *summary.ReadSet, prefix string, opts *Options) ([]*Plot, error) {
	if !rs.HasTimes() {
		return nil, fmt.Errorf("read set has no start times")
	}
	dfs := checkValidTimeAndSort(rs, maxRunDays)
	if dfs.Len() == 0 {
		return nil, fmt.Errorf("no reads left after truncating the run")
	}
	logger.Infof("creating time plots using %d reads", dfs.Len())

	maxtime := dfs.StartSecs[dfs.Len()-1]
	step := 4
	if maxtime >= 72*3600 {
		step = 8
	}
	ticker := hourTicks{step: step, max: maxtime}
	idx := sampleIndices(timeSamples, dfs.Len())

	yield, err := yieldPlot(dfs, idx, maxtime, ticker, prefix, opts)
	if err != nil {
		return nil, err
	}
	length, err := timeLengthScatter(dfs, idx, maxtime, ticker, prefix, opts)
	if err != nil {
		return nil, err
	}
	plots := []*Plot{yield, length}
	if dfs.HasQuals() {
		violin, err := timeQualityViolin(dfs, maxtime, prefix, opts)
		if err != nil {
			return nil, err
		}
		plots = append(plots, violin)
	}
	return plots, nil
}

func yieldPlot(rs *summary.ReadSet, idx []int, maxtime float64, ticker hourTicks, prefix string, opts *Options) (*Plot, error) {
	out := &Plot{
		Path:  prefix + "CumulativeYieldPlot." + opts.Format,
		Title: "Cumulative yield",
	}
	// Gigabases sequenced up to each read, over the full sorted set.
	cum := make([]float64, rs.Len())
	floats.CumSum(cum, rs.Lengths)
	for i := range cum {
		cum[i] /= 1e9
	}

	p := plot.New()
	p.Title.Text = out.Title
	p.X.Label.Text = "Run time (hours)"
	p.Y.Label.Text = "Cumulative yield in gigabase"
	p.X.Min, p.X.Max = 0, maxtime
	p.X.Tick.Marker = ticker
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(idx))
	for i, j := range idx {
		pts[i].X = rs.StartSecs[j]
		pts[i].Y = cum[j]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = opts.Color
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)

	if err := p.Save(opts.Width, opts.Height, out.Path); err != nil {
		return nil, err
	}
	return out, nil
}

func timeLengthScatter(rs *summary.ReadSet, idx []int, maxtime float64, ticker hourTicks, prefix string, opts *Options) (*Plot, error) {
	out := &Plot{
		Path:  prefix + "TimeLengthScatterPlot." + opts.Format,
		Title: "Scatter plot of read length over time",
	}
	p := plot.New()
	p.Title.Text = out.Title
	p.X.Label.Text = "Run time (hours)"
	p.Y.Label.Text = "Median read length"
	p.X.Min, p.X.Max = 0, maxtime
	p.X.Tick.Marker = ticker
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(idx))
	for i, j := range idx {
		pts[i].X = rs.StartSecs[j]
		pts[i].Y = rs.Lengths[j]
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = opts.Color
	sc.GlyphStyle.Radius = vg.Points(1.5)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(sc)

	if err := p.Save(opts.Width, opts.Height, out.Path); err != nil {
		return nil, err
	}
	return out, nil
}

func timeQualityViolin(rs *summary.ReadSet, maxtime float64, prefix string, opts *Options) (*Plot, error) {
	out := &Plot{
		Path:  prefix + "TimeQualityViolinPlot." + opts.Format,
		Title: "Violin plot of quality over time",
	}
	nbins := int(math.Ceil(maxtime / 3600 / 6))
	if nbins < 1 {
		nbins = 1
	}
	width := maxtime / float64(nbins)
	if width == 0 {
		width = 1
	}
	groups := make([][]float64, nbins)
	for i, t := range rs.StartSecs {
		b := int(t / width)
		if b >= nbins {
			b = nbins - 1
		}
		groups[b] = append(groups[b], rs.Quals[i])
	}
	labels := make([]string, nbins)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d-%d", i*6, (i+1)*6)
	}

	p := plot.New()
	p.Title.Text = out.Title
	p.X.Label.Text = "Interval (hours)"
	p.Y.Label.Text = "Basecall quality"
	for i, vals := range groups {
		if len(vals) == 0 {
			continue
		}
		poly, err := violinPolygon(vals, float64(i), violinHalfWidth, opts.Color)
		if err != nil {
			return nil, err
		}
		p.Add(poly)
	}
	p.NominalX(labels...)

	if err := p.Save(opts.Width, opts.Height, out.Path); err != nil {
		return nil, err
	}
	return out, nil
}
