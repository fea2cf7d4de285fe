package nanoplotter

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Violin geometry: half width at the densest point in units of the group
// spacing, outline resolution and the sample cap per density estimate.
const (
	violinHalfWidth = 0.4
	violinPoints    = 128
	violinSamples   = 10000
)

// ViolinOrBox compares one metric across datasets, violin style by default
// or as box plots. With logScale set the values are expected to be log10
// transformed and the y axis is relabelled in raw decades.
func ViolinOrBox(names []string, values [][]float64, metric string, violin, logScale bool, prefix string, opts *Options) (*Plot, error) {
	if len(names) == 0 || len(names) != len(values) {
		return nil, fmt.Errorf("comparison needs one name per dataset, got %d names and %d datasets", len(names), len(values))
	}
	if violin {
		logger.Infof("creating violin plot for %s", metric)
	} else {
		logger.Infof("creating box plot for %s", metric)
	}
	out := &Plot{
		Path:  prefix + "NanoComp_" + strings.ReplaceAll(metric, " ", "_") + "." + opts.Format,
		Title: "Comparing " + metric,
	}
	p := plot.New()
	p.Title.Text = out.Title
	p.Y.Label.Text = metric

	var maxval float64
	for i, vals := range values {
		if len(vals) == 0 {
			continue
		}
		if m := floats.Max(vals); m > maxval {
			maxval = m
		}
		if violin {
			poly, err := violinPolygon(vals, float64(i), violinHalfWidth, opts.Color)
			if err != nil {
				return nil, err
			}
			p.Add(poly)
		} else {
			box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(vals))
			if err != nil {
				return nil, err
			}
			box.FillColor = opts.Color
			p.Add(box)
		}
	}
	p.NominalX(names...)
	if logScale {
		p.Y.Tick.Marker = DecadeTicks{Max: math.Pow(10, maxval)}
	}

	if err := p.Save(opts.Width, opts.Height, out.Path); err != nil {
		return nil, err
	}
	return out, nil
}

// violinPolygon builds the mirrored density outline for one group of
// values, centred on x.
func violinPolygon(values []float64, center, halfWidth float64, fill color.Color) (*plotter.Polygon, error) {
	if len(values) > violinSamples {
		idx := sampleIndices(violinSamples, len(values))
		sampled := make([]float64, len(idx))
		for i, j := range idx {
			sampled[i] = values[j]
		}
		values = sampled
	}
	lo := floats.Min(values)
	hi := floats.Max(values)
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	grid, density := kde1d(values, lo, hi, violinPoints)
	peak := floats.Max(density)

	outline := make(plotter.XYs, 0, 2*len(grid))
	for i := range grid {
		outline = append(outline, plotter.XY{X: center + density[i]/peak*halfWidth, Y: grid[i]})
	}
	for i := len(grid) - 1; i >= 0; i-- {
		outline = append(outline, plotter.XY{X: center - density[i]/peak*halfWidth, Y: grid[i]})
	}
	poly, err := plotter.NewPolygon(outline)
	if err != nil {
		return nil, err
	}
	poly.Color = fill
	poly.LineStyle.Color = fill
	return poly, nil
}

// OutputBarplot summarises dataset sizes: the number of reads sequenced
// and the total throughput in megabases.
func OutputBarplot(names []string, lengths [][]float64, prefix string, opts *Options) ([]*Plot, error) {
	if len(names) == 0 || len(names) != len(lengths) {
		return nil, fmt.Errorf("barplot needs one name per dataset, got %d names and %d datasets", len(names), len(lengths))
	}
	counts := make(plotter.Values, len(lengths))
	megabases := make(plotter.Values, len(lengths))
	for i, vals := range lengths {
		counts[i] = float64(len(vals))
		megabases[i] = floats.Sum(vals) / 1e6
	}

	reads, err := barplot(counts, names, "Number of reads",
		prefix+"NanoComp_number_of_reads."+opts.Format, "Comparing number of reads", opts)
	if err != nil {
		return nil, err
	}
	throughput, err := barplot(megabases, names, "Total megabase sequenced",
		prefix+"NanoComp_total_throughput."+opts.Format, "Comparing total throughput", opts)
	if err != nil {
		return nil, err
	}
	return []*Plot{reads, throughput}, nil
}

func barplot(values plotter.Values, names []string, ylabel, path, title string, opts *Options) (*Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylabel

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return nil, err
	}
	bars.Color = opts.Color
	p.Add(bars)
	p.NominalX(names...)

	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return nil, err
	}
	return &Plot{Path: path, Title: title}, nil
}
