package nanoplotter

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"nanoplot_go/flowcell"
)

// channelGrid adapts flowcell activity counts to the heat map grid
// interface. Coordinates are one based like the channel numbering shown
// along the axes.
type channelGrid struct {
	act *flowcell.ActivityGrid
}

func (g channelGrid) Dims() (c, r int)   { return flowcell.Cols, flowcell.Rows }
func (g channelGrid) Z(c, r int) float64 { return float64(g.act.At(r, c)) }
func (g channelGrid) X(c int) float64    { return float64(c + 1) }
func (g channelGrid) Y(r int) float64    { return float64(r + 1) }

// SpatialHeatmap aggregates read counts per channel onto the physical
// flowcell layout and renders them as a heat map.
func SpatialHeatmap(channels []int, title, prefix string, opts *Options) ([]*Plot, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("no channel numbers to aggregate")
	}
	logger.Infof("creating activity map for %s using statistics from %d reads", strings.ToLower(title), len(channels))
	layout := flowcell.Layout()
	activity, dropped := layout.Aggregate(channels)
	if dropped > 0 {
		logger.Warnf("ignored %d reads with channel numbers outside the flowcell", dropped)
	}

	out := &Plot{
		Path:  prefix + "." + opts.Format,
		Title: "Channel activity",
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Tick.Marker = IntegerTicks{}
	p.Y.Tick.Marker = IntegerTicks{}
	p.Add(plotter.NewHeatMap(channelGrid{act: activity}, opts.Palette))

	if err := p.Save(opts.Width, opts.Height, out.Path); err != nil {
		return nil, err
	}
	return []*Plot{out}, nil
}
