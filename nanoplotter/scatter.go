package nanoplotter

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ScatterKinds selects which bivariate renderings Scatter produces.
type ScatterKinds struct {
	Dot bool
	Kde bool
	Hex bool
}

// kdeSamples is the number of reads the density estimate is downsampled to.
const kdeSamples = 10000

// Scatter creates bivariate plots of x against y, one file per requested
// kind. With logLength set the x values are expected to be log10
// transformed read lengths and the x axis is relabelled in raw decades.
func Scatter(x, y []float64, names [2]string, prefix string, kinds ScatterKinds, logLength bool, opts *Options) ([]*Plot, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, fmt.Errorf("scatter needs two equally sized value sets, got %d and %d", len(x), len(y))
	}
	logger.Infof("creating %s vs %s plots using statistics from %d reads", names[0], names[1], len(x))
	maxx := floats.Max(x)
	maxy := floats.Max(y)

	var made []*Plot
	if kinds.Hex {
		p, err := hexPlot(x, y, names, prefix, logLength, maxx, maxy, opts)
		if err != nil {
			return made, err
		}
		made = append(made, p)
	}
	if kinds.Dot {
		p, err := dotPlot(x, y, names, prefix, logLength, maxx, maxy, opts)
		if err != nil {
			return made, err
		}
		made = append(made, p)
	}
	if kinds.Kde {
		p, err := kdePlot(x, y, names, prefix, logLength, maxx, maxy, opts)
		if err != nil {
			return made, err
		}
		made = append(made, p)
	}
	return made, nil
}

func scatterTitle(names [2]string, kind string, logLength bool) string {
	title := fmt.Sprintf("%s vs %s plot using %s", names[0], names[1], kind)
	if logLength {
		title += " after log transformation of read lengths"
	}
	return title
}

func newScatterAxes(names [2]string, maxx, maxy float64, logLength bool) *plot.Plot {
	p := plot.New()
	p.X.Label.Text = names[0]
	p.Y.Label.Text = names[1]
	p.X.Min, p.X.Max = 0, maxx
	p.Y.Min, p.Y.Max = 0, maxy
	if logLength {
		p.X.Tick.Marker = DecadeTicks{Max: math.Pow(10, maxx)}
	}
	return p
}

func dotPlot(x, y []float64, names [2]string, prefix string, logLength bool, maxx, maxy float64, opts *Options) (*Plot, error) {
	out := &Plot{
		Path:  prefix + "_dot." + opts.Format,
		Title: scatterTitle(names, "dots", logLength),
	}
	p := newScatterAxes(names, maxx, maxy, logLength)
	p.Title.Text = out.Title
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = opts.Color
	sc.GlyphStyle.Radius = vg.Points(1)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(sc)

	if err := p.Save(opts.Width, opts.Height, out.Path); err != nil {
		return nil, err
	}
	return out, nil
}

func kdePlot(x, y []float64, names [2]string, prefix string, logLength bool, maxx, maxy float64, opts *Options) (*Plot, error) {
	out := &Plot{
		Path:  prefix + "_kde." + opts.Format,
		Title: scatterTitle(names, "a kernel density estimation", logLength),
	}
	idx := sampleIndices(kdeSamples, len(x))
	xs := make([]float64, len(idx))
	ys := make([]float64, len(idx))
	for i, j := range idx {
		xs[i] = x[j]
		ys[i] = y[j]
	}

	p := newScatterAxes(names, maxx, maxy, logLength)
	p.Title.Text = out.Title
	grid := kde2d(xs, ys, maxx, maxy, kdeGridSize)
	p.Add(plotter.NewHeatMap(grid, colorRamp{to: opts.Color, steps: 64}))

	if err := p.Save(opts.Width, opts.Height, out.Path); err != nil {
		return nil, err
	}
	return out, nil
}

// Hexagon lattice geometry in the unit square: pointy top hexagons with
// circumradius hexR, rows 1.5*hexR apart, columns sqrt(3)*hexR apart and
// odd rows shifted by half a column.
const (
	hexColumns = 40
	hexSqrt3   = 1.7320508075688772
	hexW       = 1.0 / hexColumns
	hexR       = hexW / hexSqrt3
	hexH       = 1.5 * hexR
)

// hexCell addresses one hexagon on the lattice by row and column.
type hexCell struct {
	row int
	col int
}

// hexCenter returns the lattice position of a cell in the unit square.
func hexCenter(cell hexCell) (x, y float64) {
	x = float64(cell.col) * hexW
	if cell.row%2 != 0 {
		x += hexW / 2
	}
	return x, float64(cell.row) * hexH
}

// hexBin counts points per hexagon after scaling both axes to the unit
// square. Each point lands in the cell with the nearest center, found by
// searching the three by three neighbourhood of its naive cell.
func hexBin(x, y []float64, spanx, spany float64) map[hexCell]float64 {
	bins := make(map[hexCell]float64)
	for i := range x {
		u := x[i] / spanx
		v := y[i] / spany
		baseRow := int(v / hexH)
		baseCol := int(u / hexW)
		best := hexCell{row: baseRow, col: baseCol}
		bestDist := math.Inf(1)
		for r := baseRow - 1; r <= baseRow+1; r++ {
			if r < 0 {
				continue
			}
			for c := baseCol - 1; c <= baseCol+1; c++ {
				if c < 0 {
					continue
				}
				cx, cy := hexCenter(hexCell{row: r, col: c})
				d := (u-cx)*(u-cx) + (v-cy)*(v-cy)
				if d < bestDist {
					bestDist = d
					best = hexCell{row: r, col: c}
				}
			}
		}
		bins[best]++
	}
	return bins
}

// hexPolygon renders one lattice cell as a polygon in data coordinates.
func hexPolygon(cell hexCell, spanx, spany float64) (*plotter.Polygon, error) {
	cx, cy := hexCenter(cell)
	ring := make(plotter.XYs, 6)
	for k := 0; k < 6; k++ {
		angle := math.Pi/6 + float64(k)*math.Pi/3
		ring[k].X = (cx + hexR*math.Cos(angle)) * spanx
		ring[k].Y = (cy + hexR*math.Sin(angle)) * spany
	}
	return plotter.NewPolygon(ring)
}

func hexPlot(x, y []float64, names [2]string, prefix string, logLength bool, maxx, maxy float64, opts *Options) (*Plot, error) {
	out := &Plot{
		Path:  prefix + "_hex." + opts.Format,
		Title: scatterTitle(names, "hexagonal bins", logLength),
	}
	spanx, spany := maxx, maxy
	if spanx == 0 {
		spanx = 1
	}
	if spany == 0 {
		spany = 1
	}
	bins := hexBin(x, y, spanx, spany)
	var maxCount float64
	for _, n := range bins {
		if n > maxCount {
			maxCount = n
		}
	}

	p := newScatterAxes(names, maxx, maxy, logLength)
	p.Title.Text = out.Title
	shades := colorRamp{to: opts.Color, steps: 64}.Colors()
	for cell, n := range bins {
		poly, err := hexPolygon(cell, spanx, spany)
		if err != nil {
			return nil, err
		}
		shade := shades[int(n/maxCount*float64(len(shades)-1))]
		poly.Color = shade
		poly.LineStyle.Color = shade
		p.Add(poly)
	}

	if err := p.Save(opts.Width, opts.Height, out.Path); err != nil {
		return nil, err
	}
	return out, nil
}
