package nanoplotter

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// kdeGridSize is the lattice resolution of the bivariate density estimate.
const kdeGridSize = 64

// silvermanBandwidth returns the rule of thumb bandwidth for a gaussian
// kernel density estimate over xs.
func silvermanBandwidth(xs []float64) float64 {
	if len(xs) < 2 {
		return 1
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	sigma := stat.StdDev(xs, nil)
	iqr := stat.Quantile(0.75, stat.Empirical, sorted, nil) - stat.Quantile(0.25, stat.Empirical, sorted, nil)
	a := sigma
	if iqr > 0 && iqr/1.34 < a {
		a = iqr / 1.34
	}
	if a <= 0 {
		return 1
	}
	return 0.9 * a * math.Pow(float64(len(xs)), -0.2)
}

// kde1d evaluates a gaussian kernel density estimate on an evenly spaced
// grid of points spanning [lo, hi].
func kde1d(xs []float64, lo, hi float64, points int) (grid, density []float64) {
	kernel := distuv.Normal{Mu: 0, Sigma: silvermanBandwidth(xs)}
	grid = make([]float64, points)
	density = make([]float64, points)
	step := (hi - lo) / float64(points-1)
	for i := range grid {
		x := lo + float64(i)*step
		grid[i] = x
		var sum float64
		for _, xi := range xs {
			sum += kernel.Prob(x - xi)
		}
		density[i] = sum / float64(len(xs))
	}
	return grid, density
}

// kde2d evaluates a product gaussian kernel density estimate on a square
// lattice covering [0, maxx] x [0, maxy].
func kde2d(xs, ys []float64, maxx, maxy float64, size int) *densityGrid {
	kx := distuv.Normal{Mu: 0, Sigma: silvermanBandwidth(xs)}
	ky := distuv.Normal{Mu: 0, Sigma: silvermanBandwidth(ys)}
	g := &densityGrid{
		z:    make([]float64, size*size),
		size: size,
		maxx: maxx,
		maxy: maxy,
	}
	n := float64(len(xs))
	for c := 0; c < size; c++ {
		x := g.X(c)
		for r := 0; r < size; r++ {
			y := g.Y(r)
			var sum float64
			for i := range xs {
				sum += kx.Prob(x-xs[i]) * ky.Prob(y-ys[i])
			}
			g.z[c*size+r] = sum / n
		}
	}
	return g
}

// densityGrid is a square lattice of density values addressed by cell
// centers, shaped for the heat map plotter.
type densityGrid struct {
	z    []float64
	size int
	maxx float64
	maxy float64
}

func (g *densityGrid) Dims() (c, r int)   { return g.size, g.size }
func (g *densityGrid) Z(c, r int) float64 { return g.z[c*g.size+r] }
func (g *densityGrid) X(c int) float64    { return (float64(c) + 0.5) * g.maxx / float64(g.size) }
func (g *densityGrid) Y(r int) float64    { return (float64(r) + 0.5) * g.maxy / float64(g.size) }
