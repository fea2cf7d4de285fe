package nanoplotter

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// IntegerTicks places a labelled tick on every integer in the axis range.
type IntegerTicks struct{}

func (IntegerTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i := int(math.Ceil(min)); i <= int(math.Floor(max)); i++ {
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: fmt.Sprintf("%d", i),
		})
	}
	return ticks
}

// DecadeTicks labels powers of ten on an axis holding log10 transformed
// values. Max is the largest raw value; ticks run while 10^i stays below
// ten times that maximum.
type DecadeTicks struct {
	Max float64
}

func (t DecadeTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i := 0; i < 10; i++ {
		v := math.Pow(10, float64(i))
		if v > 10*t.Max {
			break
		}
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: strconv.FormatFloat(v, 'f', -1, 64),
		})
	}
	return ticks
}

// hourTicks labels an axis measured in seconds with elapsed whole hours.
type hourTicks struct {
	step int
	max  float64
}

func (t hourTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for h := 0; h < 168; h += t.step {
		if float64(h) > t.max/3600 {
			break
		}
		ticks = append(ticks, plot.Tick{
			Value: float64(h) * 3600,
			Label: strconv.Itoa(h),
		})
	}
	return ticks
}
