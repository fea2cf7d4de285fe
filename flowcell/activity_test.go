package flowcell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateCounts(t *testing.T) {
	lg := Layout()
	ag, dropped := lg.Aggregate([]int{33, 33, 33, 8, 512})

	assert.Equal(t, 0, dropped)
	assert.Equal(t, 5, ag.Total())
	assert.Equal(t, 3, ag.At(0, 0))
	assert.Equal(t, 1, ag.At(8, 0))
	assert.Equal(t, 1, ag.At(7, 7))
	assert.Equal(t, 0, ag.At(15, 31))
	assert.Equal(t, 3, ag.Max())
}

func TestAggregateRepeatedPair(t *testing.T) {
	lg := Layout()
	ag, dropped := lg.Aggregate([]int{33, 33, 8})

	assert.Equal(t, 0, dropped)
	assert.Equal(t, 3, ag.Total())
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			switch {
			case r == 0 && c == 0:
				assert.Equal(t, 2, ag.At(r, c))
			case r == 8 && c == 0:
				assert.Equal(t, 1, ag.At(r, c))
			default:
				assert.Equal(t, 0, ag.At(r, c))
			}
		}
	}
}

func TestAggregateIgnoresUnknownChannels(t *testing.T) {
	lg := Layout()
	ag, dropped := lg.Aggregate([]int{0, 600, 33, -5})

	assert.Equal(t, 3, dropped)
	assert.Equal(t, 1, ag.Total())
	assert.Equal(t, 1, ag.At(0, 0))
}

func TestAggregateEmpty(t *testing.T) {
	lg := Layout()
	ag, dropped := lg.Aggregate(nil)

	assert.Equal(t, 0, dropped)
	assert.Equal(t, 0, ag.Total())
	assert.Equal(t, 0, ag.Max())
}

func TestAggregateEveryChannelOnce(t *testing.T) {
	lg := Layout()
	channels := make([]int, 0, Channels)
	for ch := 1; ch <= Channels; ch++ {
		channels = append(channels, ch)
	}
	ag, dropped := lg.Aggregate(channels)

	require.Equal(t, 0, dropped)
	assert.Equal(t, Channels, ag.Total())
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			assert.Equal(t, 1, ag.At(r, c))
		}
	}
	assert.Equal(t, 1, ag.Max())
}
