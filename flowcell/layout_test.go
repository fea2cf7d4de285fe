package flowcell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutCoversEveryChannelOnce(t *testing.T) {
	lg := Layout()
	seen := make(map[int]int)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			ch := lg.At(r, c)
			assert.GreaterOrEqual(t, ch, 1)
			assert.LessOrEqual(t, ch, Channels)
			seen[ch]++
		}
	}
	require.Len(t, seen, Channels)
	for ch, n := range seen {
		assert.Equalf(t, 1, n, "channel %d appears %d times", ch, n)
	}
}

func TestLayoutKnownCells(t *testing.T) {
	lg := Layout()

	// First block: ascending run 33..40 down the first column,
	// descending run 8..1 below it.
	assert.Equal(t, 33, lg.At(0, 0))
	assert.Equal(t, 40, lg.At(7, 0))
	assert.Equal(t, 8, lg.At(8, 0))
	assert.Equal(t, 1, lg.At(15, 0))

	// Spot checks across the other blocks.
	assert.Equal(t, 377, lg.At(0, 15))
	assert.Equal(t, 512, lg.At(7, 7))
	assert.Equal(t, 256, lg.At(7, 23))
	assert.Equal(t, 121, lg.At(0, 31))
	assert.Equal(t, 89, lg.At(15, 31))
}

func TestLayoutColumnRuns(t *testing.T) {
	lg := Layout()
	for c := 0; c < Cols; c++ {
		for r := 0; r < 7; r++ {
			assert.Equalf(t, lg.At(r, c)+1, lg.At(r+1, c),
				"top half of column %d must ascend by one per row", c)
		}
		for r := 8; r < 15; r++ {
			assert.Equalf(t, lg.At(r, c)-1, lg.At(r+1, c),
				"bottom half of column %d must descend by one per row", c)
		}
	}
}

func TestPositionRoundTrip(t *testing.T) {
	lg := Layout()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			pos, ok := lg.Position(lg.At(r, c))
			require.True(t, ok)
			assert.Equal(t, Position{Row: r, Col: c}, pos)
		}
	}
}

func TestPositionUnknownChannel(t *testing.T) {
	lg := Layout()
	for _, ch := range []int{-1, 0, 513, 1024} {
		_, ok := lg.Position(ch)
		assert.Falsef(t, ok, "channel %d should not be on the flowcell", ch)
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Layout().Validate())
}

func TestValidateDetectsCorruption(t *testing.T) {
	lg := Layout()
	lg.cells[0][0] = lg.cells[0][1]
	err := lg.Validate()
	require.Error(t, err)
}
