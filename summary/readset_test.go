package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timedReadSet() *ReadSet {
	return &ReadSet{
		Lengths:   []float64{100, 200, 300},
		Quals:     []float64{10, 11, 12},
		Channels:  []int{1, 2, 3},
		StartSecs: []float64{50, 0, 25},
	}
}

func TestSortedByTime(t *testing.T) {
	rs := timedReadSet()
	sorted := rs.SortedByTime()

	assert.Equal(t, []float64{0, 25, 50}, sorted.StartSecs)
	assert.Equal(t, []float64{200, 300, 100}, sorted.Lengths)
	assert.Equal(t, []float64{11, 12, 10}, sorted.Quals)
	assert.Equal(t, []int{2, 3, 1}, sorted.Channels)
	// The receiver keeps its original order.
	assert.Equal(t, []float64{50, 0, 25}, rs.StartSecs)
}

func TestBefore(t *testing.T) {
	rs := timedReadSet().SortedByTime()
	head := rs.Before(50)

	assert.Equal(t, 2, head.Len())
	assert.Equal(t, []float64{0, 25}, head.StartSecs)
	assert.Equal(t, []float64{200, 300}, head.Lengths)
}

func TestTimeSpan(t *testing.T) {
	rs := &ReadSet{
		Lengths:   []float64{1, 1},
		StartSecs: []float64{0, 3600},
	}
	assert.Equal(t, time.Hour, rs.TimeSpan())

	empty := &ReadSet{Lengths: []float64{1}}
	assert.Equal(t, time.Duration(0), empty.TimeSpan())
}

func TestDownsample(t *testing.T) {
	rs := &ReadSet{
		Lengths:   []float64{1, 2, 3, 4, 5, 6, 7, 8},
		StartSecs: []float64{0, 1, 2, 3, 4, 5, 6, 7},
	}
	small := rs.Downsample(3)
	require.Equal(t, 3, small.Len())

	// The subset keeps the original ordering.
	for i := 1; i < small.Len(); i++ {
		assert.Less(t, small.StartSecs[i-1], small.StartSecs[i])
	}
	for i := range small.Lengths {
		assert.Equal(t, small.StartSecs[i]+1, small.Lengths[i])
	}
}

func TestDownsampleNoop(t *testing.T) {
	rs := timedReadSet()
	assert.Same(t, rs, rs.Downsample(0))
	assert.Same(t, rs, rs.Downsample(3))
	assert.Same(t, rs, rs.Downsample(100))
}
