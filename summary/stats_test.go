package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestN50(t *testing.T) {
	// Total 32 bases, the two longest reads cover half of them.
	assert.Equal(t, 8.0, N50([]float64{2, 2, 2, 3, 3, 4, 8, 8}))
	// A single dominant read is its own N50.
	assert.Equal(t, 10.0, N50([]float64{1, 1, 1, 1, 10}))
	assert.Equal(t, 5.0, N50([]float64{5}))
	assert.Equal(t, 0.0, N50(nil))
}

func TestDescribe(t *testing.T) {
	rs := &ReadSet{
		Lengths: []float64{100, 200, 300, 400, 500},
		Quals:   []float64{10, 12, 14, 16, 18},
	}
	st := Describe(rs)

	assert.Equal(t, 5, st.Reads)
	assert.Equal(t, 1500.0, st.TotalBases)
	assert.Equal(t, 300.0, st.MeanLength)
	assert.Equal(t, 300.0, st.MedianLength)
	assert.Equal(t, 500.0, st.MaxLength)
	assert.Equal(t, 400.0, st.N50)
	assert.Equal(t, 14.0, st.MeanQual)
	assert.Equal(t, 14.0, st.MedianQual)
}

func TestDescribeWithoutQuals(t *testing.T) {
	st := Describe(&ReadSet{Lengths: []float64{100, 200, 300}})
	assert.Equal(t, 3, st.Reads)
	assert.Equal(t, 0.0, st.MeanQual)
}

func TestDescribeEmpty(t *testing.T) {
	st := Describe(&ReadSet{})
	assert.Equal(t, 0, st.Reads)
	assert.Equal(t, 0.0, st.TotalBases)
}

func TestStatsString(t *testing.T) {
	st := Stats{
		Reads:        12345,
		TotalBases:   67890123,
		MeanLength:   5500.4,
		MedianLength: 4200.0,
		MaxLength:    98765,
		N50:          8100,
		MeanQual:     10.6,
		MedianQual:   10.9,
	}
	out := st.String()

	assert.Contains(t, out, "General summary:")
	assert.Contains(t, out, "12,345")
	assert.Contains(t, out, "67,890,123")
	assert.Contains(t, out, "Read length N50")
	assert.Contains(t, out, "Mean read quality")
}
