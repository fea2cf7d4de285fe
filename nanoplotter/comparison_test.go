package nanoplotter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comparisonData() (names []string, values [][]float64) {
	names = []string{"run1", "run2"}
	values = make([][]float64, 2)
	for i := 0; i < 60; i++ {
		values[0] = append(values[0], float64(400+(i*97)%3000))
		values[1] = append(values[1], float64(900+(i*61)%5000))
	}
	return names, values
}

func TestViolinOrBoxViolin(t *testing.T) {
	names, values := comparisonData()
	prefix := filepath.Join(t.TempDir(), "cmp_")

	p, err := ViolinOrBox(names, values, "Read length", true, false, prefix, testOptions())
	require.NoError(t, err)
	assert.Equal(t, prefix+"NanoComp_Read_length.svg", p.Path)
	assert.Equal(t, "Comparing Read length", p.Title)
	_, err = os.Stat(p.Path)
	assert.NoError(t, err)
}

func TestViolinOrBoxBox(t *testing.T) {
	names, values := comparisonData()
	prefix := filepath.Join(t.TempDir(), "cmp_")

	p, err := ViolinOrBox(names, values, "quals", false, false, prefix, testOptions())
	require.NoError(t, err)
	assert.Equal(t, prefix+"NanoComp_quals.svg", p.Path)
	_, err = os.Stat(p.Path)
	assert.NoError(t, err)
}

func TestViolinOrBoxLogScale(t *testing.T) {
	names := []string{"run1", "run2"}
	values := [][]float64{{2.1, 2.7, 3.0, 3.3, 3.9}, {2.5, 2.9, 3.4, 3.8, 4.1}}
	prefix := filepath.Join(t.TempDir(), "cmp_")

	p, err := ViolinOrBox(names, values, "log transformed read lengths", true, true, prefix, testOptions())
	require.NoError(t, err)
	assert.Equal(t, prefix+"NanoComp_log_transformed_read_lengths.svg", p.Path)
}

func TestViolinOrBoxMismatch(t *testing.T) {
	_, err := ViolinOrBox([]string{"a", "b"}, [][]float64{{1}}, "lengths", true, false, "x", testOptions())
	assert.Error(t, err)
}

func TestViolinPolygonOutline(t *testing.T) {
	poly, err := violinPolygon([]float64{5, 6, 7, 8, 9}, 2, violinHalfWidth, CheckColor(DefaultColor))
	require.NoError(t, err)
	require.Len(t, poly.XYs, 1)

	// The outline stays inside the half width band around its center.
	for _, pt := range poly.XYs[0] {
		assert.GreaterOrEqual(t, pt.X, 2-violinHalfWidth-1e-9)
		assert.LessOrEqual(t, pt.X, 2+violinHalfWidth+1e-9)
	}
}

func TestViolinPolygonConstantValues(t *testing.T) {
	poly, err := violinPolygon([]float64{4, 4, 4}, 0, violinHalfWidth, CheckColor(DefaultColor))
	require.NoError(t, err)
	require.Len(t, poly.XYs, 1)
	assert.Len(t, poly.XYs[0], 2*violinPoints)
}

func TestOutputBarplot(t *testing.T) {
	names := []string{"run1", "run2"}
	lengths := [][]float64{{1000, 2000, 3000}, {500, 500}}
	prefix := filepath.Join(t.TempDir(), "cmp_")

	plots, err := OutputBarplot(names, lengths, prefix, testOptions())
	require.NoError(t, err)
	require.Len(t, plots, 2)

	assert.Equal(t, prefix+"NanoComp_number_of_reads.svg", plots[0].Path)
	assert.Equal(t, "Comparing number of reads", plots[0].Title)
	assert.Equal(t, prefix+"NanoComp_total_throughput.svg", plots[1].Path)
	assert.Equal(t, "Comparing total throughput", plots[1].Title)
	for _, p := range plots {
		_, err := os.Stat(p.Path)
		assert.NoError(t, err, p.Path)
	}
}

func TestOutputBarplotMismatch(t *testing.T) {
	_, err := OutputBarplot([]string{"a"}, nil, "x", testOptions())
	assert.Error(t, err)
}
