package summary

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises a read set the way the report presents it.
type Stats struct {
	Reads        int
	TotalBases   float64
	MeanLength   float64
	MedianLength float64
	MaxLength    float64
	N50          float64
	MeanQual     float64
	MedianQual   float64
}

// Describe computes summary statistics over a read set.
func Describe(rs *ReadSet) Stats {
	st := Stats{Reads: rs.Len()}
	if rs.Len() == 0 {
		return st
	}
	st.TotalBases = floats.Sum(rs.Lengths)
	st.MeanLength = stat.Mean(rs.Lengths, nil)
	st.MaxLength = floats.Max(rs.Lengths)
	st.MedianLength = median(rs.Lengths)
	st.N50 = N50(rs.Lengths)
	if rs.HasQuals() {
		st.MeanQual = stat.Mean(rs.Quals, nil)
		st.MedianQual = median(rs.Quals)
	}
	return st
}

// N50 returns the length of the shortest read in the minimal set of longest
// reads covering half of the total bases.
func N50(lengths []float64) float64 {
	if len(lengths) == 0 {
		return 0
	}
	sorted := append([]float64(nil), lengths...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	half := floats.Sum(sorted) / 2
	var cum float64
	for _, l := range sorted {
		cum += l
		if cum >= half {
			return l
		}
	}
	return sorted[len(sorted)-1]
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// String renders the statistics as the general summary block of the
// NanoStats file.
func (s Stats) String() string {
	p := message.NewPrinter(language.English)
	var b strings.Builder
	b.WriteString("General summary:\n")
	p.Fprintf(&b, "Number of reads:      %d\n", s.Reads)
	p.Fprintf(&b, "Total bases:          %.0f\n", s.TotalBases)
	p.Fprintf(&b, "Median read length:   %.1f\n", s.MedianLength)
	p.Fprintf(&b, "Mean read length:     %.1f\n", s.MeanLength)
	p.Fprintf(&b, "Max read length:      %.0f\n", s.MaxLength)
	p.Fprintf(&b, "Read length N50:      %.0f\n", s.N50)
	if s.MeanQual > 0 {
		p.Fprintf(&b, "Mean read quality:    %.1f\n", s.MeanQual)
		p.Fprintf(&b, "Median read quality:  %.1f\n", s.MedianQual)
	}
	return b.String()
}
