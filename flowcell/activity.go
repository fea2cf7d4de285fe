package flowcell

// ActivityGrid holds per cell read counts aggregated from channel numbers.
type ActivityGrid struct {
	counts [Rows][Cols]int
	total  int
}

// Aggregate counts how many reads each channel produced and places the
// counts on the grid. Channel numbers without a cell are ignored; the
// number of ignored reads is returned alongside the grid.
func (lg *LayoutGrid) Aggregate(channels []int) (*ActivityGrid, int) {
	ag := &ActivityGrid{}
	dropped := 0
	for _, ch := range channels {
		pos, ok := lg.index[ch]
		if !ok {
			dropped++
			continue
		}
		ag.counts[pos.Row][pos.Col]++
		ag.total++
	}
	return ag, dropped
}

// At returns the read count of the given cell.
func (ag *ActivityGrid) At(r, c int) int { return ag.counts[r][c] }

// Total returns the number of reads placed on the grid.
func (ag *ActivityGrid) Total() int { return ag.total }

// Max returns the highest read count of any cell.
func (ag *ActivityGrid) Max() int {
	m := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if ag.counts[r][c] > m {
				m = ag.counts[r][c]
			}
		}
	}
	return m
}
