// Package flowcell maps MinION channel numbers onto the physical layout of
// the flowcell and aggregates per channel read activity.
//
// The layout follows https://bioinformatics.stackexchange.com/a/749/681:
// channels are wired in blocks of 64, each block covering four columns of
// the grid with an ascending top half and a descending bottom half.
package flowcell

import "fmt"

// Grid dimensions of a MinION flowcell.
const (
	Rows     = 16
	Cols     = 32
	Channels = 512
)

// Seed channels for each block of 64. The top seed starts the ascending
// runs in rows 0-7, the bottom seed starts the descending runs in rows 8-15.
var (
	topSeeds    = [8]int{33, 481, 417, 353, 289, 225, 161, 97}
	bottomSeeds = [8]int{8, 456, 392, 328, 264, 200, 136, 72}
)

// Position is a cell on the flowcell grid, zero based.
type Position struct {
	Row int
	Col int
}

// LayoutGrid holds the channel number of every grid cell together with the
// reverse mapping from channel number to cell.
type LayoutGrid struct {
	cells [Rows][Cols]int
	index map[int]Position
}

// Layout builds the physical layout of a 512 channel MinION flowcell.
func Layout() *LayoutGrid {
	lg := &LayoutGrid{index: make(map[int]Position, Channels)}
	for k := 0; k < len(topSeeds); k++ {
		for n := 0; n < 4; n++ {
			col := k*4 + n
			for m := 0; m < 8; m++ {
				lg.cells[m][col] = topSeeds[k] + n*8 + m
				lg.cells[8+m][col] = bottomSeeds[k] + n*8 - m
			}
		}
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			lg.index[lg.cells[r][c]] = Position{Row: r, Col: c}
		}
	}
	return lg
}

// At returns the channel number at the given cell.
func (lg *LayoutGrid) At(r, c int) int {
	return lg.cells[r][c]
}

// Position returns the cell holding the given channel number and reports
// whether that channel exists on the flowcell.
func (lg *LayoutGrid) Position(channel int) (Position, bool) {
	pos, ok := lg.index[channel]
	return pos, ok
}

// Validate checks that every channel from 1 to Channels appears exactly once.
func (lg *LayoutGrid) Validate() error {
	seen := make(map[int]int, Channels)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			seen[lg.cells[r][c]]++
		}
	}
	for ch := 1; ch <= Channels; ch++ {
		switch n := seen[ch]; {
		case n == 0:
			return fmt.Errorf("channel %d missing from layout", ch)
		case n > 1:
			return fmt.Errorf("channel %d mapped %d times", ch, n)
		}
	}
	return nil
}
