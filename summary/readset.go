// Package summary reads sequencing summary files produced by nanopore
// basecallers and derives per dataset statistics from them.
package summary

import (
	"math/rand"
	"sort"
	"time"
)

// ReadSet holds the per read columns extracted from a sequencing summary
// file. All slices are parallel: index i describes the same read. Optional
// columns that were absent from the file stay nil.
type ReadSet struct {
	Dataset   string
	Lengths   []float64
	Quals     []float64
	Channels  []int
	StartSecs []float64
	Skipped   int
}

// Len returns the number of reads.
func (rs *ReadSet) Len() int { return len(rs.Lengths) }

// HasQuals reports whether a quality column was present.
func (rs *ReadSet) HasQuals() bool { return len(rs.Quals) > 0 }

// HasChannels reports whether a channel column was present.
func (rs *ReadSet) HasChannels() bool { return len(rs.Channels) > 0 }

// HasTimes reports whether a start time column was present.
func (rs *ReadSet) HasTimes() bool { return len(rs.StartSecs) > 0 }

// TimeSpan returns the duration between the earliest and latest read start.
func (rs *ReadSet) TimeSpan() time.Duration {
	if !rs.HasTimes() {
		return 0
	}
	min, max := rs.StartSecs[0], rs.StartSecs[0]
	for _, t := range rs.StartSecs {
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
	}
	return time.Duration((max - min) * float64(time.Second))
}

// SortedByTime returns a copy of the read set ordered by start time.
func (rs *ReadSet) SortedByTime() *ReadSet {
	idx := make([]int, rs.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return rs.StartSecs[idx[a]] < rs.StartSecs[idx[b]]
	})
	return rs.reorder(idx)
}

// Before returns the reads starting earlier than limit seconds after the
// run start. The receiver must already be sorted by start time.
func (rs *ReadSet) Before(limit float64) *ReadSet {
	n := sort.SearchFloat64s(rs.StartSecs, limit)
	return &ReadSet{
		Dataset:   rs.Dataset,
		Lengths:   rs.Lengths[:n],
		Quals:     headFloats(rs.Quals, n),
		Channels:  headInts(rs.Channels, n),
		StartSecs: rs.StartSecs[:n],
		Skipped:   rs.Skipped,
	}
}

// Downsample returns a random subset of at most n reads, keeping the
// original order. A non positive n returns the receiver unchanged.
func (rs *ReadSet) Downsample(n int) *ReadSet {
	if n <= 0 || n >= rs.Len() {
		return rs
	}
	idx := rand.Perm(rs.Len())[:n]
	sort.Ints(idx)
	return rs.reorder(idx)
}

func (rs *ReadSet) reorder(idx []int) *ReadSet {
	out := &ReadSet{Dataset: rs.Dataset, Skipped: rs.Skipped}
	out.Lengths = make([]float64, len(idx))
	for i, j := range idx {
		out.Lengths[i] = rs.Lengths[j]
	}
	if rs.HasQuals() {
		out.Quals = make([]float64, len(idx))
		for i, j := range idx {
			out.Quals[i] = rs.Quals[j]
		}
	}
	if rs.HasChannels() {
		out.Channels = make([]int, len(idx))
		for i, j := range idx {
			out.Channels[i] = rs.Channels[j]
		}
	}
	if rs.HasTimes() {
		out.StartSecs = make([]float64, len(idx))
		for i, j := range idx {
			out.StartSecs[i] = rs.StartSecs[j]
		}
	}
	return out
}

func headFloats(s []float64, n int) []float64 {
	if len(s) == 0 {
		return nil
	}
	return s[:n]
}

func headInts(s []int, n int) []int {
	if len(s) == 0 {
		return nil
	}
	return s[:n]
}
