// Package dataset holds the validated description of one benchmark dataset:
// its name, segment layout, and per-segment distributions, with the
// ground-truth change points derived from the segment lengths.
package dataset

import (
	"github.com/teranos/cpdgen/dist"
)

// SampleDescription is the immutable specification of one dataset instance,
// prior to numeric materialization. Segment i has length Lengths()[i] and
// draws from Distributions()[i]. Construct through Builder.
type SampleDescription struct {
	name          string
	lengths       []int
	distributions []dist.Distribution
}

// Name returns the dataset's identifying name.
func (d *SampleDescription) Name() string { return d.name }

// Lengths returns the ordered per-segment lengths. The returned slice is a
// copy; mutating it does not affect the description.
func (d *SampleDescription) Lengths() []int {
	lengths := make([]int, len(d.lengths))
	copy(lengths, d.lengths)
	return lengths
}

// Distributions returns the ordered per-segment distributions, index-aligned
// with Lengths.
func (d *SampleDescription) Distributions() []dist.Distribution {
	distributions := make([]dist.Distribution, len(d.distributions))
	copy(distributions, d.distributions)
	return distributions
}

// Segments returns the number of segments.
func (d *SampleDescription) Segments() int { return len(d.lengths) }

// TotalLength returns the length of the full concatenated sample.
func (d *SampleDescription) TotalLength() int {
	total := 0
	for _, n := range d.lengths {
		total += n
	}
	return total
}

// Changepoints returns the ground-truth change-point indices: the exclusive
// prefix sums of the segment lengths, excluding the final whole-length sum.
// For lengths [20, 20, 10] the change points are [20, 40].
func (d *SampleDescription) Changepoints() []int {
	if len(d.lengths) <= 1 {
		return []int{}
	}
	changepoints := make([]int, 0, len(d.lengths)-1)
	offset := 0
	for _, n := range d.lengths[:len(d.lengths)-1] {
		offset += n
		changepoints = append(changepoints, offset)
	}
	return changepoints
}
