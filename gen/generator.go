// Package gen synthesizes numeric samples from a dataset description's
// distributions and segment lengths.
//
// Backends differ only in how the per-segment sampling calls are scheduled;
// segmentation and concatenation semantics are fixed: segment j's values
// occupy the half-open range between consecutive change points, in segment
// order, with no shuffling, padding, or overlap.
package gen

import (
	"sort"

	"github.com/teranos/cpdgen/dist"
	"github.com/teranos/cpdgen/errors"
)

// Generator produces one concatenated sample from index-aligned
// distributions and segment lengths.
type Generator interface {
	// GenerateSample draws lengths[j] values from distributions[j] for each
	// j and concatenates the segments in index order. The result has length
	// sum(lengths).
	GenerateSample(distributions []dist.Distribution, lengths []int) ([]float64, error)
}

// Backend identifiers.
const (
	SerialBackend   = "serial"
	ParallelBackend = "parallel"

	// DefaultBackend is used when no backend is selected.
	DefaultBackend = SerialBackend
)

var backends = map[string]func() Generator{
	SerialBackend:   func() Generator { return &serialGenerator{} },
	ParallelBackend: func() Generator { return &parallelGenerator{} },
}

// ForBackend returns the generator registered under the given identifier.
func ForBackend(name string) (Generator, error) {
	ctor, ok := backends[name]
	if !ok {
		return nil, errors.WithHintf(
			errors.Wrapf(errors.ErrUnknownBackend, "%q", name),
			"available backends: %v", Backends(),
		)
	}
	return ctor(), nil
}

// Backends returns the registered backend identifiers, sorted.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// checkAligned rejects mismatched input sequences before any sampling
// happens. Unreachable through a well-formed SampleDescription, but the
// generator must not silently truncate.
func checkAligned(distributions []dist.Distribution, lengths []int) error {
	if len(distributions) != len(lengths) {
		return errors.Wrapf(errors.ErrMisalignedInputs,
			"%d distributions but %d lengths", len(distributions), len(lengths))
	}
	return nil
}

func totalLength(lengths []int) int {
	total := 0
	for _, n := range lengths {
		total += n
	}
	return total
}
