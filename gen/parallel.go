package gen

import (
	"sync"

	"github.com/teranos/cpdgen/dist"
	"github.com/teranos/cpdgen/errors"
)

// parallelGenerator draws segments concurrently. Each segment is a pure
// function of its own distribution and length, so the only ordering that
// matters is reassembly: segments are written back by segment index, never
// by completion order, preserving the change-point layout.
type parallelGenerator struct{}

// GenerateSample implements Generator.
func (g *parallelGenerator) GenerateSample(distributions []dist.Distribution, lengths []int) ([]float64, error) {
	if err := checkAligned(distributions, lengths); err != nil {
		return nil, err
	}

	segments := make([][]float64, len(distributions))
	segmentErrs := make([]error, len(distributions))

	var wg sync.WaitGroup
	for j := range distributions {
		wg.Add(1)
		go func(j int) {
			defer wg.Done()
			segment, err := distributions[j].Sample(lengths[j])
			if err != nil {
				segmentErrs[j] = errors.Wrapf(err, "segment %d", j)
				return
			}
			segments[j] = segment
		}(j)
	}
	wg.Wait()

	for _, err := range segmentErrs {
		if err != nil {
			return nil, err
		}
	}

	sample := make([]float64, 0, totalLength(lengths))
	for _, segment := range segments {
		sample = append(sample, segment...)
	}
	return sample, nil
}
