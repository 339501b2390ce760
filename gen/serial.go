package gen

import (
	"github.com/teranos/cpdgen/dist"
	"github.com/teranos/cpdgen/errors"
)

// serialGenerator draws segments strictly in segment order.
type serialGenerator struct{}

// GenerateSample implements Generator.
func (g *serialGenerator) GenerateSample(distributions []dist.Distribution, lengths []int) ([]float64, error) {
	if err := checkAligned(distributions, lengths); err != nil {
		return nil, err
	}

	sample := make([]float64, 0, totalLength(lengths))
	for j := range distributions {
		segment, err := distributions[j].Sample(lengths[j])
		if err != nil {
			return nil, errors.Wrapf(err, "segment %d", j)
		}
		sample = append(sample, segment...)
	}
	return sample, nil
}
