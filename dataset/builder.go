package dataset

import (
	"github.com/teranos/cpdgen/dist"
	"github.com/teranos/cpdgen/errors"
)

// Builder stages the fields of a SampleDescription. All three fields must be
// set before Build; a half-built description is never observable.
type Builder struct {
	name          string
	lengths       []int
	distributions []dist.Distribution
}

// NewBuilder returns an empty description builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetName stages the dataset name.
func (b *Builder) SetName(name string) *Builder {
	b.name = name
	return b
}

// SetLengths stages the ordered per-segment lengths.
func (b *Builder) SetLengths(lengths []int) *Builder {
	b.lengths = lengths
	return b
}

// SetDistributions stages the ordered per-segment distributions.
func (b *Builder) SetDistributions(distributions []dist.Distribution) *Builder {
	b.distributions = distributions
	return b
}

// Build finalizes the staged fields into an immutable SampleDescription.
// The first missing field is reported; staged lengths and distributions must
// be non-empty and of equal size.
func (b *Builder) Build() (*SampleDescription, error) {
	if b.name == "" {
		return nil, errors.Wrap(errors.ErrIncompleteDescription, "name is not set")
	}
	if len(b.lengths) == 0 {
		return nil, errors.Wrap(errors.ErrIncompleteDescription, "lengths are not set")
	}
	if len(b.distributions) == 0 {
		return nil, errors.Wrap(errors.ErrIncompleteDescription, "distributions are not set")
	}
	if len(b.lengths) != len(b.distributions) {
		return nil, errors.Wrapf(errors.ErrIncompleteDescription,
			"%d lengths but %d distributions", len(b.lengths), len(b.distributions))
	}

	lengths := make([]int, len(b.lengths))
	copy(lengths, b.lengths)
	distributions := make([]dist.Distribution, len(b.distributions))
	copy(distributions, b.distributions)

	return &SampleDescription{
		name:          b.name,
		lengths:       lengths,
		distributions: distributions,
	}, nil
}
