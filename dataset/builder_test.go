package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cpdgen/dist"
	"github.com/teranos/cpdgen/errors"
)

func TestBuilderComplete(t *testing.T) {
	desc, err := NewBuilder().
		SetName("full").
		SetLengths([]int{2, 3}).
		SetDistributions([]dist.Distribution{mustNormal(t, 0, 1), mustNormal(t, 5, 1)}).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "full", desc.Name())
	assert.Equal(t, []int{2, 3}, desc.Lengths())
	assert.Len(t, desc.Distributions(), 2)
}

func TestBuilderMissingName(t *testing.T) {
	_, err := NewBuilder().
		SetLengths([]int{2}).
		SetDistributions([]dist.Distribution{mustNormal(t, 0, 1)}).
		Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrIncompleteDescription))
	assert.Contains(t, err.Error(), "name")
}

func TestBuilderMissingLengths(t *testing.T) {
	_, err := NewBuilder().
		SetName("x").
		SetDistributions([]dist.Distribution{mustNormal(t, 0, 1)}).
		Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrIncompleteDescription))
	assert.Contains(t, err.Error(), "lengths")
}

func TestBuilderMissingDistributions(t *testing.T) {
	_, err := NewBuilder().
		SetName("x").
		SetLengths([]int{2}).
		Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrIncompleteDescription))
	assert.Contains(t, err.Error(), "distributions")
}

func TestBuilderLengthMismatch(t *testing.T) {
	_, err := NewBuilder().
		SetName("x").
		SetLengths([]int{2, 3}).
		SetDistributions([]dist.Distribution{mustNormal(t, 0, 1)}).
		Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrIncompleteDescription))
}

func TestBuilderDetachesFromStagedSlices(t *testing.T) {
	lengths := []int{2, 3}
	desc, err := NewBuilder().
		SetName("detached").
		SetLengths(lengths).
		SetDistributions([]dist.Distribution{mustNormal(t, 0, 1), mustNormal(t, 1, 1)}).
		Build()
	require.NoError(t, err)

	lengths[0] = 777
	assert.Equal(t, []int{2, 3}, desc.Lengths())
}
