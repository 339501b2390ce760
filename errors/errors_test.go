package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrapf(ErrSizeMismatch, "description #%d", 3)
	require.NotNil(t, err)
	assert.True(t, Is(err, ErrSizeMismatch))
	assert.Contains(t, err.Error(), "description #3")
	assert.Contains(t, err.Error(), "size mismatch")
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrSchema,
		ErrSizeMismatch,
		ErrUnknownDistribution,
		ErrMalformedParameter,
		ErrParameterDomain,
		ErrMisalignedInputs,
		ErrIncompleteDescription,
		ErrUnknownBackend,
		ErrSampleExists,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b), "sentinel %d should not match sentinel %d", i, j)
		}
	}
}

func TestIsParameterError(t *testing.T) {
	assert.True(t, IsParameterError(Wrap(ErrMalformedParameter, "mean")))
	assert.True(t, IsParameterError(Wrap(ErrParameterDomain, "variance")))
	assert.False(t, IsParameterError(ErrSchema))
	assert.False(t, IsParameterError(nil))
}

func TestDoubleWrapKeepsCause(t *testing.T) {
	inner := Wrapf(ErrParameterDomain, "variance must be non-negative, got %v", -1.0)
	outer := Wrapf(inner, "description #%d distribution at position %d is invalid", 0, 1)

	assert.True(t, Is(outer, ErrParameterDomain))
	assert.Contains(t, outer.Error(), "variance must be non-negative")
	assert.Contains(t, outer.Error(), "position 1")
}
