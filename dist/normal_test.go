package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cpdgen/errors"
)

func TestNormalFromParams(t *testing.T) {
	d, err := NormalFromParams(map[string]string{MeanKey: "2.5", VarianceKey: "4"})
	require.NoError(t, err)
	assert.Equal(t, 2.5, d.Mean())
	assert.Equal(t, 4.0, d.Variance())
	assert.Equal(t, NormalName, d.Name())
	assert.Equal(t, map[string]string{MeanKey: "2.5", VarianceKey: "4"}, d.Params())
}

func TestNormalNegativeVarianceIsDomainError(t *testing.T) {
	_, err := NormalFromParams(map[string]string{MeanKey: "0.0", VarianceKey: "-1.0"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrParameterDomain))
	assert.False(t, errors.Is(err, errors.ErrMalformedParameter))
}

func TestNormalMissingVariance(t *testing.T) {
	_, err := NormalFromParams(map[string]string{MeanKey: "0.0"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMalformedParameter))
	assert.Contains(t, err.Error(), VarianceKey)
}

func TestNormalWrongKeysRejectedByName(t *testing.T) {
	// Two parameters, neither of them the required ones. Validation is by
	// named key presence, so the count being right must not matter.
	_, err := NormalFromParams(map[string]string{"mu": "0", "sigma": "1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMalformedParameter))
}

func TestNormalExtraKeyRejected(t *testing.T) {
	_, err := NormalFromParams(map[string]string{
		MeanKey: "0", VarianceKey: "1", "skew": "0",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMalformedParameter))
	assert.Contains(t, err.Error(), "skew")
}

func TestNormalUnparsableValue(t *testing.T) {
	_, err := NormalFromParams(map[string]string{MeanKey: "zero", VarianceKey: "1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMalformedParameter))
	assert.Contains(t, err.Error(), "zero")
}

func TestNormalSampleMoments(t *testing.T) {
	Reseed(7)
	d, err := NewNormal(10, 4)
	require.NoError(t, err)

	values, err := d.Sample(20000)
	require.NoError(t, err)
	require.Len(t, values, 20000)

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	assert.InDelta(t, 10.0, mean, 0.1)

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	variance := sq / float64(len(values))
	assert.InDelta(t, 4.0, variance, 0.2)
	assert.InDelta(t, 2.0, math.Sqrt(variance), 0.1)
}

func TestZeroVarianceIsConstant(t *testing.T) {
	d, err := NewNormal(3, 0)
	require.NoError(t, err)

	values, err := d.Sample(16)
	require.NoError(t, err)
	for _, v := range values {
		assert.Equal(t, 3.0, v)
	}
}

func TestUniformDomainError(t *testing.T) {
	_, err := UniformFromParams(map[string]string{LowKey: "2", HighKey: "1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrParameterDomain))
}

func TestUniformSampleRange(t *testing.T) {
	d, err := NewUniform(-1, 1)
	require.NoError(t, err)

	values, err := d.Sample(1000)
	require.NoError(t, err)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
}

func TestExponentialDomainError(t *testing.T) {
	for _, rate := range []string{"0", "-2"} {
		_, err := ExponentialFromParams(map[string]string{RateKey: rate})
		require.Error(t, err, "rate %s", rate)
		assert.True(t, errors.Is(err, errors.ErrParameterDomain))
	}
}

func TestExponentialSamplesNonNegative(t *testing.T) {
	d, err := NewExponential(2)
	require.NoError(t, err)

	values, err := d.Sample(1000)
	require.NoError(t, err)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}
