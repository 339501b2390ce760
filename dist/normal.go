package dist

import (
	"math"
	"math/rand"

	"github.com/teranos/cpdgen/errors"
)

// NormalName is the canonical name of the normal distribution.
const NormalName = "normal"

// Parameter keys for the normal distribution.
const (
	MeanKey     = "mean"
	VarianceKey = "variance"
)

// Normal is the normal distribution parameterized by mean and variance.
type Normal struct {
	mean     float64
	variance float64
}

func init() {
	Register(NormalName, func(params map[string]string) (Distribution, error) {
		return NormalFromParams(params)
	})
}

// NewNormal constructs a normal distribution, rejecting negative variance.
func NewNormal(mean, variance float64) (*Normal, error) {
	if variance < 0 {
		return nil, errors.Wrapf(errors.ErrParameterDomain,
			"%s: %q must be non-negative, got %v", NormalName, VarianceKey, variance)
	}
	return &Normal{mean: mean, variance: variance}, nil
}

// NormalFromParams constructs a normal distribution from string parameters.
// Both mean and variance must be present by name; extra keys are rejected.
func NormalFromParams(params map[string]string) (*Normal, error) {
	if err := exactKeys(NormalName, params, MeanKey, VarianceKey); err != nil {
		return nil, err
	}
	mean, err := floatParam(params, MeanKey)
	if err != nil {
		return nil, errors.Wrap(err, NormalName)
	}
	variance, err := floatParam(params, VarianceKey)
	if err != nil {
		return nil, errors.Wrap(err, NormalName)
	}
	return NewNormal(mean, variance)
}

// Name implements Distribution.
func (d *Normal) Name() string { return NormalName }

// Mean returns the distribution's mean.
func (d *Normal) Mean() float64 { return d.mean }

// Variance returns the distribution's variance.
func (d *Normal) Variance() float64 { return d.variance }

// Params implements Distribution.
func (d *Normal) Params() map[string]string {
	return map[string]string{
		MeanKey:     formatFloat(d.mean),
		VarianceKey: formatFloat(d.variance),
	}
}

// Sample implements Distribution.
func (d *Normal) Sample(n int) ([]float64, error) {
	stddev := math.Sqrt(d.variance)
	return draw(n, func(r *rand.Rand) float64 {
		return r.NormFloat64()*stddev + d.mean
	})
}

// exactKeys verifies that params holds exactly the named keys.
// Validation is by key name, not by count, so two wrong keys are rejected
// with the missing key spelled out.
func exactKeys(distName string, params map[string]string, keys ...string) error {
	for _, key := range keys {
		if _, ok := params[key]; !ok {
			return errors.Wrapf(errors.ErrMalformedParameter,
				"%s: missing required parameter %q", distName, key)
		}
	}
	if len(params) != len(keys) {
		for key := range params {
			known := false
			for _, want := range keys {
				if key == want {
					known = true
					break
				}
			}
			if !known {
				return errors.Wrapf(errors.ErrMalformedParameter,
					"%s: unexpected parameter %q", distName, key)
			}
		}
	}
	return nil
}
