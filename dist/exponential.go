package dist

import (
	"math/rand"

	"github.com/teranos/cpdgen/errors"
)

// ExponentialName is the canonical name of the exponential distribution.
const ExponentialName = "exponential"

// RateKey is the rate (lambda) parameter of the exponential distribution.
const RateKey = "rate"

// Exponential is the exponential distribution with rate parameter lambda.
type Exponential struct {
	rate float64
}

func init() {
	Register(ExponentialName, func(params map[string]string) (Distribution, error) {
		return ExponentialFromParams(params)
	})
}

// NewExponential constructs an exponential distribution, rejecting
// non-positive rates.
func NewExponential(rate float64) (*Exponential, error) {
	if rate <= 0 {
		return nil, errors.Wrapf(errors.ErrParameterDomain,
			"%s: %q must be positive, got %v", ExponentialName, RateKey, rate)
	}
	return &Exponential{rate: rate}, nil
}

// ExponentialFromParams constructs an exponential distribution from string
// parameters.
func ExponentialFromParams(params map[string]string) (*Exponential, error) {
	if err := exactKeys(ExponentialName, params, RateKey); err != nil {
		return nil, err
	}
	rate, err := floatParam(params, RateKey)
	if err != nil {
		return nil, errors.Wrap(err, ExponentialName)
	}
	return NewExponential(rate)
}

// Name implements Distribution.
func (d *Exponential) Name() string { return ExponentialName }

// Params implements Distribution.
func (d *Exponential) Params() map[string]string {
	return map[string]string{
		RateKey: formatFloat(d.rate),
	}
}

// Sample implements Distribution.
func (d *Exponential) Sample(n int) ([]float64, error) {
	return draw(n, func(r *rand.Rand) float64 {
		return r.ExpFloat64() / d.rate
	})
}
