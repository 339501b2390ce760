package dist

import (
	"math/rand"

	"github.com/teranos/cpdgen/errors"
)

// UniformName is the canonical name of the continuous uniform distribution.
const UniformName = "uniform"

// Parameter keys for the uniform distribution.
const (
	LowKey  = "low"
	HighKey = "high"
)

// Uniform is the continuous uniform distribution on [low, high).
type Uniform struct {
	low  float64
	high float64
}

func init() {
	Register(UniformName, func(params map[string]string) (Distribution, error) {
		return UniformFromParams(params)
	})
}

// NewUniform constructs a uniform distribution, rejecting low > high.
func NewUniform(low, high float64) (*Uniform, error) {
	if low > high {
		return nil, errors.Wrapf(errors.ErrParameterDomain,
			"%s: %q (%v) must not exceed %q (%v)", UniformName, LowKey, low, HighKey, high)
	}
	return &Uniform{low: low, high: high}, nil
}

// UniformFromParams constructs a uniform distribution from string parameters.
func UniformFromParams(params map[string]string) (*Uniform, error) {
	if err := exactKeys(UniformName, params, LowKey, HighKey); err != nil {
		return nil, err
	}
	low, err := floatParam(params, LowKey)
	if err != nil {
		return nil, errors.Wrap(err, UniformName)
	}
	high, err := floatParam(params, HighKey)
	if err != nil {
		return nil, errors.Wrap(err, UniformName)
	}
	return NewUniform(low, high)
}

// Name implements Distribution.
func (d *Uniform) Name() string { return UniformName }

// Params implements Distribution.
func (d *Uniform) Params() map[string]string {
	return map[string]string{
		LowKey:  formatFloat(d.low),
		HighKey: formatFloat(d.high),
	}
}

// Sample implements Distribution.
func (d *Uniform) Sample(n int) ([]float64, error) {
	span := d.high - d.low
	return draw(n, func(r *rand.Rand) float64 {
		return d.low + r.Float64()*span
	})
}
