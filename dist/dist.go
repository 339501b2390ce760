// Package dist models the parametric distribution families a dataset segment
// can draw from.
//
// Every variant is identified by a canonical name string ("normal",
// "uniform", "exponential") and a string-keyed parameter map. Names and
// parameter maps are the wire format: they appear verbatim in generation
// configs and in rendered dataset descriptions, and FromStr reconstructs an
// equivalent distribution from them.
package dist

import (
	"sort"
	"strconv"

	"github.com/teranos/cpdgen/errors"
)

// Distribution is the capability contract every variant satisfies.
// Implementations are immutable after construction: a constructor either
// returns a fully specified, in-domain instance or an error.
type Distribution interface {
	// Name returns the canonical name used for registry lookup and
	// serialization.
	Name() string

	// Params returns the string-serialized parameters. Feeding the result
	// back through FromStr with Name reconstructs an equivalent instance.
	Params() map[string]string

	// Sample draws n independent values under the distribution's law.
	// n == 0 yields an empty slice, never an error.
	Sample(n int) ([]float64, error)
}

// Constructor builds a variant from its string-serialized parameters.
type Constructor func(params map[string]string) (Distribution, error)

// registry maps canonical names to constructors. Populated by variant init
// functions, read-only afterwards, so concurrent lookups are safe.
var registry = map[string]Constructor{}

// Register adds a variant constructor under its canonical name.
// Call from an init function; registering a duplicate name panics.
func Register(name string, ctor Constructor) {
	if _, dup := registry[name]; dup {
		panic("dist: Register called twice for distribution " + name)
	}
	registry[name] = ctor
}

// FromStr constructs a distribution from its canonical name and parameters.
// Unrecognized names return ErrUnknownDistribution; parameter failures carry
// ErrMalformedParameter or ErrParameterDomain from the variant constructor.
func FromStr(name string, params map[string]string) (Distribution, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, errors.WithHintf(
			errors.Wrapf(errors.ErrUnknownDistribution, "%q", name),
			"registered distributions: %v", Names(),
		)
	}
	return ctor(params)
}

// Names returns the canonical names of all registered variants, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// floatParam extracts and parses a required float parameter by name.
func floatParam(params map[string]string, key string) (float64, error) {
	raw, ok := params[key]
	if !ok {
		return 0, errors.Wrapf(errors.ErrMalformedParameter, "missing required parameter %q", key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrMalformedParameter, "parameter %q: %q is not a number", key, raw)
	}
	return v, nil
}

// formatFloat renders a parameter value in its canonical serialized form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
