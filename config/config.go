// Package config validates and parses dataset generation configs.
//
// A config is an ordered list of dataset descriptions. Each entry names the
// dataset and carries three index-aligned lists: segment lengths, canonical
// distribution names, and distribution parameter maps:
//
//	- name: A
//	  lengths: [5, 5]
//	  distributions: [normal, normal]
//	  parameters:
//	    - mean: "0.0"
//	      variance: "1.0"
//	    - mean: "10.0"
//	      variance: "1.0"
//
// The package is two-phase: Validate performs a fail-fast diagnostic pass
// over the untyped document, and Parse materializes descriptions from input
// that validation has already accepted. Parse's behavior on unvalidated
// input is undefined; callers run Validate first (or use ParseFile, which
// chains the phases).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/teranos/cpdgen/dataset"
	"github.com/teranos/cpdgen/errors"
)

// Config entry field names.
const (
	NameField          = "name"
	LengthsField       = "lengths"
	DistributionsField = "distributions"
	ParametersField    = "parameters"
)

// Load reads a YAML config file into its untyped form: an ordered list of
// entries. Shape of the individual entries is Validate's concern; Load only
// requires the document to be a list.
func Load(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return LoadBytes(data)
}

// LoadBytes decodes YAML config bytes into the untyped entry list.
func LoadBytes(data []byte) ([]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode config YAML")
	}
	entries, ok := doc.([]any)
	if !ok {
		return nil, errors.Wrapf(errors.ErrSchema,
			"config must be a list of dataset descriptions, got %T", doc)
	}
	return entries, nil
}

// ParseFile loads, validates, and parses a YAML config file in one call.
func ParseFile(path string) ([]*dataset.SampleDescription, error) {
	entries, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(entries); err != nil {
		return nil, err
	}
	return Parse(entries)
}

// stringifyScalar renders a YAML scalar parameter value in its string form.
// Quoted values arrive as strings already; bare numerics arrive as int or
// float64 and are serialized back.
func stringifyScalar(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		return value, true
	case int:
		return fmt.Sprint(value), true
	case float64:
		return fmt.Sprint(value), true
	default:
		return "", false
	}
}
