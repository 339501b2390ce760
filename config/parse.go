package config

import (
	"github.com/teranos/cpdgen/dataset"
	"github.com/teranos/cpdgen/dist"
	"github.com/teranos/cpdgen/errors"
)

// Parse materializes an ordered list of sample descriptions from a config
// that Validate has accepted. Output is index-aligned with the input and may
// be iterated any number of times.
//
// Parse reuses the same field extraction as Validate but does not re-check
// conditions validation already guarantees; on unvalidated input the shape
// assertions below fire instead of producing diagnostics.
func Parse(entries []any) ([]*dataset.SampleDescription, error) {
	descriptions := make([]*dataset.SampleDescription, 0, len(entries))
	for i, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			return nil, errors.AssertionFailedf("parse of unvalidated config: entry #%d is not a mapping", i)
		}

		lengths, err := validateLengths(i, entry)
		if err != nil {
			return nil, err
		}
		names, err := validateDistributionNames(i, entry)
		if err != nil {
			return nil, err
		}
		params, err := validateParameters(i, entry)
		if err != nil {
			return nil, err
		}

		distributions := make([]dist.Distribution, len(names))
		for j := range names {
			d, err := dist.FromStr(names[j], params[j])
			if err != nil {
				return nil, errors.Wrapf(err,
					"description #%d: distribution at position %d is invalid", i, j)
			}
			distributions[j] = d
		}

		name, _ := entry[NameField].(string)
		description, err := dataset.NewBuilder().
			SetName(name).
			SetLengths(lengths).
			SetDistributions(distributions).
			Build()
		if err != nil {
			return nil, errors.Wrapf(err, "description #%d", i)
		}
		descriptions = append(descriptions, description)
	}
	return descriptions, nil
}
