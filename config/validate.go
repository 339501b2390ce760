package config

import (
	"github.com/teranos/cpdgen/dist"
	"github.com/teranos/cpdgen/errors"
)

// Validate performs the fail-fast diagnostic pass over an untyped config.
// Checks run per entry, in a fixed order, and the first failure wins:
//
//  1. the entry is a mapping
//  2. name is a non-empty string
//  3. lengths is a non-empty list of integers
//  4. distributions is a non-empty list of strings
//  5. parameters is a non-empty list of mappings
//  6. the three lists have equal size
//  7. every (distribution, parameters) pair constructs via dist.FromStr
//
// Every error names the offending entry index, and step 7 additionally the
// position within the entry, preserving the underlying cause.
func Validate(entries []any) error {
	for i, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			return errors.Wrapf(errors.ErrSchema, "description #%d is not a mapping", i)
		}
		if err := validateName(i, entry); err != nil {
			return err
		}
		lengths, err := validateLengths(i, entry)
		if err != nil {
			return err
		}
		names, err := validateDistributionNames(i, entry)
		if err != nil {
			return err
		}
		params, err := validateParameters(i, entry)
		if err != nil {
			return err
		}
		if len(lengths) != len(names) || len(names) != len(params) {
			return errors.Wrapf(errors.ErrSizeMismatch,
				"description #%d: %s (%d), %s (%d) and %s (%d) must have equal size",
				i, LengthsField, len(lengths), DistributionsField, len(names),
				ParametersField, len(params))
		}
		for j := range names {
			if _, err := dist.FromStr(names[j], params[j]); err != nil {
				return errors.Wrapf(err,
					"description #%d: distribution at position %d is invalid", i, j)
			}
		}
	}
	return nil
}

func validateName(index int, entry map[string]any) error {
	raw, ok := entry[NameField]
	if !ok {
		return errors.Wrapf(errors.ErrSchema,
			"description #%d does not contain a %s", index, NameField)
	}
	name, ok := raw.(string)
	if !ok {
		return errors.Wrapf(errors.ErrSchema,
			"description #%d: %s is not a string", index, NameField)
	}
	if name == "" {
		return errors.Wrapf(errors.ErrSchema,
			"description #%d: %s is empty", index, NameField)
	}
	return nil
}

func validateLengths(index int, entry map[string]any) ([]int, error) {
	list, err := listField(index, entry, LengthsField)
	if err != nil {
		return nil, err
	}
	lengths := make([]int, len(list))
	for j, raw := range list {
		n, ok := raw.(int)
		if !ok {
			return nil, errors.Wrapf(errors.ErrSchema,
				"description #%d: %s[%d] is not an integer", index, LengthsField, j)
		}
		if n < 0 {
			return nil, errors.Wrapf(errors.ErrSchema,
				"description #%d: %s[%d] is negative", index, LengthsField, j)
		}
		lengths[j] = n
	}
	return lengths, nil
}

func validateDistributionNames(index int, entry map[string]any) ([]string, error) {
	list, err := listField(index, entry, DistributionsField)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(list))
	for j, raw := range list {
		name, ok := raw.(string)
		if !ok {
			return nil, errors.Wrapf(errors.ErrSchema,
				"description #%d: %s[%d] is not a string", index, DistributionsField, j)
		}
		names[j] = name
	}
	return names, nil
}

func validateParameters(index int, entry map[string]any) ([]map[string]string, error) {
	list, err := listField(index, entry, ParametersField)
	if err != nil {
		return nil, err
	}
	params := make([]map[string]string, len(list))
	for j, raw := range list {
		mapping, ok := raw.(map[string]any)
		if !ok {
			return nil, errors.Wrapf(errors.ErrSchema,
				"description #%d: %s[%d] is not a mapping", index, ParametersField, j)
		}
		converted := make(map[string]string, len(mapping))
		for key, value := range mapping {
			s, ok := stringifyScalar(value)
			if !ok {
				return nil, errors.Wrapf(errors.ErrSchema,
					"description #%d: %s[%d].%s is not a scalar", index, ParametersField, j, key)
			}
			converted[key] = s
		}
		params[j] = converted
	}
	return params, nil
}

// listField extracts a non-empty list field from an entry.
func listField(index int, entry map[string]any, field string) ([]any, error) {
	raw, ok := entry[field]
	if !ok {
		return nil, errors.Wrapf(errors.ErrSchema,
			"description #%d does not contain a %s list for segments", index, field)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, errors.Wrapf(errors.ErrSchema,
			"description #%d: %s is not a list", index, field)
	}
	if len(list) == 0 {
		return nil, errors.Wrapf(errors.ErrSchema,
			"description #%d: %s is empty", index, field)
	}
	return list, nil
}
