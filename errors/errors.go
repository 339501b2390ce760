// Package errors provides error handling for cpdgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnknownDistribution) {
//	    // handle unknown distribution
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapOnce    = crdb.UnwrapOnce
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the dataset generation pipeline.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrapf() to add entry/segment context while
// preserving the type.
var (
	// ErrSchema indicates a config field has the wrong shape or type
	ErrSchema = New("invalid config schema")

	// ErrSizeMismatch indicates the parallel lists of a config entry
	// (lengths, distributions, parameters) differ in length
	ErrSizeMismatch = New("size mismatch")

	// ErrUnknownDistribution indicates an unrecognized canonical
	// distribution name
	ErrUnknownDistribution = New("unknown distribution")

	// ErrMalformedParameter indicates a distribution parameter is missing
	// or does not convert to its numeric type
	ErrMalformedParameter = New("malformed parameter")

	// ErrParameterDomain indicates a distribution parameter converted but
	// lies outside the distribution's domain (e.g. negative variance)
	ErrParameterDomain = New("parameter out of domain")

	// ErrMisalignedInputs indicates the generator received distribution and
	// length sequences of different sizes
	ErrMisalignedInputs = New("misaligned inputs")

	// ErrIncompleteDescription indicates Build was called on a description
	// builder with missing or inconsistent fields
	ErrIncompleteDescription = New("incomplete description")

	// ErrUnknownBackend indicates an unrecognized generator backend name
	ErrUnknownBackend = New("unknown generator backend")

	// ErrSampleExists indicates the sink refused to overwrite an existing
	// sample (replace policy disabled)
	ErrSampleExists = New("sample already exists")
)

// IsParameterError reports whether err is a malformed-parameter or
// out-of-domain parameter error. Both abort validation; callers that surface
// diagnostics distinguish them via Is on the individual sentinels.
func IsParameterError(err error) bool {
	return Is(err, ErrMalformedParameter) || Is(err, ErrParameterDomain)
}
