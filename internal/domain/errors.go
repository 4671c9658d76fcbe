package domain

import "errors"

// Domain errors represent error conditions in the ezladder domain.
// These errors are returned by the public API and can be checked with errors.Is.
// The measurement functions themselves never fail; these belong to the
// configuration and policy layers around them.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("ezladder: invalid configuration")

	// ErrInvalidPolicy is returned when a standoff range or bucket catalog is unusable.
	ErrInvalidPolicy = errors.New("ezladder: invalid standoff policy")

	// ErrUnknownFormat is returned when an output format is not registered.
	ErrUnknownFormat = errors.New("ezladder: unknown output format")

	// ErrUnsupportedPolicyFile is returned for policy files with an unrecognized extension.
	ErrUnsupportedPolicyFile = errors.New("ezladder: unsupported policy file type")
)
