package cycloid

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a parameter set failed validation.
	ErrValidation = errors.New("validation error")

	// ErrUnsupportedVersion indicates a persisted result uses an unknown format version.
	ErrUnsupportedVersion = errors.New("unsupported version")
)
