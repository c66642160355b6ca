package sql

import (
	"errors"
	"fmt"
)

// SetupHint is the remediation shown to users when the store cannot be reached
// or the database has not been created yet.
const SetupHint = "Database not available. Please use Setup page to create the database."

var (
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrStoreNotProvisioned = errors.New("store not provisioned")
	ErrInvalidIdentifier   = errors.New("invalid identifier")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrQueryFailed         = errors.New("query failed")
	ErrRecordNotFound      = errors.New("record not found")
)

// IsProvisioningError reports whether err should send the user to the setup flow
// instead of showing a generic failure.
func IsProvisioningError(err error) bool {
	return errors.Is(err, ErrStoreNotProvisioned) || errors.Is(err, ErrStoreUnavailable)
}

func unavailableError(dialect Dialect, cause error) error {
	if dialect.IsNotProvisioned(cause) {
		return fmt.Errorf("%w: %w: %s: %w", ErrStoreUnavailable, ErrStoreNotProvisioned, SetupHint, cause)
	}
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, SetupHint, cause)
}

func classifyError(dialect Dialect, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrStoreUnavailable),
		errors.Is(err, ErrStoreNotProvisioned),
		errors.Is(err, ErrQueryFailed):
		return err
	case dialect.IsNotProvisioned(err):
		return fmt.Errorf("%w: %s: %w", ErrStoreNotProvisioned, SetupHint, err)
	default:
		return fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
}
