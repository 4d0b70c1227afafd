// Package errors provides error handling for the bundle generator.
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
//	if err := hasher.Hash(data); err != nil {
//	    return errors.Wrap(err, "failed to hash accessor")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "rename the target")
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
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors. Wrap or Mark these to add context while keeping
// errors.Is() checks working.
var (
	// ErrHashFailed indicates the content hasher could not digest generated bytes
	ErrHashFailed = New("content hash failed")

	// ErrTargetNameCollision indicates a synthesized bundle target would shadow an existing target
	ErrTargetNameCollision = New("target name collision")

	// ErrInvalidManifest indicates a project manifest could not be decoded into a graph
	ErrInvalidManifest = New("invalid manifest")

	// ErrUnknownHasher indicates the configured hashing algorithm is not supported
	ErrUnknownHasher = New("unknown hashing algorithm")

	// ErrNotFound indicates the requested file or resource does not exist
	ErrNotFound = New("not found")

	// ErrOutOfDate indicates generated files on disk differ from what would be generated
	ErrOutOfDate = New("generated files are out of date")
)

// IsHashFailure checks if an error is or wraps ErrHashFailed
func IsHashFailure(err error) bool {
	return err != nil && Is(err, ErrHashFailed)
}

// IsNameCollision checks if an error is or wraps ErrTargetNameCollision
func IsNameCollision(err error) bool {
	return err != nil && Is(err, ErrTargetNameCollision)
}

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}
