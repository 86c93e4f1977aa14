// Package errors provides error handling for declgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for user-facing messages
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
//	if errors.Is(err, errors.ErrInvalidDocument) {
//	    // handle malformed input
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
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Sentinel errors for use across declgen.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidDocument indicates a declaration document that violates
	// the structural invariants the translator normally guarantees
	ErrInvalidDocument = New("invalid declaration document")

	// ErrTranslation indicates the upstream translation of the interface
	// document failed; the generator propagates it without partial output
	ErrTranslation = New("translation failed")

	// ErrNotFound indicates the requested file or resource does not exist
	ErrNotFound = New("not found")
)

// IsInvalidDocumentError checks if an error is or wraps ErrInvalidDocument
func IsInvalidDocumentError(err error) bool {
	return err != nil && Is(err, ErrInvalidDocument)
}

// IsTranslationError checks if an error is or wraps ErrTranslation
func IsTranslationError(err error) bool {
	return err != nil && Is(err, ErrTranslation)
}
