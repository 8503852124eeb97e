// Package errs provides the error taxonomy shared by the store client and
// the browser core.
//
// Store backends wrap their native errors into *errs.Error before returning
// them; callers use the Is* predicates instead of inspecting backend codes.
package errs

import (
	"errors"
	"fmt"
)

// Kind categorises an error without exposing backend-specific codes.
type Kind int

const (
	KindUnknown          Kind = iota
	KindStoreUnavailable      // network/auth failure talking to the object store
	KindNotFound              // target key or bucket vanished between listing and action
	KindPartialTransfer       // move: copy succeeded but source delete failed
	KindNoOpTransfer          // transfer destination equals source; informational
	KindInvalidInput          // bad arguments from the caller
)

func (k Kind) String() string {
	switch k {
	case KindStoreUnavailable:
		return "store_unavailable"
	case KindNotFound:
		return "not_found"
	case KindPartialTransfer:
		return "partial_transfer"
	case KindNoOpTransfer:
		return "noop_transfer"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by the store and browser packages.
// SourceKey/DestKey are set only for transfer errors.
type Error struct {
	Kind      Kind
	Message   string
	SourceKey string
	DestKey   string
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is / errors.As to traverse the cause chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an *Error with the given kind and message and no cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap creates an *Error preserving the original backend error.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// PartialTransfer reports a move that copied but failed to delete the source.
// The object now exists at both keys and needs manual reconciliation.
func PartialTransfer(sourceKey, destKey string, cause error) *Error {
	return &Error{
		Kind:      KindPartialTransfer,
		Message:   fmt.Sprintf("moved copy exists at %q but source %q could not be deleted", destKey, sourceKey),
		SourceKey: sourceKey,
		DestKey:   destKey,
		Cause:     cause,
	}
}

func is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func IsStoreUnavailable(err error) bool { return is(err, KindStoreUnavailable) }
func IsNotFound(err error) bool         { return is(err, KindNotFound) }
func IsPartialTransfer(err error) bool  { return is(err, KindPartialTransfer) }
func IsNoOpTransfer(err error) bool     { return is(err, KindNoOpTransfer) }
func IsInvalidInput(err error) bool     { return is(err, KindInvalidInput) }
