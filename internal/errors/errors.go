// Package errors provides the coded domain faults raised by the lending
// core. Every fault is a precondition violation surfaced synchronously to
// the caller; no retry or recovery happens at this layer.
//
// Usage:
//
//	// In services - return typed faults
//	if copy == nil {
//	    return errors.CopyNotFound(copyID)
//	}
//
//	// In callers - check with errors.Is
//	if errors.Is(err, errors.ErrBorrowForbidden) {
//	    ...
//	}
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code is a machine-readable fault name.
type Code string

// Fault codes. Not-found codes mean the referenced entity or relationship
// is absent; conflict codes mean it exists but is in the wrong state for
// the requested transition.
const (
	CodeCopyNotFound   Code = "COPY_NOT_FOUND"
	CodeReaderNotFound Code = "READER_NOT_FOUND"
	CodeBookNotFound   Code = "BOOK_NOT_FOUND"
	CodeLoanNotFound   Code = "LOAN_NOT_FOUND"

	CodeCopyNotAvailable        Code = "COPY_NOT_AVAILABLE"
	CodeCopyNotLoaned           Code = "COPY_NOT_LOANED"
	CodeOriginalAlreadyBorrowed Code = "ORIGINAL_ALREADY_BORROWED"
	CodeOriginalNotBorrowed     Code = "ORIGINAL_NOT_BORROWED"
	CodeNotNewRelease           Code = "NOT_NEW_RELEASE"

	CodeBorrowForbidden Code = "BORROW_FORBIDDEN"
	CodeValidation      Code = "VALIDATION"
)

// Error is a domain fault with a code, message, and optional cause.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error  // unexported, for wrapping
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithDetails returns a copy of the error carrying additional details.
func (e *Error) WithDetails(details any) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		cause:   e.cause,
	}
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		cause:   err,
	}
}

// Sentinel faults for use with errors.Is().
var (
	ErrCopyNotFound   = &Error{Code: CodeCopyNotFound, Message: "copy not found"}
	ErrReaderNotFound = &Error{Code: CodeReaderNotFound, Message: "reader not found"}
	ErrBookNotFound   = &Error{Code: CodeBookNotFound, Message: "book not found"}
	ErrLoanNotFound   = &Error{Code: CodeLoanNotFound, Message: "open loan not found"}

	ErrCopyNotAvailable        = &Error{Code: CodeCopyNotAvailable, Message: "copy is not available"}
	ErrCopyNotLoaned           = &Error{Code: CodeCopyNotLoaned, Message: "copy is not on loan"}
	ErrOriginalAlreadyBorrowed = &Error{Code: CodeOriginalAlreadyBorrowed, Message: "original already borrowed"}
	ErrOriginalNotBorrowed     = &Error{Code: CodeOriginalNotBorrowed, Message: "original is not borrowed"}
	ErrNotNewRelease           = &Error{Code: CodeNotNewRelease, Message: "book is not a new release"}

	ErrBorrowForbidden = &Error{Code: CodeBorrowForbidden, Message: "reader may not borrow"}
	ErrValidation      = &Error{Code: CodeValidation, Message: "validation error"}
)

// Constructor functions for creating faults that name the offending entity.

// CopyNotFound creates a copy-not-found fault.
func CopyNotFound(copyID string) *Error {
	return &Error{Code: CodeCopyNotFound, Message: fmt.Sprintf("copy %q not found", copyID)}
}

// ReaderNotFound creates a reader-not-found fault.
func ReaderNotFound(readerID string) *Error {
	return &Error{Code: CodeReaderNotFound, Message: fmt.Sprintf("reader %q not found", readerID)}
}

// BookNotFound creates a book-not-found fault.
func BookNotFound(bookID string) *Error {
	return &Error{Code: CodeBookNotFound, Message: fmt.Sprintf("book %q not found", bookID)}
}

// LoanNotFound creates an open-loan-not-found fault. It signals a
// data-consistency violation: a copy marked LOANED must have an open loan.
func LoanNotFound(msg string) *Error {
	return &Error{Code: CodeLoanNotFound, Message: msg}
}

// CopyNotAvailable creates a fault for borrowing a copy that is off-shelf.
func CopyNotAvailable(copyID string) *Error {
	return &Error{Code: CodeCopyNotAvailable, Message: fmt.Sprintf("copy %q is not available", copyID)}
}

// CopyNotLoaned creates a fault for returning a copy that is not out.
func CopyNotLoaned(copyID string) *Error {
	return &Error{Code: CodeCopyNotLoaned, Message: fmt.Sprintf("copy %q is not on loan", copyID)}
}

// OriginalAlreadyBorrowed creates a fault for a second concurrent original loan.
func OriginalAlreadyBorrowed(bookID string) *Error {
	return &Error{Code: CodeOriginalAlreadyBorrowed, Message: fmt.Sprintf("original of book %q is already borrowed", bookID)}
}

// OriginalNotBorrowed creates a fault for returning an original that is not out.
func OriginalNotBorrowed(bookID string) *Error {
	return &Error{Code: CodeOriginalNotBorrowed, Message: fmt.Sprintf("original of book %q is not borrowed", bookID)}
}

// NotNewRelease creates a fault for an original loan on a regular title.
func NotNewRelease(bookID string) *Error {
	return &Error{Code: CodeNotNewRelease, Message: fmt.Sprintf("book %q is not a new release", bookID)}
}

// BorrowForbidden creates an eligibility fault: the reader is banned or at
// the active-loan limit.
func BorrowForbidden(readerID string) *Error {
	return &Error{Code: CodeBorrowForbidden, Message: fmt.Sprintf("reader %q may not borrow", readerID)}
}

// Validation creates a validation fault.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// ValidationWithDetails creates a validation fault with per-field details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}
