// Package apperror carries the error kinds the submission pipeline reports to callers.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindBadRequest            Kind = "BAD_REQUEST"
	KindFormNotFound          Kind = "FORM_NOT_FOUND"
	KindFormUnavailable       Kind = "FORM_UNAVAILABLE"
	KindDeadlinePassed        Kind = "DEADLINE_PASSED"
	KindLimitReached          Kind = "LIMIT_REACHED"
	KindSubmissionNotFound    Kind = "SUBMISSION_NOT_FOUND"
	KindInvalidStatus         Kind = "INVALID_STATUS"
	KindUnsupportedForm       Kind = "UNSUPPORTED_FORM"
	KindDuplicateProfile      Kind = "DUPLICATE_PROFILE"
	KindInvalidSubmissionData Kind = "INVALID_SUBMISSION_DATA"
	KindNotFound              Kind = "NOT_FOUND"
	KindConflict              Kind = "CONFLICT"
	KindStorage               Kind = "STORAGE_ERROR"
)

var statusByKind = map[Kind]int{
	KindBadRequest:            http.StatusBadRequest,
	KindFormNotFound:          http.StatusNotFound,
	KindFormUnavailable:       http.StatusForbidden,
	KindDeadlinePassed:        http.StatusForbidden,
	KindLimitReached:          http.StatusConflict,
	KindSubmissionNotFound:    http.StatusNotFound,
	KindInvalidStatus:         http.StatusBadRequest,
	KindUnsupportedForm:       http.StatusBadRequest,
	KindDuplicateProfile:      http.StatusConflict,
	KindInvalidSubmissionData: http.StatusUnprocessableEntity,
	KindNotFound:              http.StatusNotFound,
	KindConflict:              http.StatusConflict,
	KindStorage:               http.StatusInternalServerError,
}

// Error is a classified failure. Fields holds per-field messages for validation kinds.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, apperror.ErrLimitReached) works
// on errors built with New as well.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Status maps the kind to an HTTP status code.
func (e *Error) Status() int {
	if s, ok := statusByKind[e.Kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Invalid builds an INVALID_SUBMISSION_DATA error with per-field messages.
func Invalid(message string, fields map[string][]string) *Error {
	return &Error{Kind: KindInvalidSubmissionData, Message: message, Fields: fields}
}

// Storage hides a raw store error behind STORAGE_ERROR.
func Storage(op string, err error) *Error {
	return &Error{Kind: KindStorage, Message: op + " failed", Err: err}
}

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

var (
	ErrFormNotFound       = New(KindFormNotFound, "form not found")
	ErrFormUnavailable    = New(KindFormUnavailable, "form is not accepting submissions")
	ErrDeadlinePassed     = New(KindDeadlinePassed, "submission deadline has passed")
	ErrLimitReached       = New(KindLimitReached, "submission limit reached")
	ErrSubmissionNotFound = New(KindSubmissionNotFound, "submission not found")
	ErrInvalidStatus      = New(KindInvalidStatus, "status must be APPROVED or REJECTED")
	ErrUnsupportedForm    = New(KindUnsupportedForm, "form is not a youth registration form")
	ErrDuplicateProfile   = New(KindDuplicateProfile, "youth profile already exists")
)
