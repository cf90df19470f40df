// Package httperr defines the typed errors the service layer returns and
// their translation into HTTP responses.
//
// Every failure a client can see is an *Error carrying a stable code such
// as EMAIL_ALREADY_EXISTS. Unexpected collaborator failures are wrapped as
// Internal and surface only the generic label; the cause stays in the logs.
package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Error kinds, each mapped to a default HTTP status.
type Kind int

const (
	KindBadRequest   Kind = iota // malformed input, invalid or expired code
	KindUnauthorized             // missing/invalid credentials or token
	KindNotFound                 // account or invitation absent
	KindConflict                 // unique-field collision, already validated
	KindTooMany                  // login attempt lockout
	KindInternal                 // unexpected collaborator failure
)

// Stable error codes returned in response bodies.
const (
	CodeUserNotExists         = "USER_NOT_EXISTS"
	CodeUserNotFound          = "USER_NOT_FOUND"
	CodeEmailAlreadyExists    = "EMAIL_ALREADY_EXISTS"
	CodeEmailAlreadyValidated = "EMAIL_ALREADY_VALIDATED"
	CodeEmailNotValidated     = "EMAIL_NOT_VALIDATED"
	CodeInvalidPassword       = "INVALID_PASSWORD"
	CodeTooManyAttempts       = "TOO_MANY_ATTEMPTS"
	CodeInvalidOrExpiredCode  = "INVALID_OR_EXPIRED_CODE"
	CodeCompanyNameExists     = "COMPANY_NAME_ALREADY_EXISTS"
	CodeCompanyCIFExists      = "COMPANY_CIF_ALREADY_EXISTS"
	CodeInvitationNotExists   = "INVITATION_NOT_EXISTS"
	CodeInvitationNotFound    = "INVITATION_NOT_FOUND"
	CodeNotToken              = "NOT_TOKEN"
	CodeErrorIDToken          = "ERROR_ID_TOKEN"
	CodeValidationError       = "VALIDATION_ERROR"
	CodeInternal              = "INTERNAL_ERROR"
)

// Error is a client-visible failure.
type Error struct {
	Kind Kind
	Code string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.err)
	}
	return e.Code
}

func (e *Error) Unwrap() error { return e.err }

// Status returns the HTTP status for the error's kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindTooMany:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// New returns a client-visible error with the given kind and code.
func New(kind Kind, code string) *Error {
	return &Error{Kind: kind, Code: code}
}

// Wrap returns an Internal error that keeps cause for the logs while the
// client sees only the generic label.
func Wrap(cause error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, err: cause}
}

// Write translates err into the `{"error": code}` response body. Errors
// that are not an *Error are treated as Internal. Internal causes are
// logged; expected failures are not.
func Write(w http.ResponseWriter, log *zap.Logger, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = Wrap(err)
	}
	if e.Kind == KindInternal && log != nil {
		log.Error("request failed", zap.Error(err))
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Status())
	_ = json.NewEncoder(w).Encode(map[string]string{"error": e.Code})
}
