package apierror

import (
	"errors"
	"fmt"
)

// ErrAPI is the base kind shared by every API-level error, and the kind
// used directly for reply codes absent from the table. errors.Is against
// ErrAPI matches any error the API answered with.
var ErrAPI = errors.New("api error")

// Specific error kinds. Each wraps ErrAPI, so errors.Is matches both the
// specific kind and the base.
var (
	// ErrBadRequest is returned for malformed or incomplete requests.
	ErrBadRequest = fmt.Errorf("%w: bad request", ErrAPI)
	// ErrAuthenticationFailed is returned when the credentials are rejected.
	ErrAuthenticationFailed = fmt.Errorf("%w: authentication failed", ErrAPI)
	// ErrAuthorizationFailed is returned when the account may not perform the operation.
	ErrAuthorizationFailed = fmt.Errorf("%w: authorization failed", ErrAPI)
	// ErrNotFound is returned when the requested object does not exist.
	ErrNotFound = fmt.Errorf("%w: not found", ErrAPI)
	// ErrDomainTaken is returned when a domain is not available for registration.
	ErrDomainTaken = fmt.Errorf("%w: domain taken", ErrAPI)
	// ErrInvalidDomainName is returned when a domain name is syntactically invalid.
	ErrInvalidDomainName = fmt.Errorf("%w: invalid domain name", ErrAPI)
	// ErrInsufficientFunds is returned when the account balance cannot cover the operation.
	ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds", ErrAPI)
	// ErrValidation is returned when the request fails server-side validation.
	ErrValidation = fmt.Errorf("%w: validation error", ErrAPI)
	// ErrRateLimited is returned when the account exceeds its request quota.
	ErrRateLimited = fmt.Errorf("%w: rate limited", ErrAPI)
	// ErrInternalServerError is returned for failures inside the API itself.
	ErrInternalServerError = fmt.Errorf("%w: internal server error", ErrAPI)
	// ErrMaintenance is returned while the API is in scheduled maintenance.
	ErrMaintenance = fmt.Errorf("%w: maintenance", ErrAPI)
)

// Conditions raised by this library rather than by the API.
var (
	// ErrServiceUnavailable is returned when the HTTP exchange cannot be
	// completed, including non-success status codes.
	ErrServiceUnavailable = errors.New("service unavailable")
	// ErrMalformedResponse is returned when response bytes are not
	// well-formed XML or lack the reply envelope.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrConfiguration is returned for invalid credential construction or
	// missing environment values.
	ErrConfiguration = errors.New("configuration error")
)

// codeKinds maps reply codes to their kind. Exact matches take precedence
// over the code ranges in FromCode.
var codeKinds = map[int]error{
	139:   ErrAuthenticationFailed,
	196:   ErrAuthenticationFailed,
	117:   ErrInsufficientFunds,
	1002:  ErrInsufficientFunds,
	285:   ErrAuthorizationFailed,
	4005:  ErrAuthorizationFailed,
	320:   ErrNotFound,
	5001:  ErrNotFound,
	346:   ErrDomainTaken,
	375:   ErrInvalidDomainName,
	500:   ErrInternalServerError,
	4004:  ErrMaintenance,
	10001: ErrRateLimited,
}

// FromCode resolves a reply code to its error kind. The lookup is total:
// exact table entries first, then code ranges, then ErrAPI for everything
// else.
func FromCode(code int) error {
	if kind, ok := codeKinds[code]; ok {
		return kind
	}
	switch {
	case code >= 1 && code <= 99:
		return ErrBadRequest
	case code >= 700 && code <= 799:
		return ErrValidation
	}
	return ErrAPI
}

// Error is an API-level error: the API answered with a non-zero reply
// code. It unwraps to the sentinel kind resolved from the code.
type Error struct {
	Code int
	Desc string
	Data string
	kind error
}

// New builds an Error for the given reply code, description and data.
func New(code int, desc, data string) *Error {
	return &Error{
		Code: code,
		Desc: desc,
		Data: data,
		kind: FromCode(code),
	}
}

// Error renders the message in the API's conventional form. The data
// segment is present even when empty, so a data-less error reads
// "Domain not available (346) ".
func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d) %s", e.Desc, e.Code, e.Data)
}

// Unwrap returns the sentinel kind, enabling errors.Is matching.
func (e *Error) Unwrap() error {
	return e.kind
}

// Kind returns the sentinel kind resolved from the reply code.
func (e *Error) Kind() error {
	return e.kind
}
