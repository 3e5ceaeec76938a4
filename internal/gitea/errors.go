package gitea

import (
	"errors"
	"fmt"
)

// ErrorKind is one of a closed set of classified failure kinds. Every
// non-2xx HTTP outcome and every transport or decoding failure maps to
// exactly one kind; no raw transport error escapes the client.
type ErrorKind string

const (
	KindInvalidRequestTarget ErrorKind = "invalid_request_target"
	KindUnauthorized         ErrorKind = "unauthorized"
	KindForbidden            ErrorKind = "forbidden"
	KindNotFound             ErrorKind = "not_found"
	KindConflict             ErrorKind = "conflict"
	KindValidationFailed     ErrorKind = "validation_failed"
	KindServerFault          ErrorKind = "server_fault"
	KindResponseDecodeFailed ErrorKind = "response_decode_failed"
	KindTransportFailed      ErrorKind = "transport_failed"
	KindUnclassified         ErrorKind = "unclassified"
)

// APIError is a classified failure from the Gitea API client.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Detail     string
	cause      error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindInvalidRequestTarget:
		return "invalid request URL"
	case KindUnauthorized:
		return "authentication required, check your access token"
	case KindForbidden:
		return "access denied, you don't have permission to access this resource"
	case KindNotFound:
		return "resource not found"
	case KindConflict:
		return "a pull request already exists for this branch"
	case KindValidationFailed:
		return fmt.Sprintf("validation error: %s", e.Detail)
	case KindServerFault:
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	case KindResponseDecodeFailed:
		return fmt.Sprintf("failed to parse response: %v", e.cause)
	case KindTransportFailed:
		return fmt.Sprintf("network error: %v", e.cause)
	default:
		return fmt.Sprintf("unknown error (HTTP %d)", e.StatusCode)
	}
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// IsAuthenticationError reports whether the failure indicates bad or
// insufficient credentials.
func (e *APIError) IsAuthenticationError() bool {
	return e.Kind == KindUnauthorized || e.Kind == KindForbidden
}

// AsAPIError unwraps an *APIError from err, if present.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// classifyStatus maps a non-2xx HTTP status code to its error kind. The
// mapping is total: every status has exactly one kind.
func classifyStatus(status int) ErrorKind {
	switch {
	case status == 401:
		return KindUnauthorized
	case status == 403:
		return KindForbidden
	case status == 404:
		return KindNotFound
	case status == 409:
		return KindConflict
	case status == 422:
		return KindValidationFailed
	case status >= 500 && status <= 599:
		return KindServerFault
	default:
		return KindUnclassified
	}
}

func statusError(status int) *APIError {
	kind := classifyStatus(status)
	err := &APIError{Kind: kind, StatusCode: status}
	if kind == KindValidationFailed {
		err.Detail = "validation failed"
	}
	return err
}

func decodeError(cause error) *APIError {
	return &APIError{Kind: KindResponseDecodeFailed, cause: cause}
}

func transportError(cause error) *APIError {
	return &APIError{Kind: KindTransportFailed, cause: cause}
}
