package gitea

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyStatusIsTotal(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{300, KindUnclassified},
		{301, KindUnclassified},
		{400, KindUnclassified},
		{401, KindUnauthorized},
		{402, KindUnclassified},
		{403, KindForbidden},
		{404, KindNotFound},
		{405, KindUnclassified},
		{409, KindConflict},
		{418, KindUnclassified},
		{422, KindValidationFailed},
		{429, KindUnclassified},
		{499, KindUnclassified},
		{500, KindServerFault},
		{503, KindServerFault},
		{599, KindServerFault},
		{600, KindUnclassified},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.status), func(t *testing.T) {
			if got := classifyStatus(tt.status); got != tt.want {
				t.Errorf("classifyStatus(%d) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}

	// Every status in the non-2xx range maps to exactly one kind.
	for status := 100; status < 700; status++ {
		if kind := classifyStatus(status); kind == "" {
			t.Errorf("classifyStatus(%d) produced no kind", status)
		}
	}
}

func TestAPIErrorDescriptions(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{"unauthorized", &APIError{Kind: KindUnauthorized}, "authentication required, check your access token"},
		{"not found", &APIError{Kind: KindNotFound}, "resource not found"},
		{"server fault", &APIError{Kind: KindServerFault, StatusCode: 503}, "server error (503)"},
		{"unclassified", &APIError{Kind: KindUnclassified, StatusCode: 418}, "unknown error (HTTP 418)"},
		{"validation", &APIError{Kind: KindValidationFailed, Detail: "title required"}, "validation error: title required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAuthenticationError(t *testing.T) {
	if !(&APIError{Kind: KindUnauthorized}).IsAuthenticationError() {
		t.Error("unauthorized should be an authentication error")
	}
	if !(&APIError{Kind: KindForbidden}).IsAuthenticationError() {
		t.Error("forbidden should be an authentication error")
	}
	if (&APIError{Kind: KindServerFault}).IsAuthenticationError() {
		t.Error("server fault should not be an authentication error")
	}
}

func TestAsAPIError(t *testing.T) {
	apiErr := statusError(404)
	wrapped := fmt.Errorf("fetching issue: %w", apiErr)

	got, ok := AsAPIError(wrapped)
	if !ok || got.Kind != KindNotFound {
		t.Errorf("AsAPIError(wrapped) = %v, %v", got, ok)
	}

	if _, ok := AsAPIError(errors.New("plain")); ok {
		t.Error("plain error should not unwrap to APIError")
	}
}
