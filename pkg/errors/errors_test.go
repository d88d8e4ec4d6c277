package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCodeSurvivesWrapping(t *testing.T) {
	root := New(CodeAuthRejected, "credentials rejected")
	wrapped := fmt.Errorf("login: %w", root)

	if !Is(wrapped, CodeAuthRejected) {
		t.Fatal("expected code to survive fmt wrapping")
	}
	if Is(wrapped, CodeInternal) {
		t.Fatal("unexpected code match")
	}

	typed := As(wrapped)
	if typed == nil || typed.Message() != "credentials rejected" {
		t.Fatalf("expected typed error, got %v", typed)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := Wrap(CodeDependency, cause, "read credential store")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if err.Error() != "DEPENDENCY_ERROR: read credential store" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

func TestMetadataFor(t *testing.T) {
	cases := []struct {
		code       Code
		wantStatus int
		retryable  bool
	}{
		{CodeValidation, http.StatusBadRequest, false},
		{CodeAuthRejected, http.StatusUnauthorized, false},
		{CodeInvalidResponse, http.StatusBadGateway, true},
		{CodeNotFound, http.StatusNotFound, false},
		{CodeConflict, http.StatusConflict, false},
		{CodeDependency, http.StatusServiceUnavailable, true},
		{Code("UNMAPPED"), http.StatusInternalServerError, true},
	}

	for _, tc := range cases {
		meta := MetadataFor(tc.code)
		if meta.HTTPStatus != tc.wantStatus {
			t.Fatalf("%s: expected status %d got %d", tc.code, tc.wantStatus, meta.HTTPStatus)
		}
		if meta.Retryable != tc.retryable {
			t.Fatalf("%s: expected retryable %v", tc.code, tc.retryable)
		}
	}
}

func TestNilSafety(t *testing.T) {
	var typed *Error
	if typed.Code() != CodeInternal {
		t.Fatalf("expected internal code for nil error, got %s", typed.Code())
	}
	if As(nil) != nil {
		t.Fatal("expected nil for As(nil)")
	}
	if Is(stdErrors.New("plain"), CodeInternal) {
		t.Fatal("plain errors carry no code")
	}
}
