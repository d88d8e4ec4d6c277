package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/storegate/console/pkg/errors"
)

type credentialsBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func decode(t *testing.T, body string) error {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	var dest credentialsBody
	return DecodeJSONBody(req, &dest)
}

func TestDecodeJSONBody(t *testing.T) {
	if err := decode(t, `{"email":"member@example.com","password":"secret"}`); err != nil {
		t.Fatalf("expected valid body, got %v", err)
	}
}

func TestDecodeJSONBodyRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not_json", "not-json"},
		{"unknown_field", `{"email":"member@example.com","password":"secret","extra":true}`},
		{"missing_password", `{"email":"member@example.com"}`},
		{"bad_email", `{"email":"nope","password":"secret"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := decode(t, tc.body)
			if !pkgerrors.Is(err, pkgerrors.CodeValidation) {
				t.Fatalf("expected VALIDATION_ERROR got %v", err)
			}
		})
	}
}

func TestValidationDetailsUseJSONNames(t *testing.T) {
	err := decode(t, `{"email":"member@example.com"}`)
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected detail map, got %T", typed.Details())
	}
	if details["password"] != "is required" {
		t.Fatalf("expected password detail, got %v", details)
	}
}
