package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storegate/console/pkg/config"
	"github.com/storegate/console/pkg/enums"
	pkgerrors "github.com/storegate/console/pkg/errors"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(config.IdentityConfig{BaseURL: srv.URL}, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, srv
}

func TestLoginSuccess(t *testing.T) {
	storeID := int64(4)
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["email"] != "member@example.com" || req["password"] != "secret" {
			t.Errorf("unexpected request body %v", req)
		}
		json.NewEncoder(w).Encode(authPayload{
			User:  &Identity{ID: 4, Email: "member@example.com", Name: "Member", Role: enums.RoleUser, StoreID: &storeID},
			Token: "issued-token",
		})
	}))

	user, token, err := client.Login(context.Background(), "member@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "issued-token" {
		t.Fatalf("expected token %q got %q", "issued-token", token)
	}
	if user.Email != "member@example.com" || user.Role != enums.RoleUser {
		t.Fatalf("unexpected user %+v", user)
	}
	if user.StoreID == nil || *user.StoreID != 4 {
		t.Fatalf("expected store id 4 got %v", user.StoreID)
	}
}

func TestRegisterSendsUserRole(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/register" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["role"] != "user" {
			t.Errorf("expected role %q got %q", "user", req["role"])
		}
		if req["name"] != "New Member" {
			t.Errorf("expected name %q got %q", "New Member", req["name"])
		}
		json.NewEncoder(w).Encode(authPayload{
			User:  &Identity{ID: 9, Email: "new@example.com", Name: "New Member", Role: enums.RoleUser},
			Token: "issued-token",
		})
	}))

	if _, _, err := client.Register(context.Background(), "new@example.com", "secret", "New Member"); err != nil {
		t.Fatalf("register: %v", err)
	}
}

func TestLoginRejectedStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"invalid credentials"}`, http.StatusForbidden)
	}))

	_, _, err := client.Login(context.Background(), "member@example.com", "wrong")
	if !pkgerrors.Is(err, pkgerrors.CodeAuthRejected) {
		t.Fatalf("expected AUTH_REJECTED got %v", err)
	}
	if IsUnreachable(err) {
		t.Fatal("HTTP rejection must not read as unreachable")
	}
}

func TestLoginMalformedResponses(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty_body", ""},
		{"undefined_body", "undefined"},
		{"not_json", "<html>oops</html>"},
		{"missing_token", `{"user":{"id":4,"email":"m@example.com","name":"Member","role":"user"}}`},
		{"missing_user", `{"token":"issued-token"}`},
		{"incomplete_user", `{"user":{"id":0,"email":"","name":"","role":""},"token":"issued-token"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(tc.body))
			}))

			_, _, err := client.Login(context.Background(), "member@example.com", "secret")
			if !pkgerrors.Is(err, pkgerrors.CodeInvalidResponse) {
				t.Fatalf("expected INVALID_RESPONSE got %v", err)
			}
		})
	}
}

func TestLoginUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	client, err := NewClient(config.IdentityConfig{BaseURL: url}, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, _, err = client.Login(context.Background(), "member@example.com", "secret")
	if !IsUnreachable(err) {
		t.Fatalf("expected unreachable error got %v", err)
	}
}

func TestLoginValidatesInput(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("request must not reach the wire")
	}))

	_, _, err := client.Login(context.Background(), "not-an-email", "secret")
	if !pkgerrors.Is(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR got %v", err)
	}
}
