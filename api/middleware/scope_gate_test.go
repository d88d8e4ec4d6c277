package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storegate/console/internal/identity"
	"github.com/storegate/console/internal/session"
	"github.com/storegate/console/pkg/enums"
)

type stubSessions struct {
	snap session.Snapshot
}

func (s stubSessions) Snapshot() session.Snapshot {
	return s.snap
}

func adminSnapshot() session.Snapshot {
	return session.Snapshot{
		User:  &identity.Identity{ID: 1, Email: "admin@demo.com", Name: "Admin User", Role: enums.RoleAdmin},
		Token: "issued-token",
	}
}

func userSnapshot() session.Snapshot {
	storeID := int64(1)
	return session.Snapshot{
		User:  &identity.Identity{ID: 2, Email: "member@example.com", Name: "Member", Role: enums.RoleUser, StoreID: &storeID},
		Token: "issued-token",
	}
}

func gateRequest(snap session.Snapshot, path string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := ScopeGate(stubSessions{snap: snap}, nil)(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestScopeGateDecisions(t *testing.T) {
	cases := []struct {
		name         string
		snap         session.Snapshot
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"restoring_blocks_views", session.Snapshot{Loading: true}, "/login", http.StatusServiceUnavailable, ""},
		{"unauthenticated_view_allowed", session.Snapshot{}, "/login", http.StatusOK, ""},
		{"unauthenticated_home_redirects", session.Snapshot{}, "/", http.StatusFound, "/login"},
		{"unauthenticated_deep_link_redirects", session.Snapshot{}, "/admin/orders", http.StatusFound, "/login"},
		{"admin_home_allowed", adminSnapshot(), "/admin/dashboard", http.StatusOK, ""},
		{"admin_leaves_auth_views", adminSnapshot(), "/login", http.StatusFound, "/admin/dashboard"},
		{"admin_storefront_redirects", adminSnapshot(), "/", http.StatusFound, "/admin/dashboard"},
		{"user_home_allowed", userSnapshot(), "/", http.StatusOK, ""},
		{"user_admin_view_hidden", userSnapshot(), "/admin/dashboard", http.StatusNotFound, ""},
		{"user_leaves_auth_views", userSnapshot(), "/register", http.StatusFound, "/"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := gateRequest(tc.snap, tc.path)
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d got %d", tc.wantStatus, rec.Code)
			}
			if tc.wantLocation != "" && rec.Header().Get("Location") != tc.wantLocation {
				t.Fatalf("expected redirect to %q got %q", tc.wantLocation, rec.Header().Get("Location"))
			}
		})
	}
}

func TestScopeGateRetryAfterWhileRestoring(t *testing.T) {
	rec := gateRequest(session.Snapshot{Loading: true}, "/admin/dashboard")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "1" {
		t.Fatalf("expected Retry-After header, got %q", rec.Header().Get("Retry-After"))
	}
}

func TestScopeGateExemptsOperationalPaths(t *testing.T) {
	for _, path := range []string{"/api/auth/login", "/api/auth/session", "/health/live", "/metrics"} {
		rec := gateRequest(session.Snapshot{Loading: true}, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected gate bypass, got %d", path, rec.Code)
		}
	}
}
