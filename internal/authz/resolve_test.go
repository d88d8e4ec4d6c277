package authz

import "testing"

func TestResolveUnauthenticated(t *testing.T) {
	cases := []struct {
		path string
		want Decision
	}{
		{LoginPath, Decision{Action: ActionAllow}},
		{RegisterPath, Decision{Action: ActionAllow}},
		{"/", Decision{Action: ActionRedirect, Location: LoginPath}},
		{"/admin/orders", Decision{Action: ActionRedirect, Location: LoginPath}},
		{"/nope", Decision{Action: ActionRedirect, Location: LoginPath}},
	}
	for _, tc := range cases {
		if got := Resolve(ScopeUnauthenticated, tc.path); got != tc.want {
			t.Fatalf("path %q: expected %+v got %+v", tc.path, tc.want, got)
		}
	}
}

func TestResolveAdmin(t *testing.T) {
	cases := []struct {
		path string
		want Decision
	}{
		{"/admin/dashboard", Decision{Action: ActionAllow}},
		{"/admin/orders", Decision{Action: ActionAllow}},
		{"/admin/members", Decision{Action: ActionAllow}},
		{"/admin/stores", Decision{Action: ActionAllow}},
		{"/admin", Decision{Action: ActionRedirect, Location: AdminHome}},
		{"/", Decision{Action: ActionRedirect, Location: AdminHome}},
		{LoginPath, Decision{Action: ActionRedirect, Location: AdminHome}},
		{RegisterPath, Decision{Action: ActionRedirect, Location: AdminHome}},
		{"/admin/unknown", Decision{Action: ActionRedirect, Location: AdminHome}},
		{"/whatever", Decision{Action: ActionRedirect, Location: AdminHome}},
	}
	for _, tc := range cases {
		if got := Resolve(ScopeAdmin, tc.path); got != tc.want {
			t.Fatalf("path %q: expected %+v got %+v", tc.path, tc.want, got)
		}
	}
}

func TestResolveUser(t *testing.T) {
	cases := []struct {
		path string
		want Decision
	}{
		{"/", Decision{Action: ActionAllow}},
		{LoginPath, Decision{Action: ActionRedirect, Location: UserHome}},
		{RegisterPath, Decision{Action: ActionRedirect, Location: UserHome}},
		{"/admin/dashboard", Decision{Action: ActionNotFound}},
		{"/missing", Decision{Action: ActionNotFound}},
	}
	for _, tc := range cases {
		if got := Resolve(ScopeUser, tc.path); got != tc.want {
			t.Fatalf("path %q: expected %+v got %+v", tc.path, tc.want, got)
		}
	}
}

func TestResolveRestoringBlocksEverything(t *testing.T) {
	for _, path := range []string{"/", LoginPath, "/admin/dashboard", "/anything"} {
		if got := Resolve(ScopeRestoring, path); got.Action != ActionUnavailable {
			t.Fatalf("path %q: expected unavailable got %+v", path, got)
		}
	}
}

func TestResolveNormalizesTrailingSlash(t *testing.T) {
	if got := Resolve(ScopeAdmin, "/admin/orders/"); got.Action != ActionAllow {
		t.Fatalf("expected allow got %+v", got)
	}
	if got := Resolve(ScopeUser, ""); got.Action != ActionAllow {
		t.Fatalf("expected allow for empty path got %+v", got)
	}
}
