package enums

import "testing"

func TestParseRole(t *testing.T) {
	for _, value := range []string{"admin", "user"} {
		role, err := ParseRole(value)
		if err != nil {
			t.Fatalf("ParseRole(%q): %v", value, err)
		}
		if role.String() != value {
			t.Fatalf("expected %q got %q", value, role)
		}
		if !role.IsValid() {
			t.Fatalf("expected %q valid", role)
		}
	}
}

func TestParseRoleRejectsUnknown(t *testing.T) {
	for _, value := range []string{"", "Admin", "superuser"} {
		if _, err := ParseRole(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
	if Role("superuser").IsValid() {
		t.Fatal("expected unknown role invalid")
	}
}
