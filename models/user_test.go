package models

import "testing"

func TestProfileUpdateWhitelist(t *testing.T) {
	update := ProfileUpdate("new-name")

	if len(update) != 1 {
		t.Fatalf("update has %d fields, want 1: %v", len(update), update)
	}
	if update["username"] != "new-name" {
		t.Errorf("update[%q] = %v, want new-name", "username", update["username"])
	}

	// Email resolves sign-ins (UserSignIn looks accounts up by email, and
	// UserSignUp enforces its uniqueness), so a profile edit must never be
	// able to write it — otherwise one user could shadow another's login.
	// Uid and createdAt are immutable outright.
	for _, forbidden := range []string{"email", "_id", "uid", "createdAt", "password"} {
		if _, ok := update[forbidden]; ok {
			t.Errorf("update must not contain %q", forbidden)
		}
	}
}
