package auth

import "testing"

func TestAuthorizerIsCaseInsensitive(t *testing.T) {
	a := NewAuthorizer([]string{"Owner@Example.com", "  second@example.com "})

	allowed := []string{
		"owner@example.com",
		"OWNER@EXAMPLE.COM",
		" owner@example.com ",
		"second@example.com",
	}
	for _, email := range allowed {
		if !a.IsAllowed(email) {
			t.Errorf("IsAllowed(%q) = false, want true", email)
		}
	}
}

func TestAuthorizerRejectsNonMembers(t *testing.T) {
	a := NewAuthorizer([]string{"owner@example.com"})

	denied := []string{
		"intruder@example.com",
		"owner@example.org",
		"",
	}
	for _, email := range denied {
		if a.IsAllowed(email) {
			t.Errorf("IsAllowed(%q) = true, want false", email)
		}
	}
}

func TestAuthorizerEmptyWhitelistDeniesEveryone(t *testing.T) {
	a := NewAuthorizer(nil)
	if a.IsAllowed("owner@example.com") {
		t.Fatal("empty whitelist must deny all emails")
	}
}
