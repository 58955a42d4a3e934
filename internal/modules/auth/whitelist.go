package auth

import "strings"

// Authorizer answers whether an authenticated email may use the
// dashboard. The restaurant is owner-operated, so authorization is a
// plain whitelist membership check; the list is injected at
// construction time so tests and deployments can substitute it.
type Authorizer struct {
	allowed map[string]struct{}
}

// NewAuthorizer builds an Authorizer from the allowed-email list.
// Entries are compared case-insensitively with surrounding
// whitespace ignored.
func NewAuthorizer(allowedEmails []string) *Authorizer {
	allowed := make(map[string]struct{}, len(allowedEmails))
	for _, e := range allowedEmails {
		allowed[normalizeEmail(e)] = struct{}{}
	}
	return &Authorizer{allowed: allowed}
}

// IsAllowed reports whether email is on the whitelist.
func (a *Authorizer) IsAllowed(email string) bool {
	if email == "" {
		return false
	}
	_, ok := a.allowed[normalizeEmail(email)]
	return ok
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
