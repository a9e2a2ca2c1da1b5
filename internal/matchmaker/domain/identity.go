package domain

import "slices"

const (
	ScopeAdminRead  = "admin:read"
	ScopeAdminWrite = "admin:write"
)

// Identity is the authenticated caller as established by a verified token.
// The zero value is an unauthenticated caller.
type Identity struct {
	ID        string
	Email     string
	Anonymous bool
	Scopes    []string
}

func (i Identity) IsAuthenticated() bool { return i.ID != "" }

// IsAdmin reports read access to admin data.
func (i Identity) IsAdmin() bool {
	return i.IsAuthenticated() && slices.ContainsFunc(i.Scopes, func(s string) bool {
		return s == ScopeAdminRead || s == ScopeAdminWrite
	})
}

// CanAdminWrite reports whether the caller may curate matches and moderate.
func (i Identity) CanAdminWrite() bool {
	return i.IsAuthenticated() && slices.Contains(i.Scopes, ScopeAdminWrite)
}
