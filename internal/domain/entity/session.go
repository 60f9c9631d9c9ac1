// Package entity contains the core business objects of the project.
package entity

import "slices"

// RoleAdmin marks users allowed into the admin route group.
const RoleAdmin = "admin"

// Session is the immutable identity of the acting user for one request.
// It is built by the auth middleware from a verified ID token and passed
// explicitly into usecases; nothing in the system holds it as shared state.
type Session struct {
	UID   string   `json:"uid"`   // Verified Firebase Auth UID.
	Name  string   `json:"name"`  // Display name claim from the token.
	Roles []string `json:"roles"` // Role claims (e.g. "admin").
}

// HasRole reports whether the session carries the given role claim.
func (s Session) HasRole(role string) bool {
	return slices.Contains(s.Roles, role)
}
