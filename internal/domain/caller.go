package domain

import "slices"

// Caller is the authenticated identity behind a request.
type Caller struct {
	UserID      string
	Scope       Selector
	Permissions []string
}

// Can reports whether the caller was granted action.
func (c Caller) Can(action string) bool {
	return slices.Contains(c.Permissions, action)
}
