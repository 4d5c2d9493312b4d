package models

// Session identifies the authenticated caller. It is built from the
// verified token claims and threaded explicitly through every service
// operation, never held in package-level state.
type Session struct {
	Login string   `json:"login"`
	Role  UserRole `json:"role"`
}

// IsStaff reports whether the session may perform counter-staff
// operations (order browsing across owners, payment toggling).
func (s Session) IsStaff() bool {
	return s.Role == RoleEmployee || s.Role == RoleManager
}
