package domain

import "strings"

// UserRole is the closed set of console roles a user can hold.
type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleEditor      UserRole = "editor"
	RoleViewer      UserRole = "viewer"
	RoleContributor UserRole = "contributor"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer, RoleContributor:
		return true
	}
	return false
}

// Title is the display name used by role records ("Administrator", "Editor", ...).
func (r UserRole) Title() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleEditor:
		return "Editor"
	case RoleViewer:
		return "Viewer"
	default:
		return "Contributor"
	}
}

// UserStatus is the account lifecycle state.
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
	StatusBanned   UserStatus = "banned"
)

// Valid reports whether s is one of the known statuses.
func (s UserStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusBanned:
		return true
	}
	return false
}

// User models a console account.
type User struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Role     UserRole   `json:"role"`
	Status   UserStatus `json:"status"`
	Joined   string     `json:"joined"`
	Bio      string     `json:"bio,omitempty"`
}

// UserPatch carries a partial user update. Nil fields are left untouched.
type UserPatch struct {
	Name     *string     `json:"name,omitempty"`
	Username *string     `json:"username,omitempty"`
	Email    *string     `json:"email,omitempty"`
	Role     *UserRole   `json:"role,omitempty"`
	Status   *UserStatus `json:"status,omitempty"`
	Bio      *string     `json:"bio,omitempty"`
}

// Merge returns u with every provided field of p applied over it.
func (p UserPatch) Merge(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	return u
}

// IsBanned reports whether the account is banned.
func (u User) IsBanned() bool {
	return u.Status == StatusBanned
}

// SearchUsers returns the users whose name, username or email contains term,
// case-insensitively. An empty term returns users unchanged.
func SearchUsers(users []User, term string) []User {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return users
	}
	out := make([]User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), term) ||
			strings.Contains(strings.ToLower(u.Username), term) ||
			strings.Contains(strings.ToLower(u.Email), term) {
			out = append(out, u)
		}
	}
	return out
}

// FilterUsersByRole keeps only users holding role. An empty role keeps everyone.
func FilterUsersByRole(users []User, role UserRole) []User {
	if role == "" {
		return users
	}
	out := make([]User, 0, len(users))
	for _, u := range users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}
