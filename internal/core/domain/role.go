package domain

import "strings"

// Permission is a capability tag carried by a role.
type Permission string

const (
	PermissionAll    Permission = "all"
	PermissionCreate Permission = "create"
	PermissionRead   Permission = "read"
	PermissionEdit   Permission = "edit"
	PermissionDelete Permission = "delete"
)

// Role describes a named permission set. UserCount is a stored figure and is
// not recomputed when users change.
type Role struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	UserCount   int          `json:"userCount"`
	Permissions []Permission `json:"permissions"`
}

// RolePatch carries a partial role update. A nil Permissions slice means
// "not provided"; an empty non-nil slice clears the list.
type RolePatch struct {
	Name        *string      `json:"name,omitempty"`
	Description *string      `json:"description,omitempty"`
	UserCount   *int         `json:"userCount,omitempty"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// Merge returns r with every provided field of p applied over it.
func (p RolePatch) Merge(r Role) Role {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.UserCount != nil {
		r.UserCount = *p.UserCount
	}
	if p.Permissions != nil {
		r.Permissions = append([]Permission(nil), p.Permissions...)
	}
	return r
}

// HasPermission reports whether the role grants perm. "all" grants everything.
func (r Role) HasPermission(perm Permission) bool {
	for _, p := range r.Permissions {
		if p == perm || p == PermissionAll {
			return true
		}
	}
	return false
}

// Matches reports whether the role record describes the given user role,
// either by display title ("Administrator") or by the raw value ("admin").
func (r Role) Matches(role UserRole) bool {
	name := strings.TrimSpace(r.Name)
	return strings.EqualFold(name, role.Title()) || strings.EqualFold(name, string(role))
}
