package domain

import (
	"strings"
	"time"
)

// Role is the coarse permission tier of a staff user.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor
}

// ParseRole converts untrusted input into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// User models an authenticated staff member.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserPatch carries a partial user update. A nil field means "no change".
// Passwords arrive here already hashed.
type UserPatch struct {
	Username     *string
	PasswordHash *string
	Role         *Role
	IsActive     *bool
}

// Empty reports whether the patch changes nothing persisted.
func (p UserPatch) Empty() bool {
	return p.Username == nil && p.PasswordHash == nil && p.Role == nil && p.IsActive == nil
}
