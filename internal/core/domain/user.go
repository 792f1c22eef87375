package domain

import "time"

// Role is the closed set of authorization roles.
type Role string

const (
	// RoleUser is the default role: no administrative access.
	RoleUser Role = "user"
	// RoleAdmin grants full access, including mutating other users' roles.
	RoleAdmin Role = "admin"
	// RoleFinance grants read access to donations and gateway configuration,
	// and write access to donation status only.
	RoleFinance Role = "finance"
)

// ValidRole reports whether r belongs to the known role set.
func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleAdmin, RoleFinance:
		return true
	}
	return false
}

// User models a registered identity. The role string is the single source of
// truth for authorization; IsAdmin is derived, never stored.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
