package user

import "time"

// Roles a principal can sign up with.
const (
	RoleStudent     = "student"
	RoleUniversity  = "university"
	RoleEmployer    = "employer"
	RolePolicymaker = "policymaker"
	RoleUser        = "user"
)

// User is the client-held representation of an authenticated principal.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleUniversity, RoleEmployer, RolePolicymaker, RoleUser:
		return true
	}
	return false
}
