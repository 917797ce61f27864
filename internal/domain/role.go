package domain

import "github.com/google/uuid"

// Role is an authorization role. An account without an assignment is RoleUser.
type Role string

const (
	RoleUser   Role = "user"
	RolePro    Role = "pro"
	RoleAgency Role = "agency"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RolePro, RoleAgency, RoleAdmin:
		return true
	}
	return false
}

// Identity is what the authentication provider vouches for.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Caller is the resolved identity of the actor behind a request.
// It is passed explicitly into every service operation.
type Caller struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

// IsAuthenticated reports whether the caller carries a user id.
func (c Caller) IsAuthenticated() bool {
	return c.UserID != uuid.Nil
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// Owns reports whether the caller may act on a resource owned by ownerID.
// Admins own everything.
func (c Caller) Owns(ownerID uuid.UUID) bool {
	return c.IsAdmin() || (c.UserID != uuid.Nil && c.UserID == ownerID)
}
