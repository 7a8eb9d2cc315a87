package domain

import "errors"

// Role is what a credential is allowed to do.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleBranch Role = "branch"
)

// Roles lists every known role.
var Roles = []Role{RoleAdmin, RoleBranch}

var (
	// ErrInvalidRole is returned for a role outside Roles.
	ErrInvalidRole = errors.New("invalid role")
	// ErrUnauthorized is returned when no usable credential was presented.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the credential's role may not use a route.
	ErrForbidden = errors.New("forbidden")
)

// ParseRole validates a raw role claim.
func ParseRole(raw string) (Role, error) {
	for _, r := range Roles {
		if Role(raw) == r {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}

// Principal is the authenticated caller of a request.
type Principal struct {
	Role Role `json:"role"`
	// Subject identifies the account, e.g. the user id or email claim. May be empty.
	Subject string `json:"subject,omitempty"`
	// Token is the raw credential, forwarded to the backend.
	Token string `json:"-"`
}

// Credentials is a login attempt.
type Credentials struct {
	Email    string
	Password string
	Role     Role
}
