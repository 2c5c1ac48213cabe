package domain

import "time"

// Role is the closed set of permission classes an account can hold.
type Role string

const (
	RoleMember   Role = "member"
	RoleOperator Role = "operator"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleMember || r == RoleOperator
}

// Account is the domain model for members and operators.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	Favorites    []string
	Agency       string
	PhotoURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
