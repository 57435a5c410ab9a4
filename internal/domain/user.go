package domain

import "github.com/google/uuid"

type Role string

const (
	RoleMember     Role = "Member"
	RoleSupervisor Role = "Supervisor"
	RoleAdmin      Role = "Admin"
)

func NewRole(value string) (Role, error) {
	switch Role(value) {
	case RoleMember, RoleSupervisor, RoleAdmin:
		return Role(value), nil
	default:
		return "", NewInvalidRole(value)
	}
}

// User is referenced by tasks, solutions and reviews but owned by none of
// them; its lifecycle is managed outside the task aggregate.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	Role         Role
}

func NewUser(email, username, passwordHash string, role Role) *User {
	return &User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
}
