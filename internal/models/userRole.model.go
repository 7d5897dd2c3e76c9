package models

import "github.com/google/uuid"

type AppRole string

const (
	RoleAdmin AppRole = "admin"
	RoleUser  AppRole = "user"
)

func (r AppRole) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// UserRole grants a role to a user. Admin grants gate the administrative
// endpoints; every sign-up receives the user role.
type UserRole struct {
	BaseUUIDModel
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_roles_user_role" json:"userId"`
	Role   AppRole   `gorm:"type:text;not null;uniqueIndex:idx_user_roles_user_role" json:"role"`
}
