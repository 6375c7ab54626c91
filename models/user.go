package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role grants permissions to users by name ("admin", "guest").
type Role struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:uq_roles_name"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// User is a login identity. There is no self-registration; rows are
// seeded or entered by hand, matching the single-admin deployment.
type User struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Username     string    `json:"username" db:"username" gorm:"type:text;not null;uniqueIndex:uq_users_username"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"type:text;not null"`
	RoleID       uuid.UUID `json:"roleId" db:"role_id" gorm:"type:uuid;not null"`

	Role Role `json:"role,omitempty" gorm:"foreignKey:RoleID;references:ID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsAdmin reports whether the user's role carries admin capability.
// Requires Role to be preloaded.
func (u *User) IsAdmin() bool {
	return u.Role.Name == "admin"
}

// Actor is the capability view of a user threaded through mutating
// engine operations. The core checks IsAdmin and nothing else; how the
// flag was established (session, token) is the caller's concern.
type Actor struct {
	UserID  uuid.UUID `json:"userId"`
	IsAdmin bool      `json:"isAdmin"`
}
