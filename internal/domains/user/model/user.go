package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Built-in roles. Roles are free-form strings in storage; these are the ones the API checks.
const (
	RoleAdministrator = "Administrator"
	RoleCustomer      = "Customer"
)

// User is an identity record. The password is only ever stored as a bcrypt hash.
type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	UserName     string `gorm:"size:256;uniqueIndex;not null"`
	Email        string `gorm:"size:256;not null"`
	PasswordHash string `gorm:"not null"`

	Roles []UserRole `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID when the caller did not.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// RoleNames returns the role names in storage order.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// UserRole grants one role to one user.
type UserRole struct {
	UserID string `gorm:"primaryKey;size:36"`
	Name   string `gorm:"primaryKey;size:256"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
