// Package models contains data structures for the application's domain models.
package models

import "time"

// UserRole defines the authorization level of a user account.
type UserRole string

const (
	// UserRoleUser is the default role for registered accounts.
	UserRoleUser UserRole = "user"
	// UserRoleAdmin grants access to content-management endpoints.
	UserRoleAdmin UserRole = "admin"
)

// User represents an administrator/author account.
// The password hash is never serialized into responses.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:30;unique;not null" json:"username"`
	Email        string    `gorm:"size:254;unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(10);not null;default:'user'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
