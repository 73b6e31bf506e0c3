package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User represents an authenticated dashboard user
type User struct {
	BaseModel
	Email        string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password     string      `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	FullName     string      `gorm:"type:varchar(255)" json:"full_name" validate:"required"`
	PhoneNumber  string      `gorm:"type:varchar(20)" json:"phone_number"`
	Role         string      `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	CustomRoleID *uuid.UUID  `gorm:"type:uuid;index" json:"custom_role_id,omitempty"`
	CustomRole   *CustomRole `gorm:"foreignKey:CustomRoleID" json:"custom_role,omitempty"`
	IsActive     bool        `gorm:"default:true" json:"is_active"`
	TokenVersion string      `gorm:"type:varchar(255);default:''" json:"-"` // For single session enforcement
	LastSeenAt   *time.Time  `json:"last_seen_at,omitempty"`                // For user presence
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	FullName     string      `json:"full_name"`
	PhoneNumber  string      `json:"phone_number"`
	Role         string      `json:"role"`
	CustomRoleID *uuid.UUID  `json:"custom_role_id,omitempty"`
	CustomRole   *CustomRole `json:"custom_role,omitempty"`
	IsActive     bool        `json:"is_active"`
	LastSeenAt   *time.Time  `json:"last_seen_at,omitempty"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		PhoneNumber:  u.PhoneNumber,
		Role:         u.Role,
		CustomRoleID: u.CustomRoleID,
		CustomRole:   u.CustomRole,
		IsActive:     u.IsActive,
		LastSeenAt:   u.LastSeenAt,
	}
}

// IsValidLegacyRole reports whether code is one of the accepted legacy roles
func IsValidLegacyRole(code string) bool {
	for _, r := range LegacyRoles {
		if r == code {
			return true
		}
	}
	return false
}
