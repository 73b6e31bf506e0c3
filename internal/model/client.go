package model

import "github.com/google/uuid"

// Client statuses
const (
	ClientStatusActive  = "active"
	ClientStatusPaused  = "paused"
	ClientStatusChurned = "churned"
)

// Client represents a managed marketing client account
type Client struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email       string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	PhoneNumber string `gorm:"type:varchar(20)" json:"phone_number"`
	Company     string `gorm:"type:varchar(255)" json:"company"`
	Status      string `gorm:"type:varchar(20);not null;default:'active'" json:"status" validate:"omitempty,oneof=active paused churned"`
	Notes       string `gorm:"type:text" json:"notes"`

	// Account manager responsible for this client
	AssignedUserID *uuid.UUID `gorm:"type:uuid;index" json:"assigned_user_id,omitempty"`
	AssignedUser   *User      `gorm:"foreignKey:AssignedUserID" json:"assigned_user,omitempty"`
}
