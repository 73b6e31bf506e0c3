package model

import "github.com/google/uuid"

// Notification is a message shown in the dashboard notification tray.
// A nil UserID means the notification is broadcast to every user.
type Notification struct {
	BaseModel
	UserID  *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Title   string     `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Message string     `gorm:"type:text" json:"message"`
	Read    bool       `gorm:"default:false" json:"read"`
}
