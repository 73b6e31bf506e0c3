package model

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a single entry in the audit/activity log. Entries are written
// by services when a user performs a mutating operation and are read-only
// through the API.
type Activity struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	UserName string    `gorm:"type:varchar(255)" json:"user_name"` // Denormalized for display
	Module   string    `gorm:"type:varchar(50);not null;index" json:"module"`
	Action   string    `gorm:"type:varchar(50);not null" json:"action"`
	Detail   string    `gorm:"type:text" json:"detail"`
}

// TableName specifies the table name for GORM
func (Activity) TableName() string {
	return "activities"
}

// ActivityResponse for API responses
type ActivityResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Module    string    `json:"module"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts Activity to ActivityResponse
func (a *Activity) ToResponse() ActivityResponse {
	return ActivityResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		UserName:  a.UserName,
		Module:    a.Module,
		Action:    a.Action,
		Detail:    a.Detail,
		CreatedAt: a.CreatedAt,
	}
}
