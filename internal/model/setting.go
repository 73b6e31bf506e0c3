package model

// Setting is a single key/value configuration entry managed from the
// dashboard settings screens
type Setting struct {
	BaseModel
	Key      string `gorm:"type:varchar(100);uniqueIndex;not null" json:"key" validate:"required"`
	Value    string `gorm:"type:text" json:"value"`
	Category string `gorm:"type:varchar(50);index" json:"category"`
}
