package model

import "time"

// SettingModel is the GORM-specific struct for the 'settings' key/value table.
type SettingModel struct {
	Key       string `gorm:"type:varchar(100);primary_key"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingModel) TableName() string {
	return "settings"
}
