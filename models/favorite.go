package models

import "time"

// Favorite links an authenticated user to a saved project.
type Favorite struct {
	UserID    string    `gorm:"primaryKey;type:varchar(128)" json:"user_id"`
	ProjectID string    `gorm:"primaryKey;type:varchar(64)" json:"project_id"`
	Project   Project   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project"`
	CreatedAt time.Time `json:"created_at"`
}
