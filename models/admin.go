package models

import "time"

// Admin is a back-office operator. New Google logins land here unapproved
// until the super admin approves them.
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique" json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}
