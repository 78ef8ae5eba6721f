package models

import "time"

// User is a storefront customer signed in with Google. ID is the identity
// provider uid, the same value carried in the token's sub claim.
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(128)" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
