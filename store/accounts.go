package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/junaidrashid-git/plantas-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Accounts keeps admin and customer profiles in sync with Google logins.
type Accounts struct {
	db *gorm.DB
}

func NewAccounts(db *gorm.DB) *Accounts {
	return &Accounts{db: db}
}

// AdminLogin returns the admin row for email, refreshing its profile. An
// unknown email is registered unapproved and created is true.
func (s *Accounts) AdminLogin(ctx context.Context, email, name, picture string) (admin models.Admin, created bool, err error) {
	email = strings.ToLower(strings.TrimSpace(email))
	db := s.db.WithContext(ctx)

	err = db.Where("email = ?", email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		admin = models.Admin{Email: email, Name: name, Picture: picture, Approved: false}
		if err := db.Create(&admin).Error; err != nil {
			return admin, false, fmt.Errorf("register admin: %w", err)
		}
		return admin, true, nil
	}
	if err != nil {
		return admin, false, fmt.Errorf("find admin: %w", err)
	}

	if err := db.Model(&admin).Updates(models.Admin{Name: name, Picture: picture}).Error; err != nil {
		return admin, false, fmt.Errorf("update admin: %w", err)
	}
	// Approval may have changed since the row was read.
	if err := db.First(&admin, admin.ID).Error; err != nil {
		return admin, false, fmt.Errorf("reload admin: %w", err)
	}
	return admin, false, nil
}

// UpsertUser creates the customer or refreshes its name and picture.
func (s *Accounts) UpsertUser(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "picture", "email", "updated_at"}),
	}).Create(user).Error
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}
