package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadStatus string
type LeadSource string

const (
	LeadStatusNew             LeadStatus = "new"              // Captured, nobody talked to them yet
	LeadStatusContacted       LeadStatus = "contacted"        // Sales reached out
	LeadStatusCheckoutStarted LeadStatus = "checkout_started" // Went to the payment page
	LeadStatusPaid            LeadStatus = "paid"             // Payment confirmed by webhook
	LeadStatusLost            LeadStatus = "lost"             // Gave up

	LeadSourceCheckout LeadSource = "checkout"
	LeadSourceContact  LeadSource = "contact"
	LeadSourceWhatsApp LeadSource = "whatsapp"
)

var ErrInvalidLeadStatus = errors.New("invalid lead status")

// ParseLeadStatus maps user input to a LeadStatus.
func ParseLeadStatus(s string) (LeadStatus, error) {
	switch LeadStatus(strings.ToLower(strings.TrimSpace(s))) {
	case LeadStatusNew:
		return LeadStatusNew, nil
	case LeadStatusContacted:
		return LeadStatusContacted, nil
	case LeadStatusCheckoutStarted:
		return LeadStatusCheckoutStarted, nil
	case LeadStatusPaid:
		return LeadStatusPaid, nil
	case LeadStatusLost:
		return LeadStatusLost, nil
	default:
		return "", ErrInvalidLeadStatus
	}
}

// ParseLeadSource defaults unknown or empty values to contact.
func ParseLeadSource(s string) LeadSource {
	switch LeadSource(strings.ToLower(strings.TrimSpace(s))) {
	case LeadSourceCheckout:
		return LeadSourceCheckout
	case LeadSourceWhatsApp:
		return LeadSourceWhatsApp
	default:
		return LeadSourceContact
	}
}

type Lead struct {
	ID                string     `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name              string     `json:"name"`
	Email             string     `gorm:"index;not null" json:"email"`
	Phone             string     `json:"phone"`
	Message           string     `json:"message"`
	ProjectIDs        string     `json:"project_ids"` // comma separated
	Source            LeadSource `gorm:"type:VARCHAR(20);default:'contact'" json:"source"`
	Status            LeadStatus `gorm:"type:VARCHAR(20);default:'new';index" json:"status"`
	CheckoutSessionID string     `gorm:"index" json:"checkout_session_id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
