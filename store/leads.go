package store

import (
	"context"
	"fmt"

	"github.com/junaidrashid-git/plantas-api/models"
	"gorm.io/gorm"
)

// Leads updates lead rows on behalf of the payment webhook.
type Leads struct {
	db *gorm.DB
}

func NewLeads(db *gorm.DB) *Leads {
	return &Leads{db: db}
}

// MarkCheckout records the checkout session and the new status of a lead.
// A paid lead is never moved back to another status.
func (s *Leads) MarkCheckout(ctx context.Context, leadID, sessionID string, status models.LeadStatus) error {
	res := s.db.WithContext(ctx).Model(&models.Lead{}).
		Where("id = ? AND status <> ?", leadID, models.LeadStatusPaid).
		Updates(map[string]interface{}{
			"status":              status,
			"checkout_session_id": sessionID,
		})
	if res.Error != nil {
		return fmt.Errorf("update lead %s: %w", leadID, res.Error)
	}
	return nil
}
