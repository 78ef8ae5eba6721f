package paymentControllers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/models"
	"github.com/junaidrashid-git/plantas-api/payment"
	"go.uber.org/zap"
)

const maxWebhookBody = 65536

// LeadUpdater records checkout progress on a lead.
type LeadUpdater interface {
	MarkCheckout(ctx context.Context, leadID, sessionID string, status models.LeadStatus) error
}

var outcomeStatus = map[payment.Outcome]models.LeadStatus{
	payment.OutcomePending: models.LeadStatusCheckoutStarted,
	payment.OutcomePaid:    models.LeadStatusPaid,
	payment.OutcomeFailed:  models.LeadStatusLost,
}

// WebhookHandler receives processor events for checkout sessions and moves
// the related lead along. Events without a lead are acknowledged and ignored.
func WebhookHandler(verify payment.WebhookVerifier, leads LeadUpdater, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "failed to read body"})
			return
		}

		event, err := verify(payload, c.GetHeader("Stripe-Signature"))
		if err != nil {
			log.Warn("webhook signature rejected", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
			return
		}

		ev, ok, err := payment.ParseCheckoutEvent(event)
		if err != nil {
			log.Warn("webhook payload rejected", zap.String("event_id", event.ID), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !ok || ev.LeadID == "" {
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		status := outcomeStatus[ev.Outcome]
		if err := leads.MarkCheckout(c.Request.Context(), ev.LeadID, ev.SessionID, status); err != nil {
			log.Error("failed to update lead from webhook",
				zap.String("lead_id", ev.LeadID),
				zap.String("session_id", ev.SessionID),
				zap.Error(err))
			// A 5xx makes the processor redeliver the event.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update lead"})
			return
		}

		log.Info("lead updated from checkout",
			zap.String("lead_id", ev.LeadID),
			zap.String("session_id", ev.SessionID),
			zap.String("status", string(status)))
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
