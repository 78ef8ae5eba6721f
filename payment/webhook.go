package payment

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/webhook"
)

// Outcome of a checkout session as reported by the processor.
type Outcome string

const (
	OutcomePaid    Outcome = "paid"
	OutcomePending Outcome = "pending" // boleto issued, not yet settled
	OutcomeFailed  Outcome = "failed"
)

// CheckoutEvent is the part of a webhook event the storefront cares about.
type CheckoutEvent struct {
	SessionID string
	LeadID    string
	Outcome   Outcome
}

// WebhookVerifier authenticates a raw webhook payload and decodes it.
type WebhookVerifier func(payload []byte, signatureHeader string) (stripe.Event, error)

// StripeWebhookVerifier checks the Stripe-Signature header against secret.
func StripeWebhookVerifier(secret string) WebhookVerifier {
	return func(payload []byte, signatureHeader string) (stripe.Event, error) {
		return webhook.ConstructEventWithOptions(payload, signatureHeader, secret, webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
	}
}

// ParseCheckoutEvent extracts a CheckoutEvent. ok is false for event types
// that do not affect a checkout.
func ParseCheckoutEvent(event stripe.Event) (ev *CheckoutEvent, ok bool, err error) {
	var outcome Outcome
	switch string(event.Type) {
	case "checkout.session.completed":
		outcome = OutcomePending
	case "checkout.session.async_payment_succeeded":
		outcome = OutcomePaid
	case "checkout.session.async_payment_failed", "checkout.session.expired":
		outcome = OutcomeFailed
	default:
		return nil, false, nil
	}
	if event.Data == nil {
		return nil, false, fmt.Errorf("event %s has no data", event.ID)
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, false, fmt.Errorf("decode checkout session: %w", err)
	}
	// Card payments settle before checkout.session.completed fires.
	if outcome == OutcomePending && sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
		outcome = OutcomePaid
	}

	return &CheckoutEvent{
		SessionID: sess.ID,
		LeadID:    sess.Metadata["lead_id"],
		Outcome:   outcome,
	}, true, nil
}
