package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
	"go.uber.org/zap"
)

// Stripe opens Checkout Sessions through the Stripe API.
type Stripe struct {
	api *client.API
	log *zap.Logger
}

func NewStripe(secretKey string, log *zap.Logger) *Stripe {
	if log == nil {
		log = zap.NewNop()
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Stripe{api: api, log: log}
}

// CreateSession is not retried: a second call would open a second session.
func (s *Stripe) CreateSession(ctx context.Context, req *SessionRequest) (*Session, error) {
	if req == nil {
		return nil, errors.New("session request is nil")
	}
	params := sessionParams(req)
	params.Context = ctx

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		var se *stripe.Error
		if errors.As(err, &se) {
			s.log.Warn("stripe rejected checkout session",
				zap.String("code", string(se.Code)),
				zap.Int("status", se.HTTPStatusCode),
				zap.String("message", se.Msg))
			return nil, fmt.Errorf("stripe: %s", se.Msg)
		}
		return nil, fmt.Errorf("stripe: create checkout session: %w", err)
	}

	s.log.Info("stripe checkout session created",
		zap.String("session_id", sess.ID),
		zap.Int("line_items", len(req.LineItems)),
		zap.Int64("amount_total", req.Total()))
	return &Session{ID: sess.ID, URL: sess.URL}, nil
}

func sessionParams(req *SessionRequest) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:     stripe.String(li.Name),
			Metadata: li.Metadata.Map(),
		}
		if li.Description != "" {
			productData.Description = stripe.String(li.Description)
		}
		quantity := li.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(req.Currency),
				UnitAmount:  stripe.Int64(li.UnitAmount),
				ProductData: productData,
			},
			Quantity: stripe.Int64(quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice(req.PaymentMethodTypes),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	return params
}
