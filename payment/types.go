package payment

import "context"

const (
	MethodCard   = "card"
	MethodBoleto = "boleto"

	KindProduct = "product"
	KindAddon   = "addon"
)

// LineItemMetadata identifies what a line item was priced from.
type LineItemMetadata struct {
	ProductID string
	Kind      string // KindProduct or KindAddon
	AddonType string // empty for KindProduct
}

// Map renders the metadata the way the processor stores it.
func (m LineItemMetadata) Map() map[string]string {
	out := map[string]string{
		"product_id": m.ProductID,
		"kind":       m.Kind,
	}
	if m.AddonType != "" {
		out["addon_type"] = m.AddonType
	}
	return out
}

// LineItem is one priced entry of the hosted checkout page.
type LineItem struct {
	Name        string
	Description string
	UnitAmount  int64 // currency minor units
	Quantity    int64
	Metadata    LineItemMetadata
}

// SessionRequest is everything the processor needs to open a hosted checkout.
type SessionRequest struct {
	LineItems          []LineItem
	Currency           string
	PaymentMethodTypes []string
	SuccessURL         string
	CancelURL          string
	CustomerEmail      string
	Metadata           map[string]string
}

// Total sums unit amount times quantity over every line item.
func (r *SessionRequest) Total() int64 {
	var total int64
	for _, li := range r.LineItems {
		total += li.UnitAmount * li.Quantity
	}
	return total
}

// Session is the processor's answer: where to send the buyer.
type Session struct {
	ID  string
	URL string
}

// SessionCreator opens hosted checkout sessions.
type SessionCreator interface {
	CreateSession(ctx context.Context, req *SessionRequest) (*Session, error)
}
