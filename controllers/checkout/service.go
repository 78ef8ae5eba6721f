package checkoutControllers

import (
	"context"
	"errors"
	"strings"

	"github.com/junaidrashid-git/plantas-api/models"
	"github.com/junaidrashid-git/plantas-api/payment"
	"go.uber.org/zap"
)

const maxMetadataValue = 500

// Catalog reads authoritative project rows by id.
type Catalog interface {
	FindByIDs(ctx context.Context, ids []string, claims map[string]any) ([]models.Project, error)
}

// Config holds everything the checkout needs.
type Config struct {
	Catalog   Catalog
	Processor payment.SessionCreator
	Currency  string
	// DefaultReturnURL is used when the request carries no returnUrl.
	DefaultReturnURL string
	// StrictProducts rejects the whole cart when an id matches no project.
	StrictProducts bool
	Logger         *zap.Logger
}

// Service prices carts and opens hosted payment sessions.
type Service struct {
	cfg Config
}

func NewService(cfg Config) *Service {
	if cfg.Currency == "" {
		cfg.Currency = "brl"
	}
	cfg.Currency = strings.ToLower(cfg.Currency)
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Service{cfg: cfg}
}

// CreateSession validates req, prices it from the catalog and asks the
// processor for a session. claims, when non-nil, are forwarded to the
// catalog read.
func (s *Service) CreateSession(ctx context.Context, req *Request, claims map[string]any) (*payment.Session, error) {
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "body", Message: "missing"}}}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = s.cfg.DefaultReturnURL
	}
	base, err := parseReturnURL(returnURL)
	if err != nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "returnUrl", Message: err.Error()}}}
	}

	ids := distinctIDs(req.Items)
	projects, err := s.cfg.Catalog.FindByIDs(ctx, ids, claims)
	if err != nil {
		s.cfg.Logger.Error("checkout catalog read failed", zap.Strings("ids", ids), zap.Error(err))
		return nil, &UpstreamDataError{Err: err}
	}

	lines, missing := BuildLineItems(req.Items, projects)
	if len(missing) > 0 {
		if s.cfg.StrictProducts {
			verr := &ValidationError{}
			verr.add("items", "unknown product ids: %s", strings.Join(missing, ", "))
			return nil, verr
		}
		s.cfg.Logger.Warn("checkout skipped unknown products", zap.Strings("ids", missing))
	}

	sessionReq := &payment.SessionRequest{
		LineItems:          lines,
		Currency:           s.cfg.Currency,
		PaymentMethodTypes: []string{payment.MethodCard, payment.MethodBoleto},
		SuccessURL:         withMarker(base, "success"),
		CancelURL:          withMarker(base, "canceled"),
		CustomerEmail:      strings.TrimSpace(req.CustomerEmail),
		Metadata:           sessionMetadata(ids, req.LeadID),
	}

	session, err := s.cfg.Processor.CreateSession(ctx, sessionReq)
	if err != nil {
		s.cfg.Logger.Error("checkout session rejected",
			zap.Int("line_items", len(lines)),
			zap.Error(err))
		return nil, &PaymentProviderError{Err: err}
	}
	if session == nil || session.URL == "" {
		return nil, &PaymentProviderError{Err: errors.New("processor returned no session url")}
	}

	s.cfg.Logger.Info("checkout session created",
		zap.String("session_id", session.ID),
		zap.Int("line_items", len(lines)),
		zap.Int64("total", sessionReq.Total()),
		zap.String("currency", s.cfg.Currency))
	return session, nil
}

func sessionMetadata(ids []string, leadID string) map[string]string {
	joined := strings.Join(ids, ",")
	if len(joined) > maxMetadataValue {
		joined = joined[:maxMetadataValue]
	}
	md := map[string]string{
		"project_ids": joined,
		"source":      "storefront",
	}
	if leadID != "" {
		md["lead_id"] = leadID
	}
	return md
}
