package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/auth"
	checkoutControllers "github.com/junaidrashid-git/plantas-api/controllers/checkout"
	leadControllers "github.com/junaidrashid-git/plantas-api/controllers/lead"
	paymentControllers "github.com/junaidrashid-git/plantas-api/controllers/payment"
	"github.com/junaidrashid-git/plantas-api/payment"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Accounts is implemented by store.Accounts.
type Accounts interface {
	auth.AdminDirectory
	auth.UserDirectory
}

// Deps is everything the route groups need, built once in main.
type Deps struct {
	DB  *gorm.DB
	Log *zap.Logger

	CORSAllowedOrigin string
	JWTSecret         string
	AdminAPIKey       string
	SuperAdminEmail   string
	UploadsDir        string

	Checkout        *checkoutControllers.Service
	WebhookVerifier payment.WebhookVerifier
	Leads           paymentControllers.LeadUpdater
	LeadFeed        *leadControllers.Hub

	Accounts   Accounts
	IDVerifier auth.IDTokenVerifier // nil when Google login is not configured
	Tokens     *auth.TokenIssuer
}

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, d)

	// Public catalog and lead capture
	SetupCatalogRoutes(r, d)

	// Guest checkout, optionally authenticated
	SetupCheckoutRoutes(r, d)

	// Payment processor callbacks
	SetupPaymentRoutes(r, d)

	// User routes (JWT-protected)
	SetupUserRoutes(r, d)

	// Admin routes (API key or admin JWT)
	SetupAdminRoutes(r, d)
}
