package routes

import (
	"github.com/gin-gonic/gin"
	checkoutControllers "github.com/junaidrashid-git/plantas-api/controllers/checkout"
	"github.com/junaidrashid-git/plantas-api/middleware"
)

// PublicPreflightPaths are answered by Preflight whatever the request origin.
var PublicPreflightPaths = []string{"/checkout/session"}

func SetupCheckoutRoutes(r *gin.Engine, d Deps) {
	checkout := r.Group("/checkout")
	{
		checkout.OPTIONS("/session", middleware.Preflight(d.CORSAllowedOrigin))

		// Guest checkout; a valid token only forwards the caller's claims.
		checkout.POST("/session",
			middleware.OptionalToken(d.JWTSecret),
			checkoutControllers.CreateSessionHandler(d.Checkout),
		)
	}
}
