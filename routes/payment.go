package routes

import (
	"github.com/gin-gonic/gin"
	paymentControllers "github.com/junaidrashid-git/plantas-api/controllers/payment"
)

func SetupPaymentRoutes(r *gin.Engine, d Deps) {
	paymentGroup := r.Group("/payment")
	{
		// Signature is checked inside the handler against the raw body.
		paymentGroup.POST("/webhook", paymentControllers.WebhookHandler(d.WebhookVerifier, d.Leads, d.Log))
	}
}
