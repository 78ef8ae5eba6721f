package checkoutControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/middleware"
)

// CreateSessionHandler answers POST /checkout/session with 200 {"url"} or
// 400 {"error"}.
func CreateSessionHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
			return
		}

		session, err := svc.CreateSession(c.Request.Context(), &req, middleware.Claims(c))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": session.URL})
	}
}
