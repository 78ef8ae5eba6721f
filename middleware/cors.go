package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	allowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	allowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY", "X-Client-Info", "Apikey"}
)

// CORS configures cross origin access for the storefront. "*" allows any origin.
// OPTIONS requests for openPaths bypass the origin check and are answered by
// the route's own Preflight handler.
func CORS(allowedOrigin string, openPaths ...string) gin.HandlerFunc {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	cfg := cors.Config{
		AllowMethods:  allowMethods,
		AllowHeaders:  allowHeaders,
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if allowedOrigin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{allowedOrigin}
		cfg.AllowCredentials = true
	}
	handler := cors.New(cfg)
	if len(openPaths) == 0 {
		return handler
	}

	open := make(map[string]struct{}, len(openPaths))
	for _, p := range openPaths {
		open[p] = struct{}{}
	}
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			if _, ok := open[c.Request.URL.Path]; ok {
				c.Next()
				return
			}
		}
		handler(c)
	}
}

// Preflight answers OPTIONS with permissive headers and no body, also for
// clients that omit the Origin header.
func Preflight(allowedOrigin string) gin.HandlerFunc {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigin)
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		c.AbortWithStatus(http.StatusNoContent)
	}
}
