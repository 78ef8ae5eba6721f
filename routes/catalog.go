package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/junaidrashid-git/plantas-api/controllers/admin"
	leadControllers "github.com/junaidrashid-git/plantas-api/controllers/lead"
	projectcontroller "github.com/junaidrashid-git/plantas-api/controllers/project"
)

// SetupCatalogRoutes registers the public storefront endpoints.
func SetupCatalogRoutes(r *gin.Engine, d Deps) {
	r.GET("/projects", projectcontroller.GetProjects(d.DB))
	r.GET("/projects/:slug", projectcontroller.GetProjectBySlug(d.DB))
	r.GET("/styles", projectcontroller.GetStyles(d.DB))
	r.GET("/banners", adminController.GetBanners(d.DB, true))

	r.POST("/leads", leadControllers.CreateLeadHandler(d.DB, d.LeadFeed, d.Log))
}
