package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/junaidrashid-git/plantas-api/controllers/admin"
	leadControllers "github.com/junaidrashid-git/plantas-api/controllers/lead"
	projectcontroller "github.com/junaidrashid-git/plantas-api/controllers/project"
	userControllers "github.com/junaidrashid-git/plantas-api/controllers/user"
	"github.com/junaidrashid-git/plantas-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AdminOnly(d.AdminAPIKey, d.JWTSecret))
	{
		// ─────────── Admin & User Management ───────────
		adminGroup.GET("/admins", adminController.GetAllAdmins(d.DB, d.Log))
		adminGroup.GET("/users", userControllers.GetAllUsers(d.DB))

		// ─────────── Project Management ───────────
		projectAdmin := adminGroup.Group("/projects")
		{
			projectAdmin.GET("", projectcontroller.GetAllProjects(d.DB))
			projectAdmin.POST("", projectcontroller.CreateProject(d.DB, d.UploadsDir))
			projectAdmin.PUT("/:id", projectcontroller.UpdateProject(d.DB, d.UploadsDir))
			projectAdmin.DELETE("/:id", projectcontroller.DeleteProject(d.DB, d.UploadsDir))
			projectAdmin.POST("/:id/images", projectcontroller.AddProjectImage(d.DB, d.UploadsDir))
			projectAdmin.DELETE("/:id/images", projectcontroller.DeleteProjectImage(d.DB, d.UploadsDir))
			projectAdmin.POST("/import-excel", projectcontroller.ImportProjectsFromExcel(d.DB))
			projectAdmin.GET("/export-excel", projectcontroller.ExportProjectsToExcel(d.DB))
		}

		// ─────────── Style Management ───────────
		styleAdmin := adminGroup.Group("/styles")
		{
			styleAdmin.GET("", projectcontroller.GetStyles(d.DB))
			styleAdmin.POST("", projectcontroller.CreateStyle(d.DB, d.UploadsDir))
			styleAdmin.PUT("/:id", projectcontroller.UpdateStyle(d.DB, d.UploadsDir))
			styleAdmin.DELETE("/:id", projectcontroller.DeleteStyle(d.DB, d.UploadsDir))
		}

		// ─────────── Leads ───────────
		leadAdmin := adminGroup.Group("/leads")
		{
			leadAdmin.GET("", leadControllers.GetLeadsHandler(d.DB))
			leadAdmin.GET("/export-excel", leadControllers.ExportLeadsToExcel(d.DB))
			leadAdmin.PUT("/:id/status", leadControllers.UpdateLeadStatusHandler(d.DB))
			leadAdmin.DELETE("/:id", leadControllers.DeleteLeadHandler(d.DB))
		}
		adminGroup.GET("/ws/leads", d.LeadFeed.Handler)

		// ─────────── Admin Approval Workflow ───────────
		adminMgmt := adminGroup.Group("/admin-management")
		{
			adminMgmt.GET("/pending", adminController.ListPendingAdmins(d.DB))
			adminMgmt.POST("/approve", adminController.ApproveAdmin(d.DB, d.Log))
			adminMgmt.POST("/reject", adminController.RejectAdmin(d.DB, d.Log))
		}

		// ─────────── Storefront Banners ───────────
		bannerMgmt := adminGroup.Group("/banner")
		{
			bannerMgmt.POST("/upload", adminController.UploadBanner(d.DB, d.UploadsDir))
			bannerMgmt.GET("", adminController.GetBanners(d.DB, false))
			bannerMgmt.DELETE("/:id", adminController.DeleteBanner(d.DB, d.UploadsDir))
		}
	}
}
