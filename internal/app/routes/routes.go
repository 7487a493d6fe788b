package routes

import (
	"github.com/gin-gonic/gin"

	appauth "github.com/oalia/scholarsite/internal/app/auth"
	"github.com/oalia/scholarsite/internal/app/controllers"
	"github.com/oalia/scholarsite/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	publicationController *controllers.PublicationController,
	researchController *controllers.ResearchController,
	teachingController *controllers.TeachingController,
	messageController *controllers.MessageController,
	settingsController *controllers.SettingsController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public content routes ---
	// The visitor-facing site reads these without authentication.
	v1.GET("/publications", publicationController.ListPublications)
	v1.GET("/publications/:id", publicationController.GetPublication)

	v1.GET("/research", researchController.ListProjects)
	v1.GET("/research/:id", researchController.GetProject)

	v1.GET("/courses", teachingController.ListCourses)
	v1.GET("/courses/:id", teachingController.GetCourse)
	v1.GET("/courses/:id/materials", teachingController.ListMaterials)

	v1.GET("/settings", settingsController.GetSettings)

	// Contact form submission is the only public write.
	v1.POST("/messages", messageController.SubmitMessage)

	// --- Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)

		authRequired := auth.Group("")
		authRequired.Use(authMiddleware.JWTAuth())
		{
			authRequired.POST("/logout", authController.Logout)
			authRequired.POST("/logout-all", authController.LogoutAll)
			authRequired.GET("/me", authController.Me)
		}
	}

	// --- Admin dashboard routes ---
	// Guarded the way the dashboard route guard decides: unauthenticated
	// callers are sent to login, authenticated non-admins are sent home.
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.Guard(appauth.RequirePrivileged))
	{
		publications := admin.Group("/publications")
		{
			publications.POST("", publicationController.CreatePublication)
			publications.PUT("/:id", publicationController.UpdatePublication)
			publications.DELETE("/:id", publicationController.DeletePublication)
		}

		research := admin.Group("/research")
		{
			research.POST("", researchController.CreateProject)
			research.PUT("/:id", researchController.UpdateProject)
			research.DELETE("/:id", researchController.DeleteProject)
		}

		courses := admin.Group("/courses")
		{
			courses.POST("", teachingController.CreateCourse)
			courses.PUT("/:id", teachingController.UpdateCourse)
			courses.DELETE("/:id", teachingController.DeleteCourse)
			courses.POST("/:id/materials", teachingController.UploadMaterial)
		}
		admin.DELETE("/materials/:id", teachingController.DeleteMaterial)

		admin.POST("/uploads/images", teachingController.UploadCoverImage)

		messages := admin.Group("/messages")
		{
			messages.GET("", messageController.ListMessages)
			messages.GET("/unread-count", messageController.UnreadCount)
			messages.GET("/:id", messageController.ViewMessage)
			messages.DELETE("/:id", messageController.DeleteMessage)
		}

		admin.PUT("/settings", settingsController.UpdateSettings)

		users := admin.Group("/users")
		{
			users.GET("", userController.ListUsers)
			users.POST("", userController.CreateUser)
			users.PUT("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
		}
	}
}
