package routes

import (
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/oalia/scholarsite/internal/app/controllers"
	"github.com/oalia/scholarsite/internal/middleware"
)

func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	SetupRouter(router,
		&controllers.AuthController{},
		&controllers.PublicationController{},
		&controllers.ResearchController{},
		&controllers.TeachingController{},
		&controllers.MessageController{},
		&controllers.SettingsController{},
		&controllers.UserController{},
		middleware.NewAuthMiddleware(nil, ""),
	)

	routes := make(map[string]bool)
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func TestSetupRouterRegistersCoreEndpoints(t *testing.T) {
	routes := registeredRoutes(t)

	expected := []string{
		"GET /api/v1/publications",
		"GET /api/v1/research",
		"GET /api/v1/courses/:id/materials",
		"GET /api/v1/settings",
		"POST /api/v1/messages",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/logout",
		"POST /api/v1/auth/logout-all",
		"GET /api/v1/admin/messages",
		"GET /api/v1/admin/messages/unread-count",
		"POST /api/v1/admin/courses/:id/materials",
		"PUT /api/v1/admin/settings",
	}
	for _, route := range expected {
		if !routes[route] {
			t.Errorf("route %s not registered", route)
		}
	}
}
