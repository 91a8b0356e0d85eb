package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/session/application/usecase"
	"github.com/Chizihn/glubon-admin/internal/pkg/session/presentation/controller"
	"github.com/Chizihn/glubon-admin/internal/pkg/session/presentation/middleware"
)

// RegisterRoutes mounts the /auth endpoints. Login is public; the rest need a session.
func RegisterRoutes(g *gin.RouterGroup, store *usecase.Store, cookie controller.Cookie) {
	loginCtl := controller.NewLoginController(store, cookie)
	logoutCtl := controller.NewLogoutController(store, cookie)
	meCtl := controller.NewMeController(store)

	auth := g.Group("/auth")
	// POST /api/v1/auth/login
	auth.POST("/login", loginCtl.Handle())
	// POST /api/v1/auth/logout
	auth.POST("/logout", logoutCtl.Handle())

	me := auth.Group("/me", middleware.RequireSession(store, cookie.Name))
	// GET /api/v1/auth/me
	me.GET("", meCtl.Get())
	// PATCH /api/v1/auth/me
	me.PATCH("", meCtl.Update())
}
