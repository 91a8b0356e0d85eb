package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	"github.com/Chizihn/glubon-admin/internal/pkg/session/application/usecase"
	"github.com/Chizihn/glubon-admin/internal/pkg/session/presentation/middleware"
)

// LogoutController handles POST /auth/logout. It always clears the cookie.
type LogoutController struct {
	Store  *usecase.Store
	Cookie Cookie
}

func NewLogoutController(store *usecase.Store, cookie Cookie) *LogoutController {
	return &LogoutController{Store: store, Cookie: cookie}
}

func (h *LogoutController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.Store.Logout(c.Request.Context(), middleware.Token(c, h.Cookie.Name)); err != nil {
			log.Printf("session: logout: %v", err)
		}
		h.Cookie.clear(c)
		c.JSON(http.StatusOK, gin.H{"redirect": respond.LoginPath})
	}
}
