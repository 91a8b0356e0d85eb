package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	session "github.com/Chizihn/glubon-admin/internal/pkg/session/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/session/application/usecase"
	"github.com/Chizihn/glubon-admin/internal/pkg/session/presentation/middleware"
)

// MeController serves GET /auth/me and PATCH /auth/me.
type MeController struct {
	Store *usecase.Store
}

func NewMeController(store *usecase.Store) *MeController {
	return &MeController{Store: store}
}

func (h *MeController) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.Current(c)
		if !ok {
			respond.Failure(c, usecase.ErrNoSession)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": sess.User, "expiresAt": sess.ExpiresAt})
	}
}

func (h *MeController) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.Current(c)
		if !ok {
			respond.Failure(c, usecase.ErrNoSession)
			return
		}
		var in session.ProfileInput
		if !respond.BindJSON(c, &in) {
			return
		}
		updated, err := h.Store.UpdateUser(c.Request.Context(), sess.Token, in)
		if err != nil {
			respond.Failure(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": updated.User, "message": "Profile updated"})
	}
}
