package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	"github.com/Chizihn/glubon-admin/internal/pkg/session/application/usecase"
)

// LoginController handles POST /auth/login.
type LoginController struct {
	Store  *usecase.Store
	Cookie Cookie
}

func NewLoginController(store *usecase.Store, cookie Cookie) *LoginController {
	return &LoginController{Store: store, Cookie: cookie}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *LoginController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if !respond.BindJSON(c, &req) {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		sess, err := h.Store.Login(ctx, req.Email, req.Password)
		if err != nil {
			respond.Failure(c, err)
			return
		}

		h.Cookie.set(c, sess.Token, sess.ExpiresAt)
		c.JSON(http.StatusOK, gin.H{
			"user":      sess.User,
			"expiresAt": sess.ExpiresAt,
			"redirect":  "/",
		})
	}
}
