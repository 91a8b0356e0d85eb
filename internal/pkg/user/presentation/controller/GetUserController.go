package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/user/persistence/repository/port"
)

// GetUserController handles GET /users/:userId.
type GetUserController struct {
	Repo repository.UserRepository
}

func NewGetUserController(repo repository.UserRepository) *GetUserController {
	return &GetUserController{Repo: repo}
}

func (h *GetUserController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		u, err := h.Repo.GetUser(ctx, c.Param("userId"))
		if err != nil {
			respond.Failure(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u})
	}
}
