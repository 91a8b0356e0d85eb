package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/notification/application/usecase"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/notification/persistence/repository/port"
)

type UnreadCountController struct {
	Repo repository.NotificationRepository
}

func NewUnreadCountController(repo repository.NotificationRepository) *UnreadCountController {
	return &UnreadCountController{Repo: repo}
}

func (h *UnreadCountController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		count, err := h.Repo.UnreadCount(ctx)
		if err != nil {
			respond.Failure(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

// MarkReadController serves both the single and the read-all endpoint. After a change
// the admin's badge is pushed again on the next poll.
type MarkReadController struct {
	UC      *usecase.MarkReadUseCase
	Env     screen.Env
	Changed func(adminID string)
}

func NewMarkReadController(uc *usecase.MarkReadUseCase, env screen.Env, changed func(adminID string)) *MarkReadController {
	return &MarkReadController{UC: uc, Env: env, Changed: changed}
}

func (h *MarkReadController) One() gin.HandlerFunc {
	return func(c *gin.Context) {
		out := h.UC.One(c.Request.Context(), c.Param("id"), h.Env.RefresherFor(c, ScreenName))
		h.changed(c, out.OK())
		respond.Outcome(c, out)
	}
}

func (h *MarkReadController) All() gin.HandlerFunc {
	return func(c *gin.Context) {
		out := h.UC.All(c.Request.Context(), h.Env.RefresherFor(c, ScreenName))
		h.changed(c, out.OK())
		respond.Outcome(c, out)
	}
}

func (h *MarkReadController) changed(c *gin.Context, ok bool) {
	if ok && h.Changed != nil {
		h.Changed(respond.Admin(c))
	}
}
