package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	user "github.com/Chizihn/glubon-admin/internal/pkg/user/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/user/application/usecase"
)

// UpdateUserStatusController handles PATCH /users/:userId/status.
type UpdateUserStatusController struct {
	UC  *usecase.UpdateUserStatusUseCase
	Env screen.Env
}

func NewUpdateUserStatusController(uc *usecase.UpdateUserStatusUseCase, env screen.Env) *UpdateUserStatusController {
	return &UpdateUserStatusController{UC: uc, Env: env}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *UpdateUserStatusController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateStatusRequest
		if !respond.BindJSON(c, &req) {
			return
		}
		out := h.UC.Execute(c.Request.Context(), usecase.UpdateUserStatusInput{
			UserID: c.Param("userId"),
			Status: user.Status(req.Status),
		}, h.Env.RefresherFor(c, ScreenName))
		respond.Outcome(c, out)
	}
}
