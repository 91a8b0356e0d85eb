package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	property "github.com/Chizihn/glubon-admin/internal/pkg/property/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/property/application/usecase"
)

type UpdatePropertyStatusController struct {
	UC  *usecase.UpdatePropertyStatusUseCase
	Env screen.Env
}

func NewUpdatePropertyStatusController(uc *usecase.UpdatePropertyStatusUseCase, env screen.Env) *UpdatePropertyStatusController {
	return &UpdatePropertyStatusController{UC: uc, Env: env}
}

func (h *UpdatePropertyStatusController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status string `json:"status" binding:"required"`
			Reason string `json:"reason"`
		}
		if !respond.BindJSON(c, &req) {
			return
		}
		out := h.UC.Execute(c.Request.Context(), usecase.UpdatePropertyStatusInput{
			PropertyID: c.Param("id"),
			Status:     property.Status(req.Status),
			Reason:     req.Reason,
		}, h.Env.RefresherFor(c, ScreenName))
		respond.Outcome(c, out)
	}
}
