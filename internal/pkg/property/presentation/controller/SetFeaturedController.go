package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/property/application/usecase"
)

type SetFeaturedController struct {
	UC  *usecase.SetFeaturedUseCase
	Env screen.Env
}

func NewSetFeaturedController(uc *usecase.SetFeaturedUseCase, env screen.Env) *SetFeaturedController {
	return &SetFeaturedController{UC: uc, Env: env}
}

func (h *SetFeaturedController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Featured *bool `json:"featured" binding:"required"`
		}
		if !respond.BindJSON(c, &req) {
			return
		}
		out := h.UC.Execute(c.Request.Context(), usecase.SetFeaturedInput{
			PropertyID: c.Param("id"),
			Featured:   *req.Featured,
		}, h.Env.RefresherFor(c, ScreenName))
		respond.Outcome(c, out)
	}
}
