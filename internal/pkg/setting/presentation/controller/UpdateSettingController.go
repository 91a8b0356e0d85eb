package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	setting "github.com/Chizihn/glubon-admin/internal/pkg/setting/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/setting/application/usecase"
)

type UpdateSettingController struct {
	UC  *usecase.UpdateSettingUseCase
	Env screen.Env
}

func NewUpdateSettingController(uc *usecase.UpdateSettingUseCase, env screen.Env) *UpdateSettingController {
	return &UpdateSettingController{UC: uc, Env: env}
}

func (h *UpdateSettingController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Value       any     `json:"value"`
			Description *string `json:"description"`
		}
		if !respond.BindJSON(c, &req) {
			return
		}
		out := h.UC.Execute(c.Request.Context(), setting.UpdateInput{
			Key:         c.Param("key"),
			Value:       req.Value,
			Description: req.Description,
		}, h.Env.RefresherFor(c, ScreenName))
		respond.Outcome(c, out)
	}
}
