package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ad "github.com/Chizihn/glubon-admin/internal/pkg/ad/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/ad/application/usecase"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
)

type CreateAdController struct {
	UC  *usecase.CreateAdUseCase
	Env screen.Env
}

func NewCreateAdController(uc *usecase.CreateAdUseCase, env screen.Env) *CreateAdController {
	return &CreateAdController{UC: uc, Env: env}
}

func (h *CreateAdController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ad.CreateInput
		if !respond.BindJSON(c, &in) {
			return
		}
		out, created := h.UC.Execute(c.Request.Context(), in, h.Env.RefresherFor(c, ScreenName))
		if !out.OK() {
			respond.Outcome(c, out)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"toast": out.Toast, "dispatched": true, "refreshed": out.Refreshed, "ad": created})
	}
}

type SetAdActiveController struct {
	UC  *usecase.ManageAdUseCase
	Env screen.Env
}

func NewSetAdActiveController(uc *usecase.ManageAdUseCase, env screen.Env) *SetAdActiveController {
	return &SetAdActiveController{UC: uc, Env: env}
}

func (h *SetAdActiveController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IsActive *bool `json:"isActive" binding:"required"`
		}
		if !respond.BindJSON(c, &req) {
			return
		}
		respond.Outcome(c, h.UC.SetActive(c.Request.Context(), usecase.SetActiveInput{
			AdID:   c.Param("id"),
			Active: *req.IsActive,
		}, h.Env.RefresherFor(c, ScreenName)))
	}
}

type DeleteAdController struct {
	UC  *usecase.ManageAdUseCase
	Env screen.Env
}

func NewDeleteAdController(uc *usecase.ManageAdUseCase, env screen.Env) *DeleteAdController {
	return &DeleteAdController{UC: uc, Env: env}
}

func (h *DeleteAdController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		respond.Outcome(c, h.UC.Delete(c.Request.Context(), c.Param("id"), h.Env.RefresherFor(c, ScreenName)))
	}
}
