package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	ticket "github.com/Chizihn/glubon-admin/internal/pkg/ticket/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/ticket/application/usecase"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/ticket/persistence/repository/port"
)

type GetTicketController struct {
	Repo repository.TicketRepository
}

func NewGetTicketController(repo repository.TicketRepository) *GetTicketController {
	return &GetTicketController{Repo: repo}
}

func (h *GetTicketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := h.Repo.GetTicket(c.Request.Context(), c.Param("id"))
		if err != nil {
			respond.Failure(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ticket": t})
	}
}

type UpdateTicketStatusController struct {
	UC  *usecase.UpdateTicketStatusUseCase
	Env screen.Env
}

func NewUpdateTicketStatusController(uc *usecase.UpdateTicketStatusUseCase, env screen.Env) *UpdateTicketStatusController {
	return &UpdateTicketStatusController{UC: uc, Env: env}
}

func (h *UpdateTicketStatusController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status     string  `json:"status" binding:"required"`
			Resolution *string `json:"resolution"`
		}
		if !respond.BindJSON(c, &req) {
			return
		}
		out := h.UC.Execute(c.Request.Context(), usecase.UpdateTicketStatusInput{
			TicketID:   c.Param("id"),
			Status:     ticket.Status(req.Status),
			Resolution: req.Resolution,
		}, h.Env.RefresherFor(c, ScreenName))
		respond.Outcome(c, out)
	}
}
