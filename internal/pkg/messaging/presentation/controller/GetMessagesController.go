package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/messaging/persistence/repository/port"
)

// GetMessagesController serves one page of a conversation thread.
type GetMessagesController struct {
	Repo repository.MessagingRepository
}

func NewGetMessagesController(repo repository.MessagingRepository) *GetMessagesController {
	return &GetMessagesController{Repo: repo}
}

func (h *GetMessagesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		params := respond.ListParams(c, nil, 50)
		page, err := h.Repo.FetchMessages(c.Request.Context(), c.Param("id"), params)
		if err != nil {
			respond.Failure(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"conversationId": c.Param("id"), "page": page, "params": params.Normalized()})
	}
}

