package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	"github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/usecase"
)

type SendMessageController struct {
	UC *usecase.SendMessageUseCase
}

func NewSendMessageController(uc *usecase.SendMessageUseCase) *SendMessageController {
	return &SendMessageController{UC: uc}
}

func (h *SendMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Content string `json:"content"`
		}
		if !respond.BindJSON(c, &req) {
			return
		}
		out, msg := h.UC.Execute(c.Request.Context(), usecase.SendMessageInput{
			ConversationID: c.Param("id"),
			Content:        req.Content,
		})
		if !out.OK() {
			respond.Outcome(c, out)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"toast": out.Toast, "dispatched": true, "message": msg})
	}
}
