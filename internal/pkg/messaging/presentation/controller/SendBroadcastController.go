package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	messaging "github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/usecase"
)

type SendBroadcastController struct {
	UC *usecase.SendBroadcastUseCase
}

func NewSendBroadcastController(uc *usecase.SendBroadcastUseCase) *SendBroadcastController {
	return &SendBroadcastController{UC: uc}
}

type broadcastRequest struct {
	Content        string     `json:"content"`
	RecipientRoles []string   `json:"recipientRoles"`
	RecipientIDs   []string   `json:"recipientIds"`
	SendAt         *time.Time `json:"sendAt"`
}

func (h *SendBroadcastController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req broadcastRequest
		if !respond.BindJSON(c, &req) {
			return
		}
		respond.Outcome(c, h.UC.Execute(c.Request.Context(), messaging.Broadcast{
			Content:        req.Content,
			RecipientRoles: req.RecipientRoles,
			RecipientIDs:   req.RecipientIDs,
			SendAt:         req.SendAt,
		}))
	}
}
