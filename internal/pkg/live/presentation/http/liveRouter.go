package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/live/application/usecase"
	"github.com/Chizihn/glubon-admin/internal/pkg/live/presentation/controller"
)

func RegisterRoutes(g *gin.RouterGroup, hub *usecase.Hub, origins []string) {
	g.GET("/live/ws", controller.NewLiveSocketController(hub, origins).Handle())
}
