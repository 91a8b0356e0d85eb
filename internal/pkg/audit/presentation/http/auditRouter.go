package http

import (
	"github.com/gin-gonic/gin"

	repository "github.com/Chizihn/glubon-admin/internal/pkg/audit/persistence/repository/port"
	"github.com/Chizihn/glubon-admin/internal/pkg/audit/presentation/controller"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
)

func RegisterRoutes(g *gin.RouterGroup, repo repository.AuditRepository, env screen.Env) {
	list := screen.Mount(env, controller.NewAuditScreen(repo))
	g.GET("/audit", list.ListHandler())
}
