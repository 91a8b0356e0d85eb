package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/ticket/application/usecase"
	"github.com/Chizihn/glubon-admin/internal/pkg/ticket/persistence/repository/adapter"
	"github.com/Chizihn/glubon-admin/internal/pkg/ticket/presentation/controller"
)

func RegisterRoutes(g *gin.RouterGroup, client *graphql.Client, env screen.Env) {
	repo := adapter.NewGqlTicketRepository(client)
	list := screen.Mount(env, controller.NewTicketScreen(repo))
	uc := usecase.NewUpdateTicketStatusUseCase(repo, env.Runner)

	g.GET("/tickets", list.ListHandler())
	g.GET("/tickets/:id", controller.NewGetTicketController(repo).Handle())
	g.PATCH("/tickets/:id/status", controller.NewUpdateTicketStatusController(uc, env).Handle())

	rv := &screen.Review{Screen: controller.ScreenName, Env: env, Load: uc.Load, Decide: uc.Decide}
	rv.Register(g, "/tickets/:id/review")
}
