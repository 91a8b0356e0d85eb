package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/ad/application/usecase"
	"github.com/Chizihn/glubon-admin/internal/pkg/ad/persistence/repository/adapter"
	"github.com/Chizihn/glubon-admin/internal/pkg/ad/presentation/controller"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
)

func RegisterRoutes(g *gin.RouterGroup, client *graphql.Client, env screen.Env) {
	repo := adapter.NewGqlAdRepository(client)
	list := screen.Mount(env, controller.NewAdScreen(repo))
	manage := usecase.NewManageAdUseCase(repo, env.Runner)

	g.GET("/ads", list.ListHandler())
	g.POST("/ads", controller.NewCreateAdController(usecase.NewCreateAdUseCase(repo, env.Runner), env).Handle())
	g.PATCH("/ads/:id/active", controller.NewSetAdActiveController(manage, env).Handle())
	g.DELETE("/ads/:id", controller.NewDeleteAdController(manage, env).Handle())
}
