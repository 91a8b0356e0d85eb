package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/setting/application/usecase"
	"github.com/Chizihn/glubon-admin/internal/pkg/setting/persistence/repository/adapter"
	"github.com/Chizihn/glubon-admin/internal/pkg/setting/presentation/controller"
)

func RegisterRoutes(g *gin.RouterGroup, client *graphql.Client, env screen.Env) {
	repo := adapter.NewGqlSettingRepository(client)
	list := screen.Mount(env, controller.NewSettingScreen(repo))
	uc := usecase.NewUpdateSettingUseCase(repo, env.Runner)

	g.GET("/settings", list.ListHandler())
	g.PUT("/settings/:key", controller.NewUpdateSettingController(uc, env).Handle())
}
