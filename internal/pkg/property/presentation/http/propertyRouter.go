package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/property/application/usecase"
	"github.com/Chizihn/glubon-admin/internal/pkg/property/persistence/repository/adapter"
	"github.com/Chizihn/glubon-admin/internal/pkg/property/presentation/controller"
)

func RegisterRoutes(g *gin.RouterGroup, client *graphql.Client, env screen.Env) {
	repo := adapter.NewGqlPropertyRepository(client)
	list := screen.Mount(env, controller.NewPropertyScreen(repo))
	statusCtl := controller.NewUpdatePropertyStatusController(usecase.NewUpdatePropertyStatusUseCase(repo, env.Runner), env)
	featuredCtl := controller.NewSetFeaturedController(usecase.NewSetFeaturedUseCase(repo, env.Runner), env)
	ownership := usecase.NewOwnershipReviewUseCase(repo, env.Runner)

	g.GET("/properties", list.ListHandler())
	g.GET("/properties/:id", controller.NewGetPropertyController(repo).Handle())
	g.PATCH("/properties/:id/status", statusCtl.Handle())
	g.PATCH("/properties/:id/featured", featuredCtl.Handle())

	// ownership proof modal: open, viewer, approve, reject, close
	rv := &screen.Review{Screen: controller.ScreenName, Env: env, Load: ownership.Load, Decide: ownership.Decide}
	rv.Register(g, "/properties/:id/ownership")
}
