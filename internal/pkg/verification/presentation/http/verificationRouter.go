package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/verification/application/usecase"
	"github.com/Chizihn/glubon-admin/internal/pkg/verification/persistence/repository/adapter"
	"github.com/Chizihn/glubon-admin/internal/pkg/verification/presentation/controller"
)

func RegisterRoutes(g *gin.RouterGroup, client *graphql.Client, env screen.Env) {
	repo := adapter.NewGqlVerificationRepository(client)
	list := screen.Mount(env, controller.NewVerificationScreen(repo))
	uc := usecase.NewReviewVerificationUseCase(repo, env.Runner)

	g.GET("/verifications", list.ListHandler())

	rv := &screen.Review{Screen: controller.ScreenName, Env: env, Load: uc.Load, Decide: uc.Decide}
	rv.Register(g, "/verifications/:id/review")
}
