package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/user/application/usecase"
	"github.com/Chizihn/glubon-admin/internal/pkg/user/persistence/repository/adapter"
	"github.com/Chizihn/glubon-admin/internal/pkg/user/presentation/controller"
)

// RegisterRoutes mounts the users screen.
func RegisterRoutes(g *gin.RouterGroup, client *graphql.Client, env screen.Env) {
	repo := adapter.NewGqlUserRepository(client)
	list := screen.Mount(env, controller.NewUserScreen(repo))
	getCtl := controller.NewGetUserController(repo)
	statusCtl := controller.NewUpdateUserStatusController(usecase.NewUpdateUserStatusUseCase(repo, env.Runner), env)

	// GET /api/v1/users?page&limit&role&status&search&isVerified&q
	g.GET("/users", list.ListHandler())
	// GET /api/v1/users/:userId
	g.GET("/users/:userId", getCtl.Handle())
	// PATCH /api/v1/users/:userId/status
	g.PATCH("/users/:userId/status", statusCtl.Handle())
}
