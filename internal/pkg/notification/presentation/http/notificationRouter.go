package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/notification/application/usecase"
	"github.com/Chizihn/glubon-admin/internal/pkg/notification/persistence/repository/adapter"
	"github.com/Chizihn/glubon-admin/internal/pkg/notification/presentation/controller"
)

// Options wires the unread badge push. A nil Poller leaves the badge to HTTP polling.
type Options struct {
	Poller *usecase.UnreadPoller
}

func RegisterRoutes(g *gin.RouterGroup, client *graphql.Client, env screen.Env, opts Options) {
	repo := NewRepository(client)
	list := screen.Mount(env, controller.NewNotificationScreen(repo))
	var changed func(string)
	if opts.Poller != nil {
		changed = opts.Poller.Forget
	}
	mark := controller.NewMarkReadController(usecase.NewMarkReadUseCase(repo, env.Runner), env, changed)

	g.GET("/notifications", list.ListHandler())
	g.GET("/notifications/unread-count", controller.NewUnreadCountController(repo).Handle())
	g.POST("/notifications/read-all", mark.All())
	g.POST("/notifications/:id/read", mark.One())
}

// NewRepository exposes the GraphQL repository to the composition root for the poller.
func NewRepository(client *graphql.Client) *adapter.GqlNotificationRepository {
	return adapter.NewGqlNotificationRepository(client)
}
