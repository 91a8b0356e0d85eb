package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	qport "github.com/Chizihn/glubon-admin/internal/infrastructure/queue/port"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/usecase"
	"github.com/Chizihn/glubon-admin/internal/pkg/messaging/persistence/repository/adapter"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/messaging/persistence/repository/port"
	"github.com/Chizihn/glubon-admin/internal/pkg/messaging/presentation/controller"
)

// Options carries the optional collaborators of the messaging routes.
type Options struct {
	// Queue schedules future broadcasts; nil allows immediate sends only.
	Queue qport.Client
	// Shadows is shared with the message relay; nil builds a cache-backed store.
	Shadows   repository.ShadowStore
	ShadowTTL time.Duration
}

func RegisterRoutes(g *gin.RouterGroup, client *graphql.Client, env screen.Env, opts Options) {
	shadows := opts.Shadows
	if shadows == nil {
		shadows = adapter.NewCacheShadowStore(client, opts.ShadowTTL)
	}
	repo := adapter.NewGqlMessagingRepository(client, shadows)
	list := screen.Mount(env, controller.NewConversationScreen(repo))

	g.GET("/conversations", list.ListHandler())
	g.GET("/conversations/:id/messages", controller.NewGetMessagesController(repo).Handle())
	g.POST("/conversations/:id/messages", controller.NewSendMessageController(usecase.NewSendMessageUseCase(repo, shadows, env.Runner)).Handle())
	g.POST("/broadcasts", controller.NewSendBroadcastController(usecase.NewSendBroadcastUseCase(repo, env.Runner, opts.Queue)).Handle())
}
