package v1

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/config"
	cport "github.com/Chizihn/glubon-admin/internal/infrastructure/cache/port"
	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	qport "github.com/Chizihn/glubon-admin/internal/infrastructure/queue/port"
	"github.com/Chizihn/glubon-admin/internal/infrastructure/realtime"
	adHttp "github.com/Chizihn/glubon-admin/internal/pkg/ad/presentation/http"
	analyticsHttp "github.com/Chizihn/glubon-admin/internal/pkg/analytics/presentation/http"
	auditPort "github.com/Chizihn/glubon-admin/internal/pkg/audit/persistence/repository/port"
	auditHttp "github.com/Chizihn/glubon-admin/internal/pkg/audit/presentation/http"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	liveUsecase "github.com/Chizihn/glubon-admin/internal/pkg/live/application/usecase"
	liveHttp "github.com/Chizihn/glubon-admin/internal/pkg/live/presentation/http"
	msgUsecase "github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/usecase"
	msgAdapter "github.com/Chizihn/glubon-admin/internal/pkg/messaging/persistence/repository/adapter"
	msgHttp "github.com/Chizihn/glubon-admin/internal/pkg/messaging/presentation/http"
	notifUsecase "github.com/Chizihn/glubon-admin/internal/pkg/notification/application/usecase"
	notifHttp "github.com/Chizihn/glubon-admin/internal/pkg/notification/presentation/http"
	propertyHttp "github.com/Chizihn/glubon-admin/internal/pkg/property/presentation/http"
	sessionUsecase "github.com/Chizihn/glubon-admin/internal/pkg/session/application/usecase"
	sessionAdapter "github.com/Chizihn/glubon-admin/internal/pkg/session/persistence/repository/adapter"
	sessionCtl "github.com/Chizihn/glubon-admin/internal/pkg/session/presentation/controller"
	sessionHttp "github.com/Chizihn/glubon-admin/internal/pkg/session/presentation/http"
	"github.com/Chizihn/glubon-admin/internal/pkg/session/presentation/middleware"
	settingHttp "github.com/Chizihn/glubon-admin/internal/pkg/setting/presentation/http"
	ticketHttp "github.com/Chizihn/glubon-admin/internal/pkg/ticket/presentation/http"
	userHttp "github.com/Chizihn/glubon-admin/internal/pkg/user/presentation/http"
	verificationHttp "github.com/Chizihn/glubon-admin/internal/pkg/verification/presentation/http"
)

// Deps is what the composition root hands to the router. Subscriber, Queue and Audit are optional.
type Deps struct {
	Config     config.Config
	Client     *graphql.Client
	Subscriber *graphql.Subscriber
	Cache      cport.Cache
	Queue      qport.Client
	Audit      auditPort.AuditRepository
}

// Live holds the long-running pieces the caller starts and stops.
type Live struct {
	Hub    *liveUsecase.Hub
	Relay  *msgUsecase.MessageRelay
	Poller *notifUsecase.UnreadPoller
}

// Close ends every socket and backend subscription.
func (l *Live) Close() {
	l.Hub.Close()
	if l.Relay != nil {
		l.Relay.Close()
	}
}

// RegisterRoutes mounts all version 1 API routes under /api/v1.
func RegisterRoutes(r *gin.Engine, d Deps) *Live {
	cfg := d.Config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	rt := realtime.NewRouter()
	registry := screen.NewRegistry()
	shadows := msgAdapter.NewCacheShadowStore(d.Client, 0)

	var relay *msgUsecase.MessageRelay
	var watcher liveUsecase.ConversationWatcher
	if d.Subscriber != nil {
		relay = msgUsecase.NewMessageRelay(msgAdapter.NewGqlMessageStream(d.Subscriber), rt, shadows)
		watcher = relay
	}
	hub := liveUsecase.NewHub(rt, registry, watcher)

	var recorder mutation.Recorder
	if d.Audit != nil {
		recorder = d.Audit
	}
	env := screen.Env{
		Runner:     mutation.NewRunner(hub, recorder),
		Refreshers: hub,
		Registry:   registry,
		PageSize:   cfg.PageSize,
		Debounce:   cfg.FilterDebounce,
	}

	store := sessionUsecase.NewStore(sessionAdapter.NewGqlAuthenticator(d.Client), d.Cache, cfg.SessionTTL)
	cookie := sessionCtl.Cookie{Name: cfg.CookieName, Secure: cfg.CookieSecure}

	v1 := r.Group("/api/v1", middleware.RouteGuard(middleware.Guard{
		CookieName: cfg.CookieName,
		PublicOnly: []string{"/api/v1/auth/login"},
		Public:     []string{"/api/v1/auth/logout"},
	}))
	sessionHttp.RegisterRoutes(v1, store, cookie)

	api := v1.Group("", middleware.RequireSession(store, cfg.CookieName))
	poller := notifUsecase.NewUnreadPoller(notifHttp.NewRepository(d.Client), hub, rt, cfg.UnreadPollInterval, cfg.UnreadPollJitter)
	// a reconnected socket starts without a count
	hub.OnConnect = poller.Forget

	userHttp.RegisterRoutes(api, d.Client, env)
	propertyHttp.RegisterRoutes(api, d.Client, env)
	verificationHttp.RegisterRoutes(api, d.Client, env)
	msgHttp.RegisterRoutes(api, d.Client, env, msgHttp.Options{Queue: d.Queue, Shadows: shadows})
	adHttp.RegisterRoutes(api, d.Client, env)
	ticketHttp.RegisterRoutes(api, d.Client, env)
	settingHttp.RegisterRoutes(api, d.Client, env)
	notifHttp.RegisterRoutes(api, d.Client, env, notifHttp.Options{Poller: poller})
	analyticsHttp.RegisterRoutes(api, d.Client)
	if d.Audit != nil {
		auditHttp.RegisterRoutes(api, d.Audit, env)
	}
	liveHttp.RegisterRoutes(api, hub, cfg.AllowedOrigins)

	return &Live{Hub: hub, Relay: relay, Poller: poller}
}
