package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	v1 "github.com/Chizihn/glubon-admin/cmd/api/router/v1"
	"github.com/Chizihn/glubon-admin/internal/config"
	cacheAdapter "github.com/Chizihn/glubon-admin/internal/infrastructure/cache/adapter"
	cport "github.com/Chizihn/glubon-admin/internal/infrastructure/cache/port"
	"github.com/Chizihn/glubon-admin/internal/infrastructure/database"
	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	queueAdapter "github.com/Chizihn/glubon-admin/internal/infrastructure/queue/adapter"
	qport "github.com/Chizihn/glubon-admin/internal/infrastructure/queue/port"
	auditAdapter "github.com/Chizihn/glubon-admin/internal/pkg/audit/persistence/repository/adapter"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	msgTask "github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/task"
	msgUsecase "github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/usecase"
	msgAdapter "github.com/Chizihn/glubon-admin/internal/pkg/messaging/persistence/repository/adapter"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "glubon-admin",
		Short:         "Glubon admin dashboard service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), workerCmd())
	return root
}

func loadConfig() (config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP and websocket API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func workerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run the background worker that sends scheduled broadcasts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return work(ctx, cfg)
		},
	}
}

// openCache connects to Redis when configured and otherwise keeps everything in process.
func openCache(ctx context.Context, cfg config.Config) (cport.Cache, error) {
	if cfg.RedisURL == "" {
		log.Printf("cache: REDIS_URL not set, using in-memory cache")
		return cacheAdapter.NewMemoryCache(), nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return cacheAdapter.NewRedisAdapter(ctx, cfg.RedisURL, "glubon-admin:")
}

// openAudit returns nil when DB_URL is unset.
func openAudit(ctx context.Context, cfg config.Config) (*auditAdapter.GormAuditRepository, func(), error) {
	if cfg.DBURL == "" {
		log.Printf("audit: DB_URL not set, audit log disabled")
		return nil, func() {}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	db, err := database.Open(ctx, cfg.DBURL)
	if err != nil {
		return nil, nil, err
	}
	repo := auditAdapter.NewGormAuditRepository(db.Gorm)
	if err := repo.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return repo, db.Close, nil
}

func newClient(cfg config.Config, cache cport.Cache) *graphql.Client {
	return graphql.NewClient(cfg.GraphQLURL,
		graphql.WithCache(cache, cfg.QueryCacheTTL),
		graphql.WithServiceToken(cfg.ServiceToken),
		graphql.WithDebug(cfg.GraphQLDebug),
	)
}

func serve(ctx context.Context, cfg config.Config) error {
	cache, err := openCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to cache: %w", err)
	}
	defer cache.Close()

	audit, closeDB, err := openAudit(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer closeDB()

	var queue qport.Client
	if cfg.RedisURL != "" {
		client, err := queueAdapter.NewAsynqClient(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to create queue client: %w", err)
		}
		defer client.Close()
		queue = client
	}

	deps := v1.Deps{
		Config:     cfg,
		Client:     newClient(cfg, cache),
		Subscriber: graphql.NewSubscriber(cfg.GraphQLWSURL),
		Cache:      cache,
		Queue:      queue,
	}
	if audit != nil {
		deps.Audit = audit
	}

	r := gin.Default()
	live := v1.RegisterRoutes(r, deps)
	defer live.Close()
	go live.Poller.Run(ctx)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Printf("Server running on port %d", cfg.Port)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// sockets are hijacked and not drained by Shutdown
	live.Close()
	return srv.Shutdown(shutdownCtx)
}

func work(ctx context.Context, cfg config.Config) error {
	if cfg.RedisURL == "" {
		return errors.New("worker: REDIS_URL is required")
	}
	srv, err := queueAdapter.NewAsynqServer(cfg.RedisURL, cfg.WorkerConcurrency, cfg.WorkerQueues)
	if err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}

	audit, closeDB, err := openAudit(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer closeDB()

	// Broadcasts run under the service token, so nothing is cached on this side.
	client := graphql.NewClient(cfg.GraphQLURL, graphql.WithServiceToken(cfg.ServiceToken), graphql.WithDebug(cfg.GraphQLDebug))
	runner := mutation.NewRunner(nil, nil)
	if audit != nil {
		runner.Recorder = audit
	}
	broadcasts := msgUsecase.NewSendBroadcastUseCase(msgAdapter.NewGqlMessagingRepository(client, nil), runner, nil)
	msgTask.RegisterSendBroadcastTask(srv, broadcasts.Send)

	log.Printf("worker: consuming %s", msgTask.SendBroadcastTaskType)
	return srv.Run(ctx)
}
