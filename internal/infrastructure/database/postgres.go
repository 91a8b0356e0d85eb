package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNoDSN is returned when the audit database is not configured.
var ErrNoDSN = errors.New("postgres: DB_URL is not set")

// DB bundles the pgx pool with the gorm handle that shares it.
type DB struct {
	Pool *pgxpool.Pool
	Gorm *gorm.DB
}

// Open dials dsn with a small pool sized for the audit log and exposes it through gorm.
// SQLAlchemy-style suffixes such as postgresql+asyncpg:// are accepted.
func Open(ctx context.Context, dsn string, opts ...func(*pgxpool.Config)) (*DB, error) {
	dsn = normalizeDSN(dsn)
	if dsn == "" {
		return nil, ErrNoDSN
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse config: %w", err)
	}
	cfg.MaxConns = 4
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = time.Hour
	cfg.HealthCheckPeriod = time.Minute
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: new pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: stdlib.OpenDBFromPool(pool)}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: gorm: %w", err)
	}
	return &DB{Pool: pool, Gorm: gdb}, nil
}

// Close releases the sql.DB wrapper and then the pool.
func (d *DB) Close() {
	if d == nil {
		return
	}
	if sqlDB, err := d.Gorm.DB(); err == nil {
		_ = sqlDB.Close()
	}
	d.Pool.Close()
}

func normalizeDSN(dsn string) string {
	s := strings.TrimSpace(dsn)
	for _, suffix := range []string{"+asyncpg", "+pgx"} {
		s = strings.Replace(s, "postgresql"+suffix+"://", "postgresql://", 1)
		s = strings.Replace(s, "postgres"+suffix+"://", "postgres://", 1)
	}
	return s
}
