package repository

import (
	"context"

	analytics "github.com/Chizihn/glubon-admin/internal/pkg/analytics/application/domain"
)

type AnalyticsRepository interface {
	Overview(ctx context.Context) (analytics.Overview, error)
	Series(ctx context.Context, q analytics.SeriesQuery) ([]analytics.Point, error)
}
