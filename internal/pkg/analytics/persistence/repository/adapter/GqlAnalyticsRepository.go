package adapter

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	analytics "github.com/Chizihn/glubon-admin/internal/pkg/analytics/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/analytics/persistence/repository/port"
)

// Analytics has no mutations of its own; entries expire with the cache TTL.
const group = "analytics"

var (
	overviewOp = graphql.Query("getAdminDashboardStats", group, `query GetAdminDashboardStats {
  getAdminDashboardStats {
    users { total active suspended newThisMonth }
    properties { total active pendingReview featured }
    verifications { pending }
    tickets { open }
    revenue { total thisMonth }
  }
}`)

	seriesOp = graphql.Query("getAnalyticsSeries", group, `query GetAnalyticsSeries($metric: AnalyticsMetric!, $dateRange: DateRangeInput!) {
  getAnalyticsSeries(metric: $metric, dateRange: $dateRange) { date value }
}`)
)

type GqlAnalyticsRepository struct {
	client *graphql.Client
}

func NewGqlAnalyticsRepository(client *graphql.Client) *GqlAnalyticsRepository {
	return &GqlAnalyticsRepository{client: client}
}

var _ repository.AnalyticsRepository = (*GqlAnalyticsRepository)(nil)

func (r *GqlAnalyticsRepository) Overview(ctx context.Context) (analytics.Overview, error) {
	var out struct {
		Stats analytics.Overview `json:"getAdminDashboardStats"`
	}
	err := r.client.Query(ctx, overviewOp, nil, &out)
	return out.Stats, err
}

func (r *GqlAnalyticsRepository) Series(ctx context.Context, q analytics.SeriesQuery) ([]analytics.Point, error) {
	var out struct {
		Points []analytics.Point `json:"getAnalyticsSeries"`
	}
	err := r.client.Query(ctx, seriesOp, graphql.Vars{
		"metric": string(q.Metric),
		"dateRange": map[string]string{
			"startDate": q.Range.From.Format(analytics.DateLayout),
			"endDate":   q.Range.To.Format(analytics.DateLayout),
		},
	}, &out)
	return out.Points, err
}
