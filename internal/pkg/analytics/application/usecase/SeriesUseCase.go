package usecase

import (
	"context"
	"time"

	analytics "github.com/Chizihn/glubon-admin/internal/pkg/analytics/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/analytics/persistence/repository/port"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
)

type SeriesUseCase struct {
	Repo repository.AnalyticsRepository
	Now  func() time.Time
}

func NewSeriesUseCase(repo repository.AnalyticsRepository) *SeriesUseCase {
	return &SeriesUseCase{Repo: repo, Now: time.Now}
}

func (uc *SeriesUseCase) Execute(ctx context.Context, from, to, metric string) (analytics.Series, error) {
	q, err := analytics.NewSeriesQuery(from, to, metric, uc.Now())
	if err != nil {
		return analytics.Series{}, failure.Wrap(failure.KindValidation, err.Error(), err)
	}
	points, err := uc.Repo.Series(ctx, q)
	if err != nil {
		return analytics.Series{}, err
	}
	return analytics.Fill(q, points), nil
}
