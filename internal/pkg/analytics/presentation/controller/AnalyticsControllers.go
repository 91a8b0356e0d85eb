package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/analytics/application/usecase"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/analytics/persistence/repository/port"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
)

type OverviewController struct {
	Repo repository.AnalyticsRepository
}

func NewOverviewController(repo repository.AnalyticsRepository) *OverviewController {
	return &OverviewController{Repo: repo}
}

func (h *OverviewController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		stats, err := h.Repo.Overview(ctx)
		if err != nil {
			respond.Failure(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"overview": stats})
	}
}

type SeriesController struct {
	UC *usecase.SeriesUseCase
}

func NewSeriesController(uc *usecase.SeriesUseCase) *SeriesController {
	return &SeriesController{UC: uc}
}

func (h *SeriesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		series, err := h.UC.Execute(ctx, c.Query("from"), c.Query("to"), c.Query("metric"))
		if err != nil {
			respond.Failure(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"series": series})
	}
}
