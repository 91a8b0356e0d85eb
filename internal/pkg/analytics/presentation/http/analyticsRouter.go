package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/analytics/application/usecase"
	"github.com/Chizihn/glubon-admin/internal/pkg/analytics/persistence/repository/adapter"
	"github.com/Chizihn/glubon-admin/internal/pkg/analytics/presentation/controller"
)

func RegisterRoutes(g *gin.RouterGroup, client *graphql.Client) {
	repo := adapter.NewGqlAnalyticsRepository(client)

	g.GET("/analytics/overview", controller.NewOverviewController(repo).Handle())
	g.GET("/analytics/series", controller.NewSeriesController(usecase.NewSeriesUseCase(repo)).Handle())
}
