// Package api wires the HTTP surface of the simulator.
package api

import (
	"net/http"

	"mundell-fleming/internal/api/handlers"
	"mundell-fleming/internal/api/middleware"
	"mundell-fleming/internal/config"
	"mundell-fleming/internal/render"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// chartCacheEntries bounds the rendered-chart cache.
const chartCacheEntries = 512

// NewRouter builds the gin engine with every route and middleware registered.
func NewRouter(settings *config.Settings, log *zap.Logger) *gin.Engine {
	if settings.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS(settings.API.CORSOrigins))
	router.Use(middleware.Logger(log))
	router.Use(middleware.Metrics())

	var cache *render.ChartCache
	if settings.Cache.Enabled {
		cache = render.NewChartCache(settings.Cache.TTL, chartCacheEntries)
	}

	evaluateHandler := handlers.NewEvaluateHandler(log)
	catalogHandler := handlers.NewCatalogHandler()
	scenarioHandler := handlers.NewScenarioHandler(settings.Scenarios.Dir, evaluateHandler, log)
	pageHandler := handlers.NewPageHandler(cache, log)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", pageHandler.Index)
	router.GET("/chart.svg", pageHandler.Chart)

	api := router.Group("/api/v1")
	{
		api.POST("/evaluate", evaluateHandler.Evaluate)
		api.POST("/evaluate/compare", evaluateHandler.Compare)
		api.GET("/rank", evaluateHandler.Rank)

		api.GET("/policies", catalogHandler.ListPolicies)
		api.GET("/coefficients", catalogHandler.ListCoefficients)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/scenarios/:id", scenarioHandler.EvaluateScenario)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	return router
}
