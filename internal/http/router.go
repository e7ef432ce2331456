// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farecast/internal/http/handlers"
	"farecast/internal/http/middleware"
	"farecast/internal/modules/compare"
	"farecast/internal/modules/history"
)

func NewRouter(compareSvc *compare.Service, historySvc *history.Service) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	compareHandler := handlers.NewCompareHandler(compareSvc)
	r.POST("/api/v1/compare", compareHandler.Compare)
	r.POST("/api/v1/compare/choose", compareHandler.Choose)
	r.GET("/api/v1/compare/recent", compareHandler.Recent)

	historyHandler := handlers.NewHistoryHandler(historySvc)
	r.GET("/api/v1/history/:userId", historyHandler.List)

	analyticsHandler := handlers.NewAnalyticsHandler(historySvc)
	r.GET("/api/v1/analytics/summary", analyticsHandler.Summary)
	r.GET("/api/v1/analytics/co2-trend", analyticsHandler.CO2Trend)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
