// README: Analytics handlers (summary and CO2 trend).
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/history"
)

const defaultTrendDays = 30

type AnalyticsHandler struct {
	history *history.Service
}

func NewAnalyticsHandler(svc *history.Service) *AnalyticsHandler {
	return &AnalyticsHandler{history: svc}
}

// Summary handles GET /api/v1/analytics/summary?userId=..
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("userId"))
	if userID == "" {
		writeError(c, http.StatusBadRequest, "missing userId")
		return
	}

	summary, err := h.history.Summary(c.Request.Context(), userID)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, summary)
}

// CO2Trend handles GET /api/v1/analytics/co2-trend?userId=..&days=..
func (h *AnalyticsHandler) CO2Trend(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("userId"))
	if userID == "" {
		writeError(c, http.StatusBadRequest, "missing userId")
		return
	}

	days := defaultTrendDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(c, http.StatusBadRequest, "invalid days")
			return
		}
		days = parsed
	}

	trend, err := h.history.CO2Trend(c.Request.Context(), userID, days)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, trend)
}
