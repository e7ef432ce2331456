// README: History handler for per-user choice listings.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/history"
)

type HistoryHandler struct {
	history *history.Service
}

func NewHistoryHandler(svc *history.Service) *HistoryHandler {
	return &HistoryHandler{history: svc}
}

// List handles GET /api/v1/history/:userId.
func (h *HistoryHandler) List(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		writeError(c, http.StatusBadRequest, "missing user id")
		return
	}

	records, err := h.history.ListByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{
		"history": records,
		"meta":    newMeta(),
	})
}
