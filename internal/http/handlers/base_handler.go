// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"farecast/internal/modules/compare"
)

type errorResponse struct {
	Error string `json:"error"`
}

// responseMeta rides along with every successful payload.
type responseMeta struct {
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	TraceID   string    `json:"trace_id"`
}

func newMeta() responseMeta {
	return responseMeta{
		Timestamp: time.Now().UTC(),
		Version:   "v1.0",
		TraceID:   "TRACE-" + uuid.NewString(),
	}
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeCompareError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, compare.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, compare.ErrSnapshotNotFound), errors.Is(err, compare.ErrOfferNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
