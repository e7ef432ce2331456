// README: Compare handlers for the preview/choose/recent flow.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"farecast/internal/modules/compare"
	"farecast/internal/modules/fare"
	"farecast/internal/modules/recommend"
)

type CompareHandler struct {
	compare *compare.Service
}

func NewCompareHandler(svc *compare.Service) *CompareHandler {
	return &CompareHandler{compare: svc}
}

type compareReq struct {
	UserID         string            `json:"user_id"`
	Origin         string            `json:"origin"`
	Destination    string            `json:"destination"`
	DepartureTime  string            `json:"departure_time,omitempty"`
	PreferCheapest bool              `json:"prefer_cheapest"`
	PreferFastest  bool              `json:"prefer_fastest"`
	UseModel       bool              `json:"use_model"`
	Options        map[string]string `json:"options,omitempty"`
}

type recommendationResp struct {
	SuggestionID     string      `json:"suggestion_id"`
	ChosenProviderID string      `json:"chosen_provider_id"`
	ChosenFare       *fare.Offer `json:"chosen_fare,omitempty"`
	ConfidenceScore  float64     `json:"confidence_score"`
	Reason           string      `json:"reason"`
}

type compareResp struct {
	SnapshotID     string             `json:"snapshot_id"`
	Estimate       fare.Estimate      `json:"fare_estimate"`
	Recommendation recommendationResp `json:"recommendation"`
	Meta           responseMeta       `json:"meta"`
}

func toRecommendationResp(s recommend.Suggestion) recommendationResp {
	return recommendationResp{
		SuggestionID:     s.SuggestionID,
		ChosenProviderID: s.ChosenProviderID,
		ChosenFare:       s.ChosenFare,
		ConfidenceScore:  s.ConfidenceScore,
		Reason:           s.Reason,
	}
}

// Compare handles POST /api/v1/compare.
func (h *CompareHandler) Compare(c *gin.Context) {
	var req compareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.UserID = strings.TrimSpace(req.UserID)
	req.Origin = strings.TrimSpace(req.Origin)
	req.Destination = strings.TrimSpace(req.Destination)
	if req.UserID == "" || req.Origin == "" || req.Destination == "" {
		writeError(c, http.StatusBadRequest, "missing user_id, origin or destination")
		return
	}

	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = "req-" + uuid.NewString()
	}

	trip := fare.TripRequest{
		RequestID:      requestID,
		UserID:         req.UserID,
		Origin:         req.Origin,
		Destination:    req.Destination,
		DepartureTime:  req.DepartureTime,
		PreferCheapest: req.PreferCheapest,
		PreferFastest:  req.PreferFastest,
		Options:        req.Options,
	}

	res, err := h.compare.Compare(c.Request.Context(), trip, req.UseModel)
	if err != nil {
		writeCompareError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, compareResp{
		SnapshotID:     res.SnapshotID,
		Estimate:       res.Estimate,
		Recommendation: toRecommendationResp(res.Suggestion),
		Meta:           newMeta(),
	})
}

type chooseReq struct {
	UserID     string `json:"user_id"`
	SnapshotID string `json:"snapshot_id"`
	ProviderID string `json:"provider_id"`
}

// Choose handles POST /api/v1/compare/choose.
func (h *CompareHandler) Choose(c *gin.Context) {
	var req chooseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	rec, err := h.compare.Choose(c.Request.Context(), compare.ChooseCommand{
		UserID:     strings.TrimSpace(req.UserID),
		SnapshotID: strings.TrimSpace(req.SnapshotID),
		ProviderID: strings.TrimSpace(req.ProviderID),
	})
	if err != nil {
		writeCompareError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{
		"choice": rec,
		"meta":   newMeta(),
	})
}

// Recent handles GET /api/v1/compare/recent?origin=..&destination=..
func (h *CompareHandler) Recent(c *gin.Context) {
	origin := strings.TrimSpace(c.Query("origin"))
	destination := strings.TrimSpace(c.Query("destination"))
	if origin == "" || destination == "" {
		writeError(c, http.StatusBadRequest, "missing origin or destination")
		return
	}

	est, found, err := h.compare.RecentEstimate(c.Request.Context(), origin, destination)
	if err != nil {
		writeCompareError(c, err)
		return
	}
	if !found {
		writeError(c, http.StatusNotFound, "no recent estimate for route")
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{
		"fare_estimate": est,
		"meta":          newMeta(),
	})
}
