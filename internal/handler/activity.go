package handler

import (
	"net/http"
	"strconv"

	"github.com/fortipass/fortipass-go/internal/service"
)

// ActivityHandler handles HTTP requests for the activity log.
type ActivityHandler struct {
	service *service.ActivityService
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: svc}
}

// HandleRecent handles GET /api/v1/activity requests.
func (h *ActivityHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse("limit must be a positive integer"))
			return
		}
		limit = n
	}

	activities, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, activities)
}

// HandleStats handles GET /api/v1/activity/stats requests.
func (h *ActivityHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// HandleAchievements handles GET /api/v1/activity/achievements requests.
func (h *ActivityHandler) HandleAchievements(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Achievements(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
