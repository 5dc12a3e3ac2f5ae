package host_analytics

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/VRM-BookingService/internal/api/handlers"
	"github.com/m04kA/VRM-BookingService/internal/api/middleware"
)

const (
	msgInvalidHostID = "некорректный ID хоста"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// SummaryResponse HTTP модель сводки хоста
type SummaryResponse struct {
	Properties        int     `json:"properties"`
	TotalBookings     int     `json:"totalBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	CancelledBookings int     `json:"cancelledBookings"`
	CompletedBookings int     `json:"completedBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`
	CancellationRate  float64 `json:"cancellationRate"`
	OccupancyRate     float64 `json:"occupancyRate"`
	OccupancyHorizon  int     `json:"occupancyHorizonDays"`
}

// Handle GET /api/v1/hosts/{hostId}/analytics
// Сводка доступна только самому хосту
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hostID, err := strconv.ParseInt(vars["hostId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hosts/{id}/analytics - Invalid host ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHostID)
		return
	}

	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /hosts/{id}/analytics - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if hostID != authUserID {
		h.logger.Warn("GET /hosts/{id}/analytics - Access denied: host_id=%d, auth_user_id=%d",
			hostID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	summary, err := h.service.HostSummary(r.Context(), hostID)
	if err != nil {
		h.logger.Error("GET /hosts/{id}/analytics - Failed to build summary: host_id=%d, error=%v", hostID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /hosts/{id}/analytics - Summary built: host_id=%d, properties=%d, bookings=%d",
		hostID, summary.Properties, summary.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, SummaryResponse{
		Properties:        summary.Properties,
		TotalBookings:     summary.TotalBookings,
		PendingBookings:   summary.PendingBookings,
		ConfirmedBookings: summary.ConfirmedBookings,
		CancelledBookings: summary.CancelledBookings,
		CompletedBookings: summary.CompletedBookings,
		TotalRevenue:      summary.TotalRevenue,
		CancellationRate:  summary.CancellationRate,
		OccupancyRate:     summary.OccupancyRate,
		OccupancyHorizon:  summary.OccupancyHorizon,
	})
}
