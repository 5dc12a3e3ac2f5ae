package can_cancel

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/VRM-BookingService/internal/api/handlers"
	"github.com/m04kA/VRM-BookingService/internal/api/middleware"
	"github.com/m04kA/VRM-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "бронирование не найдено"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CanCancelResponse HTTP модель оценки отмены
type CanCancelResponse struct {
	CanCancel         bool    `json:"canCancel"`
	RefundPercent     int     `json:"refundPercent"`
	Reason            string  `json:"reason"`
	HoursUntilCheckIn float64 `json:"hoursUntilCheckIn"`
}

// Handle GET /api/v1/bookings/{bookingId}/can-cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/can-cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	guestID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id}/can-cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	assessment, err := h.service.CanCancel(r.Context(), bookingID, guestID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/can-cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id}/can-cancel - Access denied: booking_id=%d, guest_id=%d",
				bookingID, guestID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/{id}/can-cancel - Failed to assess: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/can-cancel - Assessed: booking_id=%d, refund=%d%%",
		bookingID, assessment.RefundPercent)
	handlers.RespondJSON(w, http.StatusOK, CanCancelResponse{
		CanCancel:         assessment.CanCancel,
		RefundPercent:     assessment.RefundPercent,
		Reason:            assessment.Reason,
		HoursUntilCheckIn: assessment.HoursUntilCheckIn,
	})
}
