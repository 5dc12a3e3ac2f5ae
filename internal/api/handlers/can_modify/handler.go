package can_modify

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

// CanModifyResponse HTTP модель оценки допустимости изменения
type CanModifyResponse struct {
	CanModify         bool    `json:"canModify"`
	Reason            string  `json:"reason"`
	HoursUntilCheckIn float64 `json:"hoursUntilCheckIn"`
}

// Handle GET /api/v1/bookings/{bookingId}/can-modify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/can-modify - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	guestID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id}/can-modify - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	assessment, err := h.service.CanModify(r.Context(), bookingID, guestID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/can-modify - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id}/can-modify - Access denied: booking_id=%d, guest_id=%d",
				bookingID, guestID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/{id}/can-modify - Failed to assess: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/can-modify - Assessed: booking_id=%d, can_modify=%t",
		bookingID, assessment.CanModify)
	handlers.RespondJSON(w, http.StatusOK, CanModifyResponse{
		CanModify:         assessment.CanModify,
		Reason:            assessment.Reason,
		HoursUntilCheckIn: assessment.HoursUntilCheckIn,
	})
}
