package decline_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/VRM-BookingService/internal/api/handlers"
	"github.com/m04kA/VRM-BookingService/internal/api/middleware"
	declineBooking "github.com/m04kA/VRM-BookingService/internal/usecase/decline_booking"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "бронирование не найдено"
	msgForbidden        = "доступ запрещен"
	msgNotPending       = "отклонить можно только бронирование в статусе pending"
)

type Handler struct {
	useCase DeclineBookingUseCase
	logger  Logger
}

func NewHandler(useCase DeclineBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// DeclineResponse HTTP модель результата отклонения
type DeclineResponse struct {
	BookingID   int64  `json:"bookingId"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
	CancelledAt string `json:"cancelledAt"`
}

// Handle PATCH /api/v1/bookings/{bookingId}/decline
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/decline - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	hostID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/decline - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &declineBooking.Request{
		BookingID: bookingID,
		HostID:    hostID,
	})
	if err != nil {
		switch {
		case errors.Is(err, declineBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/decline - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, declineBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/decline - Access denied: booking_id=%d, host_id=%d",
				bookingID, hostID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, declineBooking.ErrNotPending):
			h.logger.Warn("PATCH /bookings/{id}/decline - Not pending: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotPending)

		default:
			h.logger.Error("PATCH /bookings/{id}/decline - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/decline - Declined: booking_id=%d, host_id=%d", bookingID, hostID)
	handlers.RespondJSON(w, http.StatusOK, DeclineResponse{
		BookingID:   result.BookingID,
		Status:      result.Status,
		Reason:      result.Reason,
		CancelledAt: result.CancelledAt.Format(time.RFC3339),
	})
}
