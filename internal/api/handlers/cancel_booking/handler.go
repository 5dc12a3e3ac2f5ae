package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/VRM-BookingService/internal/api/handlers"
	"github.com/m04kA/VRM-BookingService/internal/api/middleware"
	cancelBooking "github.com/m04kA/VRM-BookingService/internal/usecase/cancel_booking"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "бронирование не найдено"
	msgForbidden        = "доступ запрещен"
	msgAlreadyFinished  = "бронирование уже отменено или завершено"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// CancelResponse HTTP модель результата отмены
type CancelResponse struct {
	BookingID     int64   `json:"bookingId"`
	Status        string  `json:"status"`
	RefundPercent int     `json:"refundPercent"`
	RefundAmount  float64 `json:"refundAmount"`
	Reason        string  `json:"reason"`
	CancelledAt   string  `json:"cancelledAt"`
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	guestID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{
		BookingID: bookingID,
		GuestID:   guestID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%d, guest_id=%d",
				bookingID, guestID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelBooking.ErrAlreadyFinished):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Already finished: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgAlreadyFinished)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%d, guest_id=%d, refund=%d%%",
		bookingID, guestID, result.RefundPercent)
	handlers.RespondJSON(w, http.StatusOK, CancelResponse{
		BookingID:     result.BookingID,
		Status:        result.Status,
		RefundPercent: result.RefundPercent,
		RefundAmount:  result.RefundAmount,
		Reason:        result.Reason,
		CancelledAt:   result.CancelledAt.Format(time.RFC3339),
	})
}
