package approve_modification

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/VRM-BookingService/internal/api/handlers"
	"github.com/m04kA/VRM-BookingService/internal/api/middleware"
	"github.com/m04kA/VRM-BookingService/internal/domain"
	approveModification "github.com/m04kA/VRM-BookingService/internal/usecase/approve_modification"
)

const (
	msgInvalidBookingID      = "некорректный ID бронирования"
	msgInvalidModificationID = "некорректный ID запроса на изменение"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgBookingNotFound       = "бронирование не найдено"
	msgModificationNotFound  = "запрос на изменение не найден"
	msgForbidden             = "доступ запрещен"
	msgAlreadyResolved       = "запрос на изменение уже рассмотрен"
	msgDatesUnavailable      = "новые даты недоступны"
)

type Handler struct {
	useCase ApproveModificationUseCase
	logger  Logger
}

func NewHandler(useCase ApproveModificationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// ApproveResponse HTTP модель обновлённого бронирования
type ApproveResponse struct {
	BookingID  int64   `json:"bookingId"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Guests     int     `json:"guests"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`
	ResolvedAt string  `json:"resolvedAt"`
}

// Handle PATCH /api/v1/bookings/{bookingId}/modification/{modificationId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/modification/{mid}/approve - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	modificationID, err := strconv.ParseInt(vars["modificationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/modification/{mid}/approve - Invalid modification ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidModificationID)
		return
	}

	hostID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/modification/{mid}/approve - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &approveModification.Request{
		BookingID:      bookingID,
		ModificationID: modificationID,
		HostID:         hostID,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveModification.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/modification/{mid}/approve - Booking not found: booking_id=%d",
				bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, approveModification.ErrModificationNotFound):
			h.logger.Warn("PATCH /bookings/{id}/modification/{mid}/approve - Modification not found: booking_id=%d, modification_id=%d",
				bookingID, modificationID)
			handlers.RespondNotFound(w, msgModificationNotFound)

		case errors.Is(err, approveModification.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/modification/{mid}/approve - Access denied: booking_id=%d, host_id=%d",
				bookingID, hostID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, approveModification.ErrNotPending):
			h.logger.Warn("PATCH /bookings/{id}/modification/{mid}/approve - Already resolved: modification_id=%d",
				modificationID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyResolved)

		case errors.Is(err, approveModification.ErrDatesUnavailable):
			h.logger.Warn("PATCH /bookings/{id}/modification/{mid}/approve - Dates unavailable: booking_id=%d",
				bookingID)
			handlers.RespondError(w, http.StatusConflict, msgDatesUnavailable)

		default:
			h.logger.Error("PATCH /bookings/{id}/modification/{mid}/approve - Failed: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/modification/{mid}/approve - Approved: booking_id=%d, modification_id=%d",
		bookingID, modificationID)
	handlers.RespondJSON(w, http.StatusOK, ApproveResponse{
		BookingID:  result.BookingID,
		CheckIn:    result.CheckIn.Format(domain.DateFormat),
		CheckOut:   result.CheckOut.Format(domain.DateFormat),
		Guests:     result.Guests,
		TotalPrice: result.TotalPrice,
		Status:     result.Status,
		ResolvedAt: result.ResolvedAt.Format(time.RFC3339),
	})
}
