package deny_modification

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/VRM-BookingService/internal/api/handlers"
	"github.com/m04kA/VRM-BookingService/internal/api/middleware"
	denyModification "github.com/m04kA/VRM-BookingService/internal/usecase/deny_modification"
)

const (
	msgInvalidBookingID      = "некорректный ID бронирования"
	msgInvalidModificationID = "некорректный ID запроса на изменение"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgBookingNotFound       = "бронирование не найдено"
	msgModificationNotFound  = "запрос на изменение не найден"
	msgForbidden             = "доступ запрещен"
	msgAlreadyResolved       = "запрос на изменение уже рассмотрен"
)

type Handler struct {
	useCase DenyModificationUseCase
	logger  Logger
}

func NewHandler(useCase DenyModificationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/modification/{modificationId}/deny
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/modification/{mid}/deny - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	modificationID, err := strconv.ParseInt(vars["modificationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/modification/{mid}/deny - Invalid modification ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidModificationID)
		return
	}

	hostID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/modification/{mid}/deny - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var body DenyRequest
	if err := handlers.DecodeJSON(r, &body); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /bookings/{id}/modification/{mid}/deny - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &denyModification.Request{
		BookingID:      bookingID,
		ModificationID: modificationID,
		HostID:         hostID,
		Reason:         body.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, denyModification.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/modification/{mid}/deny - Booking not found: booking_id=%d",
				bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, denyModification.ErrModificationNotFound):
			h.logger.Warn("PATCH /bookings/{id}/modification/{mid}/deny - Modification not found: booking_id=%d, modification_id=%d",
				bookingID, modificationID)
			handlers.RespondNotFound(w, msgModificationNotFound)

		case errors.Is(err, denyModification.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/modification/{mid}/deny - Access denied: booking_id=%d, host_id=%d",
				bookingID, hostID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, denyModification.ErrNotPending):
			h.logger.Warn("PATCH /bookings/{id}/modification/{mid}/deny - Already resolved: modification_id=%d",
				modificationID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyResolved)

		default:
			h.logger.Error("PATCH /bookings/{id}/modification/{mid}/deny - Failed: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/modification/{mid}/deny - Denied: booking_id=%d, modification_id=%d",
		bookingID, modificationID)
	handlers.RespondJSON(w, http.StatusOK, DenyResponse{
		BookingID:      result.BookingID,
		ModificationID: result.ModificationID,
		BookingStatus:  result.BookingStatus,
		ResolvedAt:     result.ResolvedAt.Format(time.RFC3339),
	})
}
