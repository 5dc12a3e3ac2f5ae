package request_modification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/VRM-BookingService/internal/api/handlers"
	"github.com/m04kA/VRM-BookingService/internal/api/middleware"
	requestModification "github.com/m04kA/VRM-BookingService/internal/usecase/request_modification"
)

const (
	msgInvalidBookingID      = "некорректный ID бронирования"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgNotFound              = "бронирование не найдено"
	msgForbidden             = "доступ запрещен"
	msgModificationForbidden = "изменение бронирования недоступно"
	msgInvalidRange          = "дата выезда должна быть позже даты заезда"
	msgTooManyGuests         = "количество гостей превышает вместимость объявления"
	msgInvalidInput          = "некорректные данные запроса на изменение"
)

type Handler struct {
	useCase RequestModificationUseCase
	logger  Logger
}

func NewHandler(useCase RequestModificationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/modification
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/modification - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	guestID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/modification - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var body ModificationRequestBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /bookings/{id}/modification - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := body.ToUseCaseRequest(bookingID, guestID)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/modification - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, requestModification.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/modification - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, requestModification.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/modification - Access denied: booking_id=%d, guest_id=%d",
				bookingID, guestID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, requestModification.ErrModificationNotAllowed):
			h.logger.Warn("POST /bookings/{id}/modification - Not allowed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgModificationForbidden)

		case errors.Is(err, requestModification.ErrInvalidRange):
			h.logger.Warn("POST /bookings/{id}/modification - Invalid range: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, requestModification.ErrTooManyGuests):
			h.logger.Warn("POST /bookings/{id}/modification - Too many guests: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, requestModification.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/modification - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/{id}/modification - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/modification - Modification requested: booking_id=%d, modification_id=%d",
		bookingID, result.ModificationID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
