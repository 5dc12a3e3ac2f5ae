package delete_property

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/VRM-BookingService/internal/api/handlers"
	"github.com/m04kA/VRM-BookingService/internal/api/middleware"
	"github.com/m04kA/VRM-BookingService/internal/service/properties"
)

const (
	msgInvalidPropertyID = "некорректный ID объявления"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgNotFound          = "объявление не найдено"
	msgForbidden         = "доступ запрещен"
	msgHasBookings       = "объявление с бронированиями удалить нельзя"
)

type Handler struct {
	service PropertiesService
	logger  Logger
}

func NewHandler(service PropertiesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/properties/{propertyId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /properties/{id} - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	hostID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /properties/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), propertyID, hostID); err != nil {
		switch {
		case errors.Is(err, properties.ErrPropertyNotFound):
			h.logger.Warn("DELETE /properties/{id} - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, properties.ErrAccessDenied):
			h.logger.Warn("DELETE /properties/{id} - Access denied: property_id=%d, host_id=%d", propertyID, hostID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, properties.ErrPropertyHasBookings):
			h.logger.Warn("DELETE /properties/{id} - Property has bookings: property_id=%d", propertyID)
			handlers.RespondError(w, http.StatusConflict, msgHasBookings)

		default:
			h.logger.Error("DELETE /properties/{id} - Failed to delete property: property_id=%d, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /properties/{id} - Property deleted successfully: property_id=%d, host_id=%d",
		propertyID, hostID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
