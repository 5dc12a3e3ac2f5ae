package update_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/VRM-BookingService/internal/api/handlers"
	"github.com/m04kA/VRM-BookingService/internal/api/middleware"
	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/service/availability"
	"github.com/m04kA/VRM-BookingService/internal/service/properties"
)

const (
	msgInvalidPropertyID  = "некорректный ID объявления"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus      = "некорректный статус даты"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "объявление не найдено"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	availabilitySvc AvailabilityService
	propertiesSvc   PropertiesService
	logger          Logger
}

func NewHandler(availabilitySvc AvailabilityService, propertiesSvc PropertiesService, logger Logger) *Handler {
	return &Handler{
		availabilitySvc: availabilitySvc,
		propertiesSvc:   propertiesSvc,
		logger:          logger,
	}
}

// UpdateAvailabilityRequest HTTP request model
type UpdateAvailabilityRequest struct {
	Date   string `json:"date"`   // "2025-10-15"
	Status string `json:"status"` // available | blocked | booked
}

// Handle PATCH /api/v1/properties/{propertyId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /properties/{id}/availability - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	hostID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /properties/{id}/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /properties/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	day, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("PATCH /properties/{id}/availability - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Менять календарь может только хост объявления
	property, err := h.propertiesSvc.GetByID(r.Context(), propertyID)
	if err != nil {
		switch {
		case errors.Is(err, properties.ErrPropertyNotFound):
			h.logger.Warn("PATCH /properties/{id}/availability - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /properties/{id}/availability - Failed to get property: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}
	if property.HostID != hostID {
		h.logger.Warn("PATCH /properties/{id}/availability - Access denied: property_id=%d, host_id=%d",
			propertyID, hostID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	err = h.availabilitySvc.UpdateDate(r.Context(), propertyID, day, domain.DateStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidStatus):
			h.logger.Warn("PATCH /properties/{id}/availability - Invalid status %q: property_id=%d",
				req.Status, propertyID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, availability.ErrPropertyNotFound):
			h.logger.Warn("PATCH /properties/{id}/availability - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /properties/{id}/availability - Failed to update date: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /properties/{id}/availability - Date updated: property_id=%d, date=%s, status=%s",
		propertyID, req.Date, req.Status)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"date":   req.Date,
		"status": req.Status,
	})
}
