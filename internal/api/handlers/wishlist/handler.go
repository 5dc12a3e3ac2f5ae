package wishlist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/VRM-BookingService/internal/api/handlers"
	"github.com/m04kA/VRM-BookingService/internal/api/middleware"
	"github.com/m04kA/VRM-BookingService/internal/service/wishlist"
)

const (
	msgInvalidUserID     = "некорректный ID пользователя"
	msgInvalidPropertyID = "некорректный ID объявления"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgPropertyNotFound  = "объявление не найдено"
)

type Handler struct {
	service WishlistService
	logger  Logger
}

func NewHandler(service WishlistService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListResponse HTTP модель вишлиста
type ListResponse struct {
	Properties []*handlers.PropertyResponse `json:"properties"`
	Total      int                          `json:"total"`
}

// Вишлист доступен только самому пользователю
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	vars := mux.Vars(r)
	pathUserID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid user ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return 0, false
	}

	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, false
	}

	if pathUserID != authUserID {
		h.logger.Warn("%s - Access denied: path_user_id=%d, auth_user_id=%d", route, pathUserID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return 0, false
	}

	return authUserID, true
}

// HandleList GET /api/v1/users/{userId}/wishlist
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	guestID, ok := h.authorize(w, r, "GET /users/{id}/wishlist")
	if !ok {
		return
	}

	properties, err := h.service.List(r.Context(), guestID)
	if err != nil {
		h.logger.Error("GET /users/{id}/wishlist - Failed to list: guest_id=%d, error=%v", guestID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id}/wishlist - Listed: guest_id=%d, count=%d", guestID, len(properties))
	handlers.RespondJSON(w, http.StatusOK, ListResponse{
		Properties: handlers.PropertiesFromDomain(properties),
		Total:      len(properties),
	})
}

// HandleAdd POST /api/v1/users/{userId}/wishlist/{propertyId}
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	guestID, ok := h.authorize(w, r, "POST /users/{id}/wishlist/{propertyId}")
	if !ok {
		return
	}

	propertyID, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /users/{id}/wishlist/{propertyId} - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	if err := h.service.Add(r.Context(), guestID, propertyID); err != nil {
		switch {
		case errors.Is(err, wishlist.ErrPropertyNotFound):
			h.logger.Warn("POST /users/{id}/wishlist/{propertyId} - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		default:
			h.logger.Error("POST /users/{id}/wishlist/{propertyId} - Failed: guest_id=%d, property_id=%d, error=%v",
				guestID, propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/{id}/wishlist/{propertyId} - Added: guest_id=%d, property_id=%d",
		guestID, propertyID)
	w.WriteHeader(http.StatusNoContent)
}

// HandleRemove DELETE /api/v1/users/{userId}/wishlist/{propertyId}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	guestID, ok := h.authorize(w, r, "DELETE /users/{id}/wishlist/{propertyId}")
	if !ok {
		return
	}

	propertyID, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /users/{id}/wishlist/{propertyId} - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	if err := h.service.Remove(r.Context(), guestID, propertyID); err != nil {
		h.logger.Error("DELETE /users/{id}/wishlist/{propertyId} - Failed: guest_id=%d, property_id=%d, error=%v",
			guestID, propertyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /users/{id}/wishlist/{propertyId} - Removed: guest_id=%d, property_id=%d",
		guestID, propertyID)
	w.WriteHeader(http.StatusNoContent)
}
