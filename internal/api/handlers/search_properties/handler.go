package search_properties

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/VRM-BookingService/internal/api/handlers"
	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/service/properties"
	"github.com/m04kA/VRM-BookingService/pkg/ptr"
)

const (
	msgInvalidQuery = "некорректные параметры поиска"
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

// Handle GET /api/v1/properties
// Параметры: location, guests, priceMin, priceMax, propertyType, bedrooms,
// amenities (через запятую). Все критерии объединяются по И
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("GET /properties - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	list, err := h.service.Search(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, properties.ErrInvalidInput):
			h.logger.Warn("GET /properties - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /properties - Failed to search properties: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties - Search returned %d properties", len(list))
	handlers.RespondJSON(w, http.StatusOK, handlers.PropertiesFromDomain(list))
}

// parseFilter собирает фильтр поиска из query-параметров
func parseFilter(r *http.Request) (domain.PropertyFilter, error) {
	var filter domain.PropertyFilter
	q := r.URL.Query()

	if location := q.Get("location"); location != "" {
		filter.Location = ptr.Ptr(location)
	}

	if raw := q.Get("guests"); raw != "" {
		guests, err := strconv.Atoi(raw)
		if err != nil || guests <= 0 {
			return filter, errors.New("guests must be a positive integer")
		}
		filter.MinGuests = ptr.Ptr(guests)
	}

	if raw := q.Get("priceMin"); raw != "" {
		priceMin, err := strconv.ParseFloat(raw, 64)
		if err != nil || priceMin < 0 {
			return filter, errors.New("priceMin must be a non-negative number")
		}
		filter.PriceMin = ptr.Ptr(priceMin)
	}

	if raw := q.Get("priceMax"); raw != "" {
		priceMax, err := strconv.ParseFloat(raw, 64)
		if err != nil || priceMax < 0 {
			return filter, errors.New("priceMax must be a non-negative number")
		}
		filter.PriceMax = ptr.Ptr(priceMax)
	}

	if propertyType := q.Get("propertyType"); propertyType != "" {
		filter.PropertyType = ptr.Ptr(propertyType)
	}

	if raw := q.Get("bedrooms"); raw != "" {
		bedrooms, err := strconv.Atoi(raw)
		if err != nil || bedrooms < 0 {
			return filter, errors.New("bedrooms must be a non-negative integer")
		}
		filter.BedroomsMin = ptr.Ptr(bedrooms)
	}

	if raw := q.Get("amenities"); raw != "" {
		for _, amenity := range strings.Split(raw, ",") {
			amenity = strings.TrimSpace(amenity)
			if amenity != "" {
				filter.Amenities = append(filter.Amenities, amenity)
			}
		}
	}

	return filter, nil
}
