package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/VRM-BookingService/internal/api/handlers"
	"github.com/m04kA/VRM-BookingService/internal/service/availability"
)

const (
	msgInvalidPropertyID = "некорректный ID объявления"
	msgInvalidYearMonth  = "некорректные параметры year/month"
	msgNotFound          = "объявление не найдено"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CalendarResponse HTTP модель месячного календаря
// Dates содержит только записанные дни: отсутствующая дата означает
// "не задано" для хоста и "недоступно" для гостя
type CalendarResponse struct {
	PropertyID int64             `json:"propertyId"`
	Year       int               `json:"year"`
	Month      int               `json:"month"`
	Dates      map[string]string `json:"dates"`
}

// Handle GET /api/v1/properties/{propertyId}/availability?year=&month=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/availability - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	year, month, err := parseYearMonth(r)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/availability - Invalid year/month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYearMonth)
		return
	}

	dates, err := h.service.GetMonth(r.Context(), propertyID, year, month)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/availability - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /properties/{id}/availability - Failed to get calendar: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := CalendarResponse{
		PropertyID: propertyID,
		Year:       year,
		Month:      int(month),
		Dates:      make(map[string]string, len(dates)),
	}
	for day, status := range dates {
		response.Dates[day] = string(status)
	}

	h.logger.Info("GET /properties/{id}/availability - Calendar retrieved: property_id=%d, year=%d, month=%d",
		propertyID, year, int(month))
	handlers.RespondJSON(w, http.StatusOK, response)
}

// parseYearMonth разбирает query-параметры year и month
// По умолчанию используется текущий месяц
func parseYearMonth(r *http.Request) (int, time.Month, error) {
	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()

	q := r.URL.Query()

	if raw := q.Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1970 || parsed > 9999 {
			return 0, 0, errors.New("year must be a valid integer")
		}
		year = parsed
	}

	if raw := q.Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, errors.New("month must be in range 1..12")
		}
		month = time.Month(parsed)
	}

	return year, month, nil
}
