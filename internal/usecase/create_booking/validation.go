package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/VRM-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	if req.GuestName == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	if req.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	if req.Guests > domain.MaxGuestsUpperBound {
		return fmt.Errorf("%w: guests must not exceed %d", ErrInvalidInput, domain.MaxGuestsUpperBound)
	}

	return nil
}

// validateRange проверяет порядок дат и что заезд не в прошлом
func validateRange(checkIn, checkOut, now time.Time) error {
	if !checkOut.After(checkIn) {
		return ErrInvalidRange
	}

	if checkIn.Before(domain.DateOnly(now)) {
		return ErrDateInPast
	}

	return nil
}

// allAvailable проверяет, что каждая дата диапазона записана и имеет
// статус available. Отсутствие записи означает недоступность даты
func allAvailable(days []domain.CalendarDay, start, end time.Time) bool {
	wanted := domain.DaysInRange(start, end)
	if len(days) < len(wanted) {
		return false
	}

	byDay := make(map[string]domain.DateStatus, len(days))
	for _, d := range days {
		byDay[d.Day.Format(domain.DateFormat)] = d.Status
	}

	for _, day := range wanted {
		if byDay[day.Format(domain.DateFormat)] != domain.DateAvailable {
			return false
		}
	}

	return true
}
