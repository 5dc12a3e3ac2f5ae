package create_booking

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объявление не найдено
	ErrPropertyNotFound = errors.New("create_booking: property not found")

	// ErrInvalidRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("create_booking: check-out must be after check-in")

	// ErrDateInPast возвращается, когда дата заезда в прошлом
	ErrDateInPast = errors.New("create_booking: check-in date is in the past")

	// ErrTooManyGuests возвращается, когда количество гостей превышает
	// вместимость объявления
	ErrTooManyGuests = errors.New("create_booking: guest count exceeds property capacity")

	// ErrDatesUnavailable возвращается, когда хотя бы одна дата диапазона
	// занята или заблокирована
	ErrDatesUnavailable = errors.New("create_booking: dates are not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
