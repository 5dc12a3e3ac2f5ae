package properties

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объявление не найдено
	ErrPropertyNotFound = errors.New("property not found")

	// ErrPropertyHasBookings возвращается при попытке удалить объявление
	// с бронированиями
	ErrPropertyHasBookings = errors.New("property has bookings and cannot be deleted")

	// ErrAccessDenied возвращается, когда объявление принадлежит другому хосту
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("properties service: internal error")
)
