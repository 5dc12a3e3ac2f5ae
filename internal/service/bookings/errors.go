package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrPropertyNotFound возвращается, когда объявление не найдено
	ErrPropertyNotFound = errors.New("property not found")

	// ErrAccessDenied возвращается, когда операция выполняется не владельцем
	// бронирования или объявления
	ErrAccessDenied = errors.New("access denied")

	// ErrStatusConflict возвращается, когда текущий статус бронирования
	// не допускает запрошенный переход
	ErrStatusConflict = errors.New("booking status does not allow this operation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
