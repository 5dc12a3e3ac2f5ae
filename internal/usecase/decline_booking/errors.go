package decline_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("decline_booking: booking not found")

	// ErrAccessDenied возвращается, когда отклонение запрашивает не хост
	// объявления
	ErrAccessDenied = errors.New("decline_booking: access denied")

	// ErrNotPending возвращается, когда бронирование не ожидает решения хоста
	ErrNotPending = errors.New("decline_booking: only pending bookings can be declined")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("decline_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("decline_booking: internal error")
)
