package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrAccessDenied возвращается, когда отмену запрашивает не гость
	// бронирования
	ErrAccessDenied = errors.New("cancel_booking: access denied")

	// ErrAlreadyFinished возвращается при попытке отменить бронирование
	// в финальном статусе
	ErrAlreadyFinished = errors.New("cancel_booking: booking is already cancelled or completed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
