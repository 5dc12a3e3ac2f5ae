package request_modification

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("request_modification: booking not found")

	// ErrAccessDenied возвращается, когда изменение запрашивает не гость
	// бронирования
	ErrAccessDenied = errors.New("request_modification: access denied")

	// ErrModificationNotAllowed возвращается, когда политика запрещает
	// изменение: финальный статус или недостаточный запас времени
	ErrModificationNotAllowed = errors.New("request_modification: modification not allowed")

	// ErrInvalidRange возвращается, когда новая дата выезда не позже заезда
	ErrInvalidRange = errors.New("request_modification: check-out must be after check-in")

	// ErrTooManyGuests возвращается, когда новое количество гостей превышает
	// вместимость объявления
	ErrTooManyGuests = errors.New("request_modification: guest count exceeds property capacity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("request_modification: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("request_modification: internal error")
)
