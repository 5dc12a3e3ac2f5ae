package approve_modification

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("approve_modification: booking not found")

	// ErrModificationNotFound возвращается, когда запрос на изменение
	// не найден у этого бронирования
	ErrModificationNotFound = errors.New("approve_modification: modification request not found")

	// ErrAccessDenied возвращается, когда одобрение запрашивает не хост
	// объявления
	ErrAccessDenied = errors.New("approve_modification: access denied")

	// ErrNotPending возвращается, когда запрос уже рассмотрен
	ErrNotPending = errors.New("approve_modification: modification request is already resolved")

	// ErrDatesUnavailable возвращается, когда новые даты заняты другим
	// бронированием или заблокированы
	ErrDatesUnavailable = errors.New("approve_modification: requested dates are not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approve_modification: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_modification: internal error")
)
