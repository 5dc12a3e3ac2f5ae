package deny_modification

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("deny_modification: booking not found")

	// ErrModificationNotFound возвращается, когда запрос на изменение
	// не найден у этого бронирования
	ErrModificationNotFound = errors.New("deny_modification: modification request not found")

	// ErrAccessDenied возвращается, когда отклонение запрашивает не хост
	// объявления
	ErrAccessDenied = errors.New("deny_modification: access denied")

	// ErrNotPending возвращается, когда запрос уже рассмотрен
	ErrNotPending = errors.New("deny_modification: modification request is already resolved")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("deny_modification: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("deny_modification: internal error")
)
