package availability

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объявление не найдено
	ErrPropertyNotFound = errors.New("property not found")

	// ErrInvalidStatus возвращается при попытке записать нераспознанный
	// статус даты
	ErrInvalidStatus = errors.New("invalid date status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability service: internal error")
)
