package wishlist

import "errors"

var (
	// ErrPropertyNotFound возвращается при попытке добавить в вишлист
	// несуществующее объявление
	ErrPropertyNotFound = errors.New("property not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wishlist service: internal error")
)
