package wishlist

import "errors"

var (
	// ErrStorage возвращается при ошибках обращения к Redis
	ErrStorage = errors.New("wishlist.repository: storage error")
)
