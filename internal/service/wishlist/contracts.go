package wishlist

import (
	"context"

	"github.com/m04kA/VRM-BookingService/internal/domain"
)

// WishlistRepository интерфейс хранилища вишлистов
type WishlistRepository interface {
	Add(ctx context.Context, guestID, propertyID int64) error
	Remove(ctx context.Context, guestID, propertyID int64) error
	List(ctx context.Context, guestID int64) ([]int64, error)
	Contains(ctx context.Context, guestID, propertyID int64) (bool, error)
}

// PropertyRepository интерфейс репозитория объявлений
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
