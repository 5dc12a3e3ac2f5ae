package wishlist

import (
	"context"

	"github.com/m04kA/VRM-BookingService/internal/domain"
)

type WishlistService interface {
	Add(ctx context.Context, guestID, propertyID int64) error
	Remove(ctx context.Context, guestID, propertyID int64) error
	List(ctx context.Context, guestID int64) ([]*domain.Property, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
