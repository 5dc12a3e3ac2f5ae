package get_property_bookings

import (
	"context"

	"github.com/m04kA/VRM-BookingService/internal/domain"
)

type BookingService interface {
	GetPropertyBookings(ctx context.Context, propertyID, hostID int64) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
