package can_cancel

import (
	"context"

	"github.com/m04kA/VRM-BookingService/internal/domain"
)

type BookingService interface {
	CanCancel(ctx context.Context, bookingID, guestID int64) (*domain.CancellationAssessment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
