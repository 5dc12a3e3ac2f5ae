package can_modify

import (
	"context"

	"github.com/m04kA/VRM-BookingService/internal/domain"
)

type BookingService interface {
	CanModify(ctx context.Context, bookingID, guestID int64) (*domain.ModificationAssessment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
