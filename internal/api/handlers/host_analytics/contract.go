package host_analytics

import (
	"context"

	"github.com/m04kA/VRM-BookingService/internal/service/analytics/models"
)

type AnalyticsService interface {
	HostSummary(ctx context.Context, hostID int64) (*models.HostSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
