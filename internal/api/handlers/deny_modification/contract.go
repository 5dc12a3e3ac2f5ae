package deny_modification

import (
	"context"

	denyModification "github.com/m04kA/VRM-BookingService/internal/usecase/deny_modification"
)

type DenyModificationUseCase interface {
	Execute(ctx context.Context, req *denyModification.Request) (*denyModification.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
