package approve_modification

import (
	"context"

	approveModification "github.com/m04kA/VRM-BookingService/internal/usecase/approve_modification"
)

type ApproveModificationUseCase interface {
	Execute(ctx context.Context, req *approveModification.Request) (*approveModification.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
