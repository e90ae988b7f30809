package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bizdash/internal/middleware"
)

// BaseService gives services a request-scoped logger tagged with the service name.
type BaseService struct {
	component string
}

func newBaseService(component string) BaseService {
	return BaseService{component: component}
}

// logger returns the request logger from ctx, or the default logger outside a request.
func (s *BaseService) logger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		logger = slog.Default()
	}
	if s.component == "" {
		return logger
	}
	return logger.With(slog.String("component", s.component))
}

func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := append([]any{slog.String("error", err.Error())}, keyvals...)
	s.logger(ctx).Error(msg, args...)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.logger(ctx).Info(msg, keyvals...)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.logger(ctx).Debug(msg, keyvals...)
}
