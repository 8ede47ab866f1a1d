package services

import (
	"context"
	"log/slog"

	"github.com/Ash-neon/simple-invoice-generator/internal/apperrors"
	"github.com/Ash-neon/simple-invoice-generator/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// AuthorizeOwner is the single ownership gate for owned resources.
// A resource belonging to someone else is reported exactly like a missing one.
func (s *BaseService) AuthorizeOwner(ctx context.Context, callerID, ownerID, resource, resourceID string) error {
	if callerID != "" && callerID == ownerID {
		return nil
	}
	s.LogDebug(ctx, "Ownership check failed",
		slog.String("caller_id", callerID),
		slog.String("resource", resource),
		slog.String("resource_id", resourceID))
	return apperrors.NewNotFoundError(resource + " not found")
}
