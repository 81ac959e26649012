package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	"github.com/SscSPs/sales_commissions_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Clock returns the current time. Nil means time.Now.
	Clock func() time.Time
}

// ServiceOption configures the parts every service shares.
type ServiceOption func(*BaseService)

// WithClock replaces the clock used for "now" and audit timestamps.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

func newBaseService(options []ServiceOption) BaseService {
	var base BaseService
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current time from the service clock.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

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
	args := make([]any, 0, len(keyvals)+2)
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

// AuthorizeActor checks that the actor holds one of the required roles.
func (s *BaseService) AuthorizeActor(ctx context.Context, actor domain.Actor, roles ...domain.Role) error {
	if actor.HasRole(roles...) {
		return nil
	}
	s.LogDebug(ctx, "Actor lacks required role",
		slog.String("person_id", actor.PersonID),
		slog.Any("required_roles", roles))
	return fmt.Errorf("%w: requires one of %v", apperrors.ErrForbidden, roles)
}

// AuthorizeManagement checks that the actor belongs to management.
func (s *BaseService) AuthorizeManagement(ctx context.Context, actor domain.Actor) error {
	return s.AuthorizeActor(ctx, actor, domain.RoleGeneralManager, domain.RoleCommercialDirector, domain.RoleAdmin)
}
