package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	portssvc "github.com/Ash-neon/simple-invoice-generator/internal/core/ports/services"
	"github.com/Ash-neon/simple-invoice-generator/internal/platform/config"
	"github.com/Ash-neon/simple-invoice-generator/internal/utils"
)

// tokenService issues the JWT access tokens checked by the auth middleware.
type tokenService struct {
	BaseService
	cfg *config.Config
	now func() time.Time
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{cfg: cfg, now: time.Now}
}

var _ portssvc.TokenSvc = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}
