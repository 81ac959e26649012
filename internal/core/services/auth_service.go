package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/platform/config"
	"github.com/SscSPs/sales_commissions_app/internal/utils"
)

// tokenService issues the JWT access tokens used by AuthMiddleware.
type tokenService struct {
	BaseService
	cfg     *config.Config
	persons portssvc.PersonAuthSvc
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, persons portssvc.PersonAuthSvc, options ...ServiceOption) portssvc.TokenSvcFacade {
	return &tokenService{
		BaseService: newBaseService(options),
		cfg:         cfg,
		persons:     persons,
	}
}

// GenerateAccessToken creates a new JWT access token for the given person.
func (s *tokenService) GenerateAccessToken(ctx context.Context, person *domain.Person) (string, time.Time, error) {
	issuedAt := s.Now()
	expiryTime := issuedAt.Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(person.PersonID, s.cfg.JWTSecret, issuedAt, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("person_id", person.PersonID))
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// Login authenticates the credential and issues an access token.
func (s *tokenService) Login(ctx context.Context, credential, password string) (*portssvc.LoginResult, error) {
	person, err := s.persons.Authenticate(ctx, credential, password)
	if err != nil {
		return nil, err
	}
	token, expiresAt, err := s.GenerateAccessToken(ctx, person)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Person logged in", slog.String("person_id", person.PersonID))
	return &portssvc.LoginResult{
		Person:      *person,
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Landing:     domain.ActorFor(*person).Landing(),
	}, nil
}
