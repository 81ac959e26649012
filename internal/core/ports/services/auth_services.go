package services

import (
	"context"
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
)

// LoginResult is a successful login.
type LoginResult struct {
	Person      domain.Person
	AccessToken string
	ExpiresAt   time.Time
	Landing     domain.Landing
}

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed access token for person.
	GenerateAccessToken(ctx context.Context, person *domain.Person) (string, time.Time, error)

	// Login authenticates the credential and issues an access token.
	Login(ctx context.Context, credential, password string) (*LoginResult, error)
}
