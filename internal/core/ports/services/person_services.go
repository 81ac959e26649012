package services

import (
	"context"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
)

// NewPerson is the input of a person registration.
type NewPerson struct {
	Username   string
	FirstName  string
	LastName   string
	Email      string
	Password   string
	Roles      []domain.Role
	NationalID string
	Site       string
	Area       string
}

// PersonReaderSvc defines read operations for person data
type PersonReaderSvc interface {
	// GetPersonByID retrieves an active person.
	GetPersonByID(ctx context.Context, personID string) (*domain.Person, error)

	// ActorFor loads the person behind an authenticated subject and returns
	// the actor used to scope service calls.
	ActorFor(ctx context.Context, personID string) (domain.Actor, error)
}

// PersonWriterSvc defines write operations for person data
type PersonWriterSvc interface {
	// CreatePerson registers a person and creates their empty profile.
	// Only administrators may call it.
	CreatePerson(ctx context.Context, actor domain.Actor, req NewPerson) (*domain.Person, error)

	// ChangePassword replaces the actor's password after checking the current one.
	ChangePassword(ctx context.Context, actor domain.Actor, currentPassword, newPassword string) error
}

// PersonAuthSvc defines operations for person authentication
type PersonAuthSvc interface {
	// Authenticate checks a national ID or username and a password and
	// records the login.
	Authenticate(ctx context.Context, credential, password string) (*domain.Person, error)
}

// PersonSvcFacade combines all person-related service interfaces
type PersonSvcFacade interface {
	PersonReaderSvc
	PersonWriterSvc
	PersonAuthSvc
}
