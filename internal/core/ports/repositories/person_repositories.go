package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
)

// PersonReader defines read operations for person data
type PersonReader interface {
	// FindPersonByID retrieves an active person by their ID.
	FindPersonByID(ctx context.Context, personID string) (*domain.Person, error)

	// FindPersonByCredential retrieves an active person whose profile national ID
	// or whose username matches credential, ignoring case.
	FindPersonByCredential(ctx context.Context, credential string) (*domain.Person, error)

	// FindPersonsByIDs retrieves the persons with the given IDs. Unknown IDs are skipped.
	FindPersonsByIDs(ctx context.Context, personIDs []string) ([]domain.Person, error)
}

// PersonWriter defines write operations for person data
type PersonWriter interface {
	// SavePerson persists a new person. Returns apperrors.ErrDuplicate when the
	// username is taken.
	SavePerson(ctx context.Context, person domain.Person) error

	// UpdateContact updates the editable contact fields of a person.
	UpdateContact(ctx context.Context, personID, email string, updatedAt time.Time) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, personID, passwordHash string, updatedAt time.Time) error

	// TouchLastLogin records a successful login.
	TouchLastLogin(ctx context.Context, personID string, at time.Time) error
}

// PersonRepositoryFacade combines all person-related repository interfaces
type PersonRepositoryFacade interface {
	PersonReader
	PersonWriter
}
