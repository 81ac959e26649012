package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
)

// ProfileReader defines read operations for profile data
type ProfileReader interface {
	// FindProfileByPersonID retrieves the profile of a person.
	// Returns apperrors.ErrNotFound when the person has no profile.
	FindProfileByPersonID(ctx context.Context, personID string) (*domain.Profile, error)

	// FindDirectSubordinates retrieves the profiles whose supervisor is personID,
	// plus the profiles without supervisor whose manager is personID.
	FindDirectSubordinates(ctx context.Context, personID string) ([]domain.Profile, error)
}

// ProfileWriter defines write operations for profile data
type ProfileWriter interface {
	// UpsertProfile inserts or replaces the profile keyed by person ID.
	UpsertProfile(ctx context.Context, profile domain.Profile) error

	// CreateProfileIfMissing inserts an empty profile for the person unless
	// one exists. It reports whether a row was created.
	CreateProfileIfMissing(ctx context.Context, personID string, at time.Time) (bool, error)

	// UpdateContactDetails sets the phone and marks the initial profile as seen.
	UpdateContactDetails(ctx context.Context, personID, phone string, updatedAt time.Time) error

	// MarkInitialProfileSeen sets the initial-profile-seen flag.
	MarkInitialProfileSeen(ctx context.Context, personID string) error
}

// ProfileRepositoryFacade combines all profile-related repository interfaces
type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
}
