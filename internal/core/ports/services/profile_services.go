package services

import (
	"context"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
)

// HierarchyAssignment is an administrator's change to a profile's place in
// the sales hierarchy. ManagerID and DirectorID are only honoured at the
// top of the chain.
type HierarchyAssignment struct {
	SupervisorID *string
	ManagerID    *string
	DirectorID   *string
	NationalID   *string
	Site         *string
	Area         *string
}

// ContactUpdate is a person's change to their own contact details.
type ContactUpdate struct {
	Email string
	Phone string
}

// ProfileHierarchySvc keeps the denormalized hierarchy chain of profiles.
type ProfileHierarchySvc interface {
	// SaveProfile derives the manager and director of profile from the stored
	// profiles it references and persists it.
	SaveProfile(ctx context.Context, actor domain.Actor, profile domain.Profile) (*domain.Profile, error)

	// AssignHierarchy validates an administrator's assignment and saves it
	// through SaveProfile.
	AssignHierarchy(ctx context.Context, actor domain.Actor, personID string, req HierarchyAssignment) (*domain.Profile, error)

	// RecomputeSubordinates re-saves the direct subordinates of personID so
	// they pick up changes made above them. It does not cascade further.
	RecomputeSubordinates(ctx context.Context, actor domain.Actor, personID string) ([]domain.Profile, error)
}

// ProfileSelfSvc covers a person's own profile.
type ProfileSelfSvc interface {
	// EnsureProfile returns the person's profile, creating an empty one first
	// when missing.
	EnsureProfile(ctx context.Context, personID string) (*domain.Profile, error)

	// GetMyProfile returns the actor's profile with the hierarchy people loaded
	// and marks the initial profile as seen.
	GetMyProfile(ctx context.Context, actor domain.Actor) (*domain.ProfileView, error)

	// UpdateMyContact validates and stores the actor's email and phone.
	UpdateMyContact(ctx context.Context, actor domain.Actor, req ContactUpdate) (*domain.ProfileView, error)
}

// ProfileSvcFacade combines all profile-related service interfaces
type ProfileSvcFacade interface {
	ProfileHierarchySvc
	ProfileSelfSvc
}
