package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_commissions_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/go-playground/validator/v10"
)

// profileService implements the ProfileSvcFacade interface
type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepositoryFacade
	personRepo  portsrepo.PersonRepositoryFacade
	validate    *validator.Validate
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo portsrepo.ProfileRepositoryFacade, personRepo portsrepo.PersonRepositoryFacade, options ...ServiceOption) portssvc.ProfileSvcFacade {
	return &profileService{
		BaseService: newBaseService(options),
		profileRepo: profileRepo,
		personRepo:  personRepo,
		validate:    validator.New(),
	}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

// findProfile treats a missing profile as an absent link rather than an error.
func (s *profileService) findProfile(ctx context.Context, personID string) (*domain.Profile, error) {
	p, err := s.profileRepo.FindProfileByPersonID(ctx, personID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

func copyRef(ref *string) *string {
	if ref == nil {
		return nil
	}
	v := *ref
	return &v
}

// resolveHierarchy recomputes the derived links of p from the stored profiles
// it references. A supervisor's manager becomes p's manager and that
// manager's director becomes p's director; any missing link clears
// everything above it. Without a supervisor, a directly set manager only
// derives the director. At the top of the chain the given links are kept.
func (s *profileService) resolveHierarchy(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	switch {
	case p.SupervisorID != nil:
		p.ManagerID, p.DirectorID = nil, nil
		supervisor, err := s.findProfile(ctx, *p.SupervisorID)
		if err != nil {
			return p, fmt.Errorf("failed to load supervisor profile: %w", err)
		}
		if supervisor != nil {
			p.ManagerID = copyRef(supervisor.ManagerID)
		}
		if p.ManagerID == nil {
			return p, nil
		}
		manager, err := s.findProfile(ctx, *p.ManagerID)
		if err != nil {
			return p, fmt.Errorf("failed to load manager profile: %w", err)
		}
		if manager != nil {
			p.DirectorID = copyRef(manager.DirectorID)
		}
	case p.ManagerID != nil:
		p.DirectorID = nil
		manager, err := s.findProfile(ctx, *p.ManagerID)
		if err != nil {
			return p, fmt.Errorf("failed to load manager profile: %w", err)
		}
		if manager != nil {
			p.DirectorID = copyRef(manager.DirectorID)
		}
	}
	return p, nil
}

// SaveProfile derives the hierarchy links of profile and upserts it.
func (s *profileService) SaveProfile(ctx context.Context, actor domain.Actor, profile domain.Profile) (*domain.Profile, error) {
	resolved, err := s.resolveHierarchy(ctx, profile)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve profile hierarchy", slog.String("person_id", profile.PersonID))
		return nil, err
	}

	now := s.Now()
	if resolved.CreatedAt.IsZero() {
		resolved.CreatedAt = now
		resolved.CreatedBy = actor.PersonID
	}
	resolved.LastUpdatedAt = now
	resolved.LastUpdatedBy = actor.PersonID

	if err := s.profileRepo.UpsertProfile(ctx, resolved); err != nil {
		s.LogError(ctx, err, "Failed to save profile", slog.String("person_id", profile.PersonID))
		return nil, err
	}

	s.LogDebug(ctx, "Profile saved",
		slog.String("person_id", resolved.PersonID),
		slog.Any("manager_id", resolved.ManagerID),
		slog.Any("director_id", resolved.DirectorID))
	return &resolved, nil
}

// checkReference verifies that a hierarchy link points to another active
// person holding role.
func (s *profileService) checkReference(ctx context.Context, personID string, ref *string, role domain.Role, label string, errs *apperrors.ValidationErrors) error {
	if ref == nil {
		return nil
	}
	if *ref == personID {
		errs.Add(fmt.Sprintf("Una persona no puede ser su propio %s.", label))
		return nil
	}
	person, err := s.personRepo.FindPersonByID(ctx, *ref)
	if errors.Is(err, apperrors.ErrNotFound) {
		errs.Add(fmt.Sprintf("El %s indicado no existe.", label))
		return nil
	}
	if err != nil {
		return err
	}
	if !person.HasRole(role) {
		errs.Add(fmt.Sprintf("El %s debe tener el rol %s.", label, role.Label()))
	}
	return nil
}

// AssignHierarchy applies an administrator's assignment to a profile.
func (s *profileService) AssignHierarchy(ctx context.Context, actor domain.Actor, personID string, req portssvc.HierarchyAssignment) (*domain.Profile, error) {
	if err := s.AuthorizeActor(ctx, actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if _, err := s.personRepo.FindPersonByID(ctx, personID); err != nil {
		return nil, err
	}

	var errs apperrors.ValidationErrors
	for _, check := range []struct {
		ref   *string
		role  domain.Role
		label string
	}{
		{req.SupervisorID, domain.RoleSalesManager, "jefe de ventas"},
		{req.ManagerID, domain.RoleGeneralManager, "gerente"},
		{req.DirectorID, domain.RoleCommercialDirector, "director comercial"},
	} {
		if err := s.checkReference(ctx, personID, check.ref, check.role, check.label, &errs); err != nil {
			s.LogError(ctx, err, "Failed to check hierarchy reference", slog.String("person_id", personID))
			return nil, err
		}
	}
	if req.Area != nil && !domain.ValidArea(*req.Area) {
		errs.Add("El area debe ser ventas o postventa.")
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	profile, err := s.EnsureProfile(ctx, personID)
	if err != nil {
		return nil, err
	}
	profile.SupervisorID = copyRef(req.SupervisorID)
	profile.ManagerID = copyRef(req.ManagerID)
	profile.DirectorID = copyRef(req.DirectorID)
	if req.NationalID != nil {
		profile.NationalID = strings.ToUpper(strings.TrimSpace(*req.NationalID))
	}
	if req.Site != nil {
		profile.Site = strings.TrimSpace(*req.Site)
	}
	if req.Area != nil {
		profile.Area = *req.Area
	}

	saved, err := s.SaveProfile(ctx, actor, *profile)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Hierarchy assigned", slog.String("person_id", personID), slog.String("assigned_by", actor.PersonID))
	return saved, nil
}

// RecomputeSubordinates re-saves the direct subordinates of personID.
func (s *profileService) RecomputeSubordinates(ctx context.Context, actor domain.Actor, personID string) ([]domain.Profile, error) {
	if err := s.AuthorizeActor(ctx, actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	subordinates, err := s.profileRepo.FindDirectSubordinates(ctx, personID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list subordinates", slog.String("person_id", personID))
		return nil, err
	}

	saved := make([]domain.Profile, 0, len(subordinates))
	for _, sub := range subordinates {
		p, err := s.SaveProfile(ctx, actor, sub)
		if err != nil {
			return nil, err
		}
		saved = append(saved, *p)
	}
	s.LogInfo(ctx, "Subordinate profiles recomputed", slog.String("person_id", personID), slog.Int("count", len(saved)))
	return saved, nil
}

// EnsureProfile returns the person's profile, creating an empty one first.
func (s *profileService) EnsureProfile(ctx context.Context, personID string) (*domain.Profile, error) {
	created, err := s.profileRepo.CreateProfileIfMissing(ctx, personID, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to ensure profile", slog.String("person_id", personID))
		return nil, err
	}
	if created {
		s.LogInfo(ctx, "Profile created", slog.String("person_id", personID))
	}
	return s.profileRepo.FindProfileByPersonID(ctx, personID)
}

func (s *profileService) loadView(ctx context.Context, personID string, profile domain.Profile) (*domain.ProfileView, error) {
	person, err := s.personRepo.FindPersonByID(ctx, personID)
	if err != nil {
		return nil, err
	}
	view := &domain.ProfileView{Person: *person, Profile: profile}

	refs := profile.References()
	if len(refs) == 0 {
		return view, nil
	}
	people, err := s.personRepo.FindPersonsByIDs(ctx, refs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load hierarchy people", slog.String("person_id", personID))
		return nil, err
	}
	byID := make(map[string]domain.Person, len(people))
	for _, p := range people {
		byID[p.PersonID] = p
	}
	lookup := func(ref *string) *domain.Person {
		if ref == nil {
			return nil
		}
		if p, ok := byID[*ref]; ok {
			return &p
		}
		return nil
	}
	view.Supervisor = lookup(profile.SupervisorID)
	view.Manager = lookup(profile.ManagerID)
	view.Director = lookup(profile.DirectorID)
	return view, nil
}

// GetMyProfile returns the actor's profile view and marks it seen.
func (s *profileService) GetMyProfile(ctx context.Context, actor domain.Actor) (*domain.ProfileView, error) {
	profile, err := s.EnsureProfile(ctx, actor.PersonID)
	if err != nil {
		return nil, err
	}
	if !profile.InitialProfileSeen {
		if err := s.profileRepo.MarkInitialProfileSeen(ctx, actor.PersonID); err != nil {
			s.LogError(ctx, err, "Failed to mark initial profile seen", slog.String("person_id", actor.PersonID))
			return nil, err
		}
		profile.InitialProfileSeen = true
	}
	return s.loadView(ctx, actor.PersonID, *profile)
}

// UpdateMyContact stores the actor's email and phone.
func (s *profileService) UpdateMyContact(ctx context.Context, actor domain.Actor, req portssvc.ContactUpdate) (*domain.ProfileView, error) {
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)

	var errs apperrors.ValidationErrors
	if email == "" {
		errs.Add("El email es obligatorio.")
	} else if s.validate.Var(email, "email") != nil {
		errs.Add("Introduce un email valido.")
	}
	if !domain.ValidPhone(phone) {
		errs.Add("Introduce un telefono valido.")
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	if _, err := s.EnsureProfile(ctx, actor.PersonID); err != nil {
		return nil, err
	}
	now := s.Now()
	if err := s.personRepo.UpdateContact(ctx, actor.PersonID, email, now); err != nil {
		s.LogError(ctx, err, "Failed to update email", slog.String("person_id", actor.PersonID))
		return nil, err
	}
	if err := s.profileRepo.UpdateContactDetails(ctx, actor.PersonID, phone, now); err != nil {
		s.LogError(ctx, err, "Failed to update phone", slog.String("person_id", actor.PersonID))
		return nil, err
	}

	profile, err := s.profileRepo.FindProfileByPersonID(ctx, actor.PersonID)
	if err != nil {
		return nil, err
	}
	return s.loadView(ctx, actor.PersonID, *profile)
}
