package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_commissions_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/utils"
	"github.com/google/uuid"
)

// MinPasswordLength is the shortest password accepted.
const MinPasswordLength = 8

type personService struct {
	BaseService
	personRepo portsrepo.PersonRepositoryFacade
	profiles   portssvc.ProfileSvcFacade
}

// NewPersonService creates a new person service. Profiles are created and
// saved through the given profile service.
func NewPersonService(personRepo portsrepo.PersonRepositoryFacade, profiles portssvc.ProfileSvcFacade, options ...ServiceOption) portssvc.PersonSvcFacade {
	return &personService{
		BaseService: newBaseService(options),
		personRepo:  personRepo,
		profiles:    profiles,
	}
}

var _ portssvc.PersonSvcFacade = (*personService)(nil)

func (s *personService) GetPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	person, err := s.personRepo.FindPersonByID(ctx, personID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find person", slog.String("person_id", personID))
		}
		return nil, err
	}
	return person, nil
}

func (s *personService) ActorFor(ctx context.Context, personID string) (domain.Actor, error) {
	person, err := s.GetPersonByID(ctx, personID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Actor{}, fmt.Errorf("%w: unknown or inactive person", apperrors.ErrUnauthorized)
		}
		return domain.Actor{}, err
	}
	return domain.ActorFor(*person), nil
}

// passwordProblems applies the password rules and returns the messages of
// the ones that fail.
func passwordProblems(password, username string) []string {
	var problems []string
	if len(password) < MinPasswordLength {
		problems = append(problems, fmt.Sprintf("La contraseña debe tener al menos %d caracteres.", MinPasswordLength))
	}
	if len(password) > utils.MaxPasswordBytes {
		problems = append(problems, "La contraseña es demasiado larga.")
	}
	if username != "" && strings.Contains(strings.ToLower(password), strings.ToLower(username)) {
		problems = append(problems, "La contraseña es demasiado parecida al nombre de usuario.")
	}
	numeric := password != ""
	for _, r := range password {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		problems = append(problems, "La contraseña no puede ser completamente numérica.")
	}
	return problems
}

func (s *personService) CreatePerson(ctx context.Context, actor domain.Actor, req portssvc.NewPerson) (*domain.Person, error) {
	if err := s.AuthorizeActor(ctx, actor, domain.RoleAdmin); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	var errs apperrors.ValidationErrors
	if username == "" {
		errs.Add("El nombre de usuario es obligatorio.")
	}
	for _, problem := range passwordProblems(req.Password, username) {
		errs.Add(problem)
	}
	for _, role := range req.Roles {
		if !role.Valid() {
			errs.Add(fmt.Sprintf("Rol desconocido: %s.", role))
		}
	}
	area := strings.TrimSpace(req.Area)
	if area == "" {
		area = domain.AreaSales
	}
	if !domain.ValidArea(area) {
		errs.Add("El area debe ser ventas o postventa.")
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.Now()
	person := domain.Person{
		PersonID:     uuid.NewString(),
		Username:     username,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Roles:        req.Roles,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.PersonID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.PersonID,
		},
	}
	if err := s.personRepo.SavePerson(ctx, person); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save person", slog.String("username", username))
		}
		return nil, err
	}

	profile, err := s.profiles.EnsureProfile(ctx, person.PersonID)
	if err != nil {
		return nil, err
	}
	// Everything stored here was validated before the person was saved.
	if req.NationalID != "" || req.Site != "" || area != profile.Area {
		profile.NationalID = strings.ToUpper(strings.TrimSpace(req.NationalID))
		profile.Site = strings.TrimSpace(req.Site)
		profile.Area = area
		if _, err := s.profiles.SaveProfile(ctx, actor, *profile); err != nil {
			return nil, err
		}
	}

	s.LogInfo(ctx, "Person created", slog.String("person_id", person.PersonID), slog.String("created_by", actor.PersonID))
	return &person, nil
}

func (s *personService) ChangePassword(ctx context.Context, actor domain.Actor, currentPassword, newPassword string) error {
	person, err := s.GetPersonByID(ctx, actor.PersonID)
	if err != nil {
		return err
	}

	var errs apperrors.ValidationErrors
	if !utils.CheckPasswordHash(currentPassword, person.PasswordHash) {
		errs.Add("La contraseña actual no es correcta.")
	}
	if newPassword == "" {
		errs.Add("La nueva contraseña es obligatoria.")
	}
	if len(errs.Messages) == 0 {
		for _, problem := range passwordProblems(newPassword, person.Username) {
			errs.Add(problem)
		}
	}
	if err := errs.OrNil(); err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.personRepo.UpdatePassword(ctx, person.PersonID, hash, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update password", slog.String("person_id", person.PersonID))
		return err
	}
	s.LogInfo(ctx, "Password changed", slog.String("person_id", person.PersonID))
	return nil
}

func (s *personService) Authenticate(ctx context.Context, credential, password string) (*domain.Person, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" || password == "" {
		return nil, apperrors.ErrUnauthorized
	}
	person, err := s.personRepo.FindPersonByCredential(ctx, credential)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up credential")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, person.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.String("person_id", person.PersonID))
		return nil, apperrors.ErrUnauthorized
	}

	now := s.Now()
	if err := s.personRepo.TouchLastLogin(ctx, person.PersonID, now); err != nil {
		s.LogError(ctx, err, "Failed to record last login", slog.String("person_id", person.PersonID))
		return nil, err
	}
	person.LastLoginAt = &now
	return person, nil
}
