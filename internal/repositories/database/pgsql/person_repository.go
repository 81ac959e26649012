package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_commissions_app/internal/core/ports/repositories"
	"github.com/SscSPs/sales_commissions_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPersonRepository struct {
	BaseRepository
}

func newPgxPersonRepository(pool *pgxpool.Pool) portsrepo.PersonRepositoryFacade {
	return &PgxPersonRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPersonRepository implements portsrepo.PersonRepositoryFacade
var _ portsrepo.PersonRepositoryFacade = (*PgxPersonRepository)(nil)

var FULL_PERSON_SELECT_QUERY = `
SELECT
	u.person_id, u.username, u.first_name, u.last_name, u.email, u.password_hash,
	u.roles, u.is_active, u.last_login_at,
	u.created_at, u.created_by, u.last_updated_at, u.last_updated_by
FROM persons u
`

func toModelPerson(d domain.Person) models.Person {
	roles := make([]string, len(d.Roles))
	for i, role := range d.Roles {
		roles[i] = string(role)
	}
	return models.Person{
		PersonID:     d.PersonID,
		Username:     d.Username,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Roles:        roles,
		IsActive:     d.IsActive,
		LastLoginAt:  d.LastLoginAt,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainPerson(m models.Person) domain.Person {
	roles := make([]domain.Role, len(m.Roles))
	for i, role := range m.Roles {
		roles[i] = domain.Role(role)
	}
	return domain.Person{
		PersonID:     m.PersonID,
		Username:     m.Username,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Roles:        roles,
		IsActive:     m.IsActive,
		LastLoginAt:  m.LastLoginAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxPersonRepository) getPersons(ctx context.Context, filterQuery string, args ...any) ([]domain.Person, error) {
	rows, err := r.Pool.Query(ctx, FULL_PERSON_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query persons", err)
	}
	defer rows.Close()

	modelPersons, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Person])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect person rows", err)
	}
	persons := make([]domain.Person, len(modelPersons))
	for i, m := range modelPersons {
		persons[i] = toDomainPerson(m)
	}
	return persons, nil
}

func (r *PgxPersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	persons, err := r.getPersons(ctx, `WHERE u.person_id = $1 AND u.is_active`, personID)
	if err != nil {
		return nil, err
	}
	if len(persons) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &persons[0], nil
}

func (r *PgxPersonRepository) FindPersonByCredential(ctx context.Context, credential string) (*domain.Person, error) {
	// A username match wins over a national ID that happens to look the same.
	query := `
		LEFT JOIN profiles pr ON pr.person_id = u.person_id
		WHERE u.is_active
		  AND (LOWER(u.username) = LOWER($1) OR LOWER(pr.national_id) = LOWER($1))
		ORDER BY (LOWER(u.username) = LOWER($1)) DESC, u.created_at
		LIMIT 1`
	persons, err := r.getPersons(ctx, query, credential)
	if err != nil {
		return nil, err
	}
	if len(persons) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &persons[0], nil
}

func (r *PgxPersonRepository) FindPersonsByIDs(ctx context.Context, personIDs []string) ([]domain.Person, error) {
	if len(personIDs) == 0 {
		return []domain.Person{}, nil
	}
	return r.getPersons(ctx, `WHERE u.person_id = ANY($1) ORDER BY u.last_name, u.first_name`, personIDs)
}

func (r *PgxPersonRepository) SavePerson(ctx context.Context, person domain.Person) error {
	m := toModelPerson(person)
	query := `
		INSERT INTO persons (
			person_id, username, first_name, last_name, email, password_hash,
			roles, is_active, last_login_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PersonID, m.Username, m.FirstName, m.LastName, m.Email, m.PasswordHash,
		m.Roles, m.IsActive, m.LastLoginAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("username %q: %w", person.Username, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save person "+person.PersonID, err)
	}
	return nil
}

func (r *PgxPersonRepository) execOnPerson(ctx context.Context, action, query string, args ...any) error {
	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewAppError(500, "failed to "+action, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPersonRepository) UpdateContact(ctx context.Context, personID, email string, updatedAt time.Time) error {
	return r.execOnPerson(ctx, "update person contact",
		`UPDATE persons SET email = $2, last_updated_at = $3, last_updated_by = $1 WHERE person_id = $1`,
		personID, email, updatedAt)
}

func (r *PgxPersonRepository) UpdatePassword(ctx context.Context, personID, passwordHash string, updatedAt time.Time) error {
	return r.execOnPerson(ctx, "update password",
		`UPDATE persons SET password_hash = $2, last_updated_at = $3, last_updated_by = $1 WHERE person_id = $1`,
		personID, passwordHash, updatedAt)
}

func (r *PgxPersonRepository) TouchLastLogin(ctx context.Context, personID string, at time.Time) error {
	return r.execOnPerson(ctx, "record login",
		`UPDATE persons SET last_login_at = $2 WHERE person_id = $1`,
		personID, at)
}
