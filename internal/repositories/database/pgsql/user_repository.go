package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/Ash-neon/simple-invoice-generator/internal/apperrors"
	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	portsrepo "github.com/Ash-neon/simple-invoice-generator/internal/core/ports/repositories"
	"github.com/Ash-neon/simple-invoice-generator/internal/models"
	"github.com/jackc/pgx/v5"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, email, password_hash, business_name, business_address, business_phone, business_email,
	created_at, created_by, last_updated_at, last_updated_by`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Email,
		&m.PasswordHash,
		&m.BusinessName,
		&m.BusinessAddress,
		&m.BusinessPhone,
		&m.BusinessEmail,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := models.ToModelUser(user)
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Email,
		m.PasswordHash,
		m.BusinessName,
		m.BusinessAddress,
		m.BusinessPhone,
		m.BusinessEmail,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("a user with this email already exists")
		}
		return apperrors.NewPersistenceError("failed to save user", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewPersistenceError("failed to find user by ID "+userID, err)
	}
	d := models.ToDomainUser(m)
	return &d, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewPersistenceError("failed to find user by email", err)
	}
	d := models.ToDomainUser(m)
	return &d, nil
}

func (r *PgxUserRepository) UpdateIssuerProfile(ctx context.Context, userID string, profile domain.IssuerProfile, updatedAt time.Time) error {
	m := models.ToModelUser(domain.User{Profile: profile})
	query := `
		UPDATE users
		SET business_name = $2, business_address = $3, business_phone = $4, business_email = $5,
		    last_updated_at = $6, last_updated_by = $1
		WHERE user_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID,
		m.BusinessName, m.BusinessAddress, m.BusinessPhone, m.BusinessEmail, updatedAt)
	if err != nil {
		return apperrors.NewPersistenceError("failed to update issuer profile for user "+userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}
