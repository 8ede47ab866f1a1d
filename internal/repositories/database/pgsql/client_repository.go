package pgsql

import (
	"context"

	"github.com/Ash-neon/simple-invoice-generator/internal/apperrors"
	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	portsrepo "github.com/Ash-neon/simple-invoice-generator/internal/core/ports/repositories"
	"github.com/Ash-neon/simple-invoice-generator/internal/models"
)

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(db Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := models.ToModelClient(client)
	query := `
		INSERT INTO clients (client_id, owner_id, name, email, address, phone,
		                     created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID,
		m.OwnerID,
		m.Name,
		m.Email,
		m.Address,
		m.Phone,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("client already exists")
		}
		return apperrors.NewPersistenceError("failed to save client", err)
	}
	return nil
}

// FindClientsByOwner lists the owner's clients by name.
func (r *PgxClientRepository) FindClientsByOwner(ctx context.Context, ownerID string) ([]domain.Client, error) {
	query := `
		SELECT client_id, owner_id, name, email, address, phone,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM clients
		WHERE owner_id = $1
		ORDER BY name ASC, client_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to query clients for owner "+ownerID, err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		var m models.Client
		if err := rows.Scan(
			&m.ClientID,
			&m.OwnerID,
			&m.Name,
			&m.Email,
			&m.Address,
			&m.Phone,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewPersistenceError("failed to scan client row", err)
		}
		clients = append(clients, models.ToDomainClient(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("error iterating client rows", err)
	}
	return clients, nil
}
