package repositories

import (
	"context"

	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
)

// ClientReader defines read operations for saved clients
type ClientReader interface {
	// FindClientsByOwner returns the owner's clients ordered by name.
	FindClientsByOwner(ctx context.Context, ownerID string) ([]domain.Client, error)
}

// ClientWriter defines write operations for saved clients
type ClientWriter interface {
	SaveClient(ctx context.Context, client domain.Client) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
