package services

import (
	"context"

	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	"github.com/Ash-neon/simple-invoice-generator/internal/dto"
)

// ClientReaderSvc defines read operations for saved clients
type ClientReaderSvc interface {
	// ListClients returns the owner's clients ordered by name.
	ListClients(ctx context.Context, ownerID string) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for saved clients
type ClientWriterSvc interface {
	CreateClient(ctx context.Context, ownerID string, req dto.CreateClientRequest) (*domain.Client, error)
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
