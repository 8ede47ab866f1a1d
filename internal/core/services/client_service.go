package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Ash-neon/simple-invoice-generator/internal/apperrors"
	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	portsrepo "github.com/Ash-neon/simple-invoice-generator/internal/core/ports/repositories"
	portssvc "github.com/Ash-neon/simple-invoice-generator/internal/core/ports/services"
	"github.com/Ash-neon/simple-invoice-generator/internal/dto"
	"github.com/google/uuid"
)

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates the saved-client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, ownerID string, req dto.CreateClientRequest) (*domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationFailedError("name", apperrors.ErrEmptyClientName)
	}

	client := domain.Client{
		ClientID:    uuid.NewString(),
		OwnerID:     ownerID,
		Name:        name,
		Email:       strings.TrimSpace(req.Email),
		Address:     req.Address,
		Phone:       req.Phone,
		AuditFields: domain.NewAuditFields(ownerID, time.Now().UTC()),
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("owner_id", ownerID))
		return nil, err
	}

	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *clientService) ListClients(ctx context.Context, ownerID string) ([]domain.Client, error) {
	clients, err := s.clientRepo.FindClientsByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients", slog.String("owner_id", ownerID))
		return nil, err
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}
