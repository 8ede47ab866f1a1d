package services_test

import (
	"context"
	"testing"

	"github.com/Ash-neon/simple-invoice-generator/internal/apperrors"
	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	"github.com/Ash-neon/simple-invoice-generator/internal/core/services"
	"github.com/Ash-neon/simple-invoice-generator/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClientService_CreateClient(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)
	repo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.OwnerID == "user-1" && c.Name == "Acme Corp" && c.ClientID != ""
	})).Return(nil).Once()

	client, err := services.NewClientService(repo).CreateClient(ctx, "user-1", dto.CreateClientRequest{Name: " Acme Corp "})

	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", client.Name)
	repo.AssertExpectations(t)
}

func TestClientService_CreateClient_BlankName(t *testing.T) {
	repo := new(MockClientRepository)

	_, err := services.NewClientService(repo).CreateClient(context.Background(), "user-1", dto.CreateClientRequest{Name: "  "})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.ErrorIs(t, err, apperrors.ErrEmptyClientName)
	repo.AssertNotCalled(t, "SaveClient", mock.Anything, mock.Anything)
}

func TestClientService_ListClients_EmptyIsNotNil(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)
	repo.On("FindClientsByOwner", ctx, "user-1").Return(nil, nil).Once()

	clients, err := services.NewClientService(repo).ListClients(ctx, "user-1")

	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
}
