package dto

import (
	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
)

// CreateClientRequest defines the data needed to save a client.
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email,omitempty" binding:"omitempty,email"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID string `json:"clientID"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ListClientsResponse wraps the owner's clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID: c.ClientID,
		Name:     c.Name,
		Email:    c.Email,
		Address:  c.Address,
		Phone:    c.Phone,
	}
}

// ToListClientsResponse converts a slice of domain.Client to ListClientsResponse DTO.
func ToListClientsResponse(clients []domain.Client) ListClientsResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return ListClientsResponse{Clients: responses}
}
