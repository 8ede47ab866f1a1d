package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Ash-neon/simple-invoice-generator/internal/apperrors"
	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	"github.com/Ash-neon/simple-invoice-generator/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	handlerSuite
}

func (s *AuthHandlerTestSuite) user() *domain.User {
	return &domain.User{
		UserID:  "user-1",
		Email:   "owner@example.com",
		Profile: domain.IssuerProfile{BusinessName: "Studio"},
	}
}

func (s *AuthHandlerTestSuite) TestRegister_ReturnsToken() {
	u := s.user()
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	s.mockUser.On("Register", mock.Anything, dto.RegisterRequest{Email: "owner@example.com", Password: "pw", BusinessName: "Studio"}).
		Return(u, nil).Once()
	s.mockToken.On("GenerateAccessToken", mock.Anything, u).Return("signed", expires, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{Email: "owner@example.com", Password: "pw", BusinessName: "Studio"})

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.AuthResponse
	s.decode(w, &resp)
	s.Equal("signed", resp.Token)
	s.True(resp.ExpiresAt.Equal(expires))
	s.Equal("Studio", resp.User.BusinessName)
	s.assertMocks()
}

func (s *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	s.mockUser.On("Register", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewConflictError("a user with this email already exists")).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{Email: "owner@example.com", Password: "pw"})

	s.Equal(http.StatusConflict, w.Code)
	s.assertMocks()
}

func (s *AuthHandlerTestSuite) TestRegister_InvalidEmail() {
	w := s.do(http.MethodPost, "/api/v1/auth/register", "", `{"email": "not-an-email", "password": "pw"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockUser.AssertNotCalled(s.T(), "Register", mock.Anything, mock.Anything)
}

func (s *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	s.mockUser.On("AuthenticateUser", mock.Anything, "owner@example.com", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "owner@example.com", Password: "wrong"})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.assertMocks()
}

func (s *AuthHandlerTestSuite) TestLogin_RateLimited() {
	s.loginRateLimit = "2-M"
	s.SetupTest()
	s.mockUser.On("AuthenticateUser", mock.Anything, "owner@example.com", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Twice()

	body := dto.LoginRequest{Email: "owner@example.com", Password: "wrong"}
	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/v1/auth/login", "", body).Code)
	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/v1/auth/login", "", body).Code)
	s.Equal(http.StatusTooManyRequests, s.do(http.MethodPost, "/api/v1/auth/login", "", body).Code)
	s.assertMocks()
}

func (s *AuthHandlerTestSuite) TestProfile_Get() {
	s.mockUser.On("GetUserByID", mock.Anything, "user-1").Return(s.user(), nil).Once()

	w := s.do(http.MethodGet, "/api/v1/auth/profile", "user-1", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	s.decode(w, &resp)
	s.Equal("owner@example.com", resp.Email)
	s.assertMocks()
}

func (s *AuthHandlerTestSuite) TestProfile_Update() {
	req := dto.UpdateProfileRequest{BusinessName: "New Studio", BusinessEmail: "billing@example.com"}
	updated := s.user()
	updated.Profile = req.ToIssuerProfile()
	s.mockUser.On("UpdateIssuerProfile", mock.Anything, "user-1", req).Return(updated, nil).Once()

	w := s.do(http.MethodPatch, "/api/v1/auth/profile", "user-1", req)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	s.decode(w, &resp)
	s.Equal("New Studio", resp.BusinessName)
	s.Empty(resp.BusinessPhone)
	s.assertMocks()
}

func (s *AuthHandlerTestSuite) TestClients_CreateAndList() {
	created := &domain.Client{ClientID: "c1", OwnerID: "user-1", Name: "Acme"}
	s.mockClient.On("CreateClient", mock.Anything, "user-1", dto.CreateClientRequest{Name: "Acme"}).Return(created, nil).Once()
	s.mockClient.On("ListClients", mock.Anything, "user-1").Return([]domain.Client{*created}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/clients", "user-1", dto.CreateClientRequest{Name: "Acme"})
	s.Equal(http.StatusCreated, w.Code)

	w = s.do(http.MethodGet, "/api/v1/clients", "user-1", nil)
	s.Equal(http.StatusOK, w.Code)
	var resp dto.ListClientsResponse
	s.decode(w, &resp)
	s.Require().Len(resp.Clients, 1)
	s.Equal("c1", resp.Clients[0].ClientID)
	s.assertMocks()
}

func (s *AuthHandlerTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	s.decode(w, &resp)
	s.Equal("ok", resp["status"])
}

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
