package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"time"

	portssvc "github.com/Ash-neon/simple-invoice-generator/internal/core/ports/services"
	"github.com/Ash-neon/simple-invoice-generator/internal/handlers"
	"github.com/Ash-neon/simple-invoice-generator/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// handlerSuite wires the real router and auth middleware to mocked services.
type handlerSuite struct {
	suite.Suite
	router         *gin.Engine
	mockUser       *MockUserService
	mockToken      *MockTokenService
	mockClient     *MockClientService
	mockInvoice    *MockInvoiceService
	mockDashboard  *MockDashboardService
	loginRateLimit string
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockUser = new(MockUserService)
	s.mockToken = new(MockTokenService)
	s.mockClient = new(MockClientService)
	s.mockInvoice = new(MockInvoiceService)
	s.mockDashboard = new(MockDashboardService)

	rate := s.loginRateLimit
	s.loginRateLimit = ""
	if rate == "" {
		rate = "100-M"
	}
	cfg := &config.Config{JWTSecret: testJWTSecret, LoginRateLimit: rate, IsProduction: true}
	err := handlers.RegisterRoutes(s.router, cfg, &portssvc.ServiceContainer{
		User:      s.mockUser,
		Token:     s.mockToken,
		Client:    s.mockClient,
		Invoice:   s.mockInvoice,
		Dashboard: s.mockDashboard,
	})
	s.Require().NoError(err)
}

// generateTestToken creates a signed JWT for userID.
func (s *handlerSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "invoice-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		s.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// do serves a request, authenticated as userID when userID is not empty.
func (s *handlerSuite) do(method, url, userID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			s.Require().NoError(json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+s.generateTestToken(userID))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *handlerSuite) decode(w *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (s *handlerSuite) assertMocks() {
	s.mockUser.AssertExpectations(s.T())
	s.mockToken.AssertExpectations(s.T())
	s.mockClient.AssertExpectations(s.T())
	s.mockInvoice.AssertExpectations(s.T())
	s.mockDashboard.AssertExpectations(s.T())
}
