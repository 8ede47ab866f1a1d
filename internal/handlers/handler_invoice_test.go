package handlers_test

import (
	"mime"
	"net/http"
	"testing"
	"time"

	"github.com/Ash-neon/simple-invoice-generator/internal/apperrors"
	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	"github.com/Ash-neon/simple-invoice-generator/internal/dto"
	"github.com/Ash-neon/simple-invoice-generator/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceHandlerTestSuite struct {
	handlerSuite
}

func (s *InvoiceHandlerTestSuite) sampleInvoice() *domain.Invoice {
	inv, err := domain.NewInvoice("user-1", domain.InvoiceDraft{
		InvoiceNumber: "INV-001",
		Client:        domain.ClientSnapshot{Name: "Acme Corp"},
		IssueDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Items: []domain.LineItemInput{
			{Description: "Design", Quantity: decimal.NewFromInt(10), Rate: decimal.NewFromInt(50)},
			{Description: "Hosting", Quantity: decimal.NewFromInt(1), Rate: decimal.RequireFromString("120.00")},
		},
		TaxRate: decimal.NewFromInt(8),
	}, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	inv.InvoiceID = "inv-1"
	return inv
}

func (s *InvoiceHandlerTestSuite) TestCreateInvoice_Success() {
	inv := s.sampleInvoice()
	s.mockInvoice.On("CreateInvoice", mock.Anything, "user-1", mock.MatchedBy(func(r dto.CreateInvoiceRequest) bool {
		return r.InvoiceNumber == "INV-001" && len(r.Items) == 2 && r.TaxRate.Equal(decimal.NewFromInt(8))
	})).Return(inv, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/invoices", "user-1", `{
		"invoiceNumber": "INV-001",
		"clientName": "Acme Corp",
		"issueDate": "2024-03-01",
		"dueDate": "2024-03-31",
		"items": [
			{"description": "Design", "quantity": 10, "rate": 50},
			{"description": "Hosting", "quantity": 1, "rate": "120.00"}
		],
		"taxRate": 8
	}`)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateInvoiceResponse
	s.decode(w, &resp)
	s.Equal("inv-1", resp.InvoiceID)
	s.assertMocks()
}

func (s *InvoiceHandlerTestSuite) TestCreateInvoice_ValidationListsEveryField() {
	verr := &apperrors.ValidationError{}
	verr.Add("invoiceNumber", apperrors.ErrEmptyInvoiceNumber)
	verr.Add("items[1].quantity", apperrors.ErrInvalidLineItem)
	s.mockInvoice.On("CreateInvoice", mock.Anything, "user-1", mock.Anything).Return(nil, verr).Once()

	w := s.do(http.MethodPost, "/api/v1/invoices", "user-1", `{"items": []}`)

	s.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	s.decode(w, &resp)
	s.Require().Len(resp.Details, 2)
	s.Equal("invoiceNumber", resp.Details[0].Field)
	s.Equal("items[1].quantity", resp.Details[1].Field)
	s.Equal(apperrors.ErrInvalidLineItem.Error(), resp.Details[1].Message)
	s.assertMocks()
}

func (s *InvoiceHandlerTestSuite) TestCreateInvoice_MalformedBody() {
	w := s.do(http.MethodPost, "/api/v1/invoices", "user-1", `{"items": "nope"`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockInvoice.AssertNotCalled(s.T(), "CreateInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (s *InvoiceHandlerTestSuite) TestRequiresBearerToken() {
	w := s.do(http.MethodGet, "/api/v1/invoices/inv-1", "", nil)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockInvoice.AssertNotCalled(s.T(), "GetInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (s *InvoiceHandlerTestSuite) TestGetInvoice_ForeignIsNotFound() {
	s.mockInvoice.On("GetInvoice", mock.Anything, "intruder", "inv-1").
		Return(nil, apperrors.NewNotFoundError("invoice not found")).Once()

	w := s.do(http.MethodGet, "/api/v1/invoices/inv-1", "intruder", nil)

	s.Equal(http.StatusNotFound, w.Code)
	s.assertMocks()
}

func (s *InvoiceHandlerTestSuite) TestGetInvoice_TwoDecimalMoney() {
	s.mockInvoice.On("GetInvoice", mock.Anything, "user-1", "inv-1").Return(s.sampleInvoice(), nil).Once()

	w := s.do(http.MethodGet, "/api/v1/invoices/inv-1", "user-1", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.InvoiceResponse
	s.decode(w, &resp)
	s.Equal("620.00", resp.Subtotal)
	s.Equal("49.60", resp.TaxAmount)
	s.Equal("669.60", resp.Total)
	s.Equal("unpaid", resp.Status)
	s.Equal("2024-03-31", resp.DueDate)
	s.Require().Len(resp.Items, 2)
	s.Equal("Design", resp.Items[0].Description)
	s.Equal("500.00", resp.Items[0].Amount)
	s.assertMocks()
}

func (s *InvoiceHandlerTestSuite) TestListInvoices_PassesPagingParams() {
	next := "abc"
	s.mockInvoice.On("ListInvoices", mock.Anything, "user-1", mock.MatchedBy(func(p dto.ListInvoicesParams) bool {
		return p.Limit == 5 && p.NextToken != nil && *p.NextToken == "tok"
	})).Return(&dto.ListInvoicesResponse{Invoices: []dto.InvoiceSummaryResponse{}, NextToken: &next}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/invoices?limit=5&nextToken=tok", "user-1", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ListInvoicesResponse
	s.decode(w, &resp)
	s.Require().NotNil(resp.NextToken)
	s.Equal("abc", *resp.NextToken)
	s.assertMocks()
}

func (s *InvoiceHandlerTestSuite) TestListInvoices_RejectsNegativeLimit() {
	w := s.do(http.MethodGet, "/api/v1/invoices?limit=-1", "user-1", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockInvoice.AssertNotCalled(s.T(), "ListInvoices", mock.Anything, mock.Anything, mock.Anything)
}

func (s *InvoiceHandlerTestSuite) TestDeleteInvoice() {
	s.mockInvoice.On("DeleteInvoice", mock.Anything, "user-1", "inv-1").Return(nil).Once()

	w := s.do(http.MethodDelete, "/api/v1/invoices/inv-1", "user-1", nil)

	s.Equal(http.StatusNoContent, w.Code)
	s.assertMocks()
}

func (s *InvoiceHandlerTestSuite) TestUpdateStatus() {
	s.mockInvoice.On("SetInvoiceStatus", mock.Anything, "user-1", "inv-1", "paid").Return(nil).Once()

	w := s.do(http.MethodPatch, "/api/v1/invoices/inv-1/status", "user-1", dto.UpdateInvoiceStatusRequest{Status: "paid"})

	s.Equal(http.StatusNoContent, w.Code)
	s.assertMocks()
}

func (s *InvoiceHandlerTestSuite) TestUpdateStatus_RejectsUnknownValue() {
	s.mockInvoice.On("SetInvoiceStatus", mock.Anything, "user-1", "inv-1", "overdue").
		Return(apperrors.NewValidationFailedError("status", apperrors.ErrInvalidStatus)).Once()

	w := s.do(http.MethodPatch, "/api/v1/invoices/inv-1/status", "user-1", dto.UpdateInvoiceStatusRequest{Status: "overdue"})

	s.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	s.decode(w, &resp)
	s.Require().Len(resp.Details, 1)
	s.Equal("status", resp.Details[0].Field)
	s.assertMocks()
}

func (s *InvoiceHandlerTestSuite) TestUpdateStatus_MissingStatus() {
	w := s.do(http.MethodPatch, "/api/v1/invoices/inv-1/status", "user-1", `{}`)

	s.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	s.decode(w, &resp)
	s.Require().Len(resp.Details, 1)
	s.Equal("Status", resp.Details[0].Field)
}

func (s *InvoiceHandlerTestSuite) TestDownloadPDF() {
	content := []byte("%PDF-1.3 test")
	s.mockInvoice.On("RenderInvoice", mock.Anything, "user-1", "inv-1").Return(&domain.Document{
		Filename:    domain.DocumentFilename("INV-001"),
		ContentType: domain.PDFContentType,
		Content:     content,
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/invoices/inv-1/pdf", "user-1", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("application/pdf", w.Header().Get("Content-Type"))
	s.Equal("attachment; filename=invoice-INV-001.pdf", w.Header().Get("Content-Disposition"))
	s.Equal(content, w.Body.Bytes())
	s.assertMocks()
}

func (s *InvoiceHandlerTestSuite) TestDownloadPDF_QuotesFilename() {
	s.mockInvoice.On("RenderInvoice", mock.Anything, "user-1", "inv-1").Return(&domain.Document{
		Filename:    domain.DocumentFilename("INV 7; March"),
		ContentType: domain.PDFContentType,
		Content:     []byte("%PDF-1.3 test"),
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/invoices/inv-1/pdf", "user-1", nil)

	s.Equal(http.StatusOK, w.Code)
	disposition, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
	s.Require().NoError(err)
	s.Equal("attachment", disposition)
	s.Equal("invoice-INV 7; March.pdf", params["filename"])
	s.assertMocks()
}

func (s *InvoiceHandlerTestSuite) TestDownloadPDF_RenderFailureIsGeneric() {
	s.mockInvoice.On("RenderInvoice", mock.Anything, "user-1", "inv-1").
		Return(nil, apperrors.ErrRenderFailed).Once()

	w := s.do(http.MethodGet, "/api/v1/invoices/inv-1/pdf", "user-1", nil)

	s.Equal(http.StatusInternalServerError, w.Code)
	var resp handlers.ErrorResponse
	s.decode(w, &resp)
	s.Equal("Failed to render invoice", resp.Error)
	s.assertMocks()
}

func (s *InvoiceHandlerTestSuite) TestDashboardStats() {
	s.mockDashboard.On("GetDashboardStats", mock.Anything, "user-1").Return(&domain.DashboardStats{
		TotalInvoices:  3,
		PaidInvoices:   1,
		UnpaidInvoices: 2,
		TotalRevenue:   decimal.RequireFromString("1234.5"),
		PendingRevenue: decimal.Zero,
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard/stats", "user-1", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.DashboardStatsResponse
	s.decode(w, &resp)
	s.Equal(3, resp.TotalInvoices)
	s.Equal("1234.50", resp.TotalRevenue)
	s.Equal("0.00", resp.PendingRevenue)
	s.assertMocks()
}

func TestInvoiceHandler(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
