package dto

import (
	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
)

// DashboardStatsResponse defines the dashboard aggregate returned to clients.
type DashboardStatsResponse struct {
	TotalInvoices  int    `json:"totalInvoices"`
	PaidInvoices   int    `json:"paidInvoices"`
	UnpaidInvoices int    `json:"unpaidInvoices"`
	TotalRevenue   string `json:"totalRevenue"`
	PendingRevenue string `json:"pendingRevenue"`
}

// ToDashboardStatsResponse converts domain stats with two-decimal sums.
func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalInvoices:  s.TotalInvoices,
		PaidInvoices:   s.PaidInvoices,
		UnpaidInvoices: s.UnpaidInvoices,
		TotalRevenue:   s.TotalRevenue.StringFixed(2),
		PendingRevenue: s.PendingRevenue.StringFixed(2),
	}
}
