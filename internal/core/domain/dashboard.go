package domain

import "github.com/shopspring/decimal"

// DashboardStats aggregates an owner's invoices by payment status.
type DashboardStats struct {
	TotalInvoices  int             `json:"totalInvoices"`
	PaidInvoices   int             `json:"paidInvoices"`
	UnpaidInvoices int             `json:"unpaidInvoices"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`   // sum of paid totals
	PendingRevenue decimal.Decimal `json:"pendingRevenue"` // sum of unpaid totals
}
