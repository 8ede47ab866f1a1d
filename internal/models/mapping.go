package models

import (
	"database/sql"

	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func fromAudit(a domain.AuditFields) AuditFields {
	return AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

func (a AuditFields) toDomain() domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

// ToModelUser converts domain.User to its row form.
func ToModelUser(d domain.User) User {
	return User{
		UserID:          d.UserID,
		Email:           d.Email,
		PasswordHash:    d.PasswordHash,
		BusinessName:    nullString(d.Profile.BusinessName),
		BusinessAddress: nullString(d.Profile.BusinessAddress),
		BusinessPhone:   nullString(d.Profile.BusinessPhone),
		BusinessEmail:   nullString(d.Profile.BusinessEmail),
		AuditFields:     fromAudit(d.AuditFields),
	}
}

// ToDomainUser converts a users row to domain.User.
func ToDomainUser(m User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Profile: domain.IssuerProfile{
			BusinessName:    m.BusinessName.String,
			BusinessAddress: m.BusinessAddress.String,
			BusinessPhone:   m.BusinessPhone.String,
			BusinessEmail:   m.BusinessEmail.String,
		},
		AuditFields: m.AuditFields.toDomain(),
	}
}

// ToModelClient converts domain.Client to its row form.
func ToModelClient(d domain.Client) Client {
	return Client{
		ClientID:    d.ClientID,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Email:       nullString(d.Email),
		Address:     nullString(d.Address),
		Phone:       nullString(d.Phone),
		AuditFields: fromAudit(d.AuditFields),
	}
}

// ToDomainClient converts a clients row to domain.Client.
func ToDomainClient(m Client) domain.Client {
	return domain.Client{
		ClientID:    m.ClientID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Email:       m.Email.String,
		Address:     m.Address.String,
		Phone:       m.Phone.String,
		AuditFields: m.AuditFields.toDomain(),
	}
}

// ToModelInvoice splits the aggregate into its invoice row and item rows.
func ToModelInvoice(d domain.Invoice) (Invoice, []InvoiceItem) {
	inv := Invoice{
		InvoiceID:     d.InvoiceID,
		OwnerID:       d.OwnerID,
		InvoiceNumber: d.InvoiceNumber,
		ClientName:    d.Client.Name,
		ClientEmail:   nullString(d.Client.Email),
		ClientAddress: nullString(d.Client.Address),
		IssueDate:     d.IssueDate,
		DueDate:       d.DueDate,
		Subtotal:      d.Subtotal,
		TaxRate:       d.TaxRate,
		TaxAmount:     d.TaxAmount,
		Total:         d.Total,
		Status:        string(d.Status),
		Notes:         nullString(d.Notes),
		AuditFields:   fromAudit(d.AuditFields),
	}
	items := make([]InvoiceItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = InvoiceItem{
			LineItemID:  it.LineItemID,
			InvoiceID:   d.InvoiceID,
			Position:    it.Position,
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      it.Amount,
		}
	}
	return inv, items
}

// ToDomainInvoice reassembles the aggregate from its rows. Items must already be in position order.
func ToDomainInvoice(m Invoice, items []InvoiceItem) domain.Invoice {
	lineItems := make([]domain.LineItem, len(items))
	for i, it := range items {
		lineItems[i] = domain.LineItem{
			LineItemID:  it.LineItemID,
			InvoiceID:   it.InvoiceID,
			Position:    it.Position,
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      it.Amount,
		}
	}
	return domain.Invoice{
		InvoiceID:     m.InvoiceID,
		OwnerID:       m.OwnerID,
		InvoiceNumber: m.InvoiceNumber,
		Client: domain.ClientSnapshot{
			Name:    m.ClientName,
			Email:   m.ClientEmail.String,
			Address: m.ClientAddress.String,
		},
		IssueDate:   domain.DateOnly(m.IssueDate),
		DueDate:     domain.DateOnly(m.DueDate),
		Subtotal:    m.Subtotal,
		TaxRate:     m.TaxRate,
		TaxAmount:   m.TaxAmount,
		Total:       m.Total,
		Status:      domain.InvoiceStatus(m.Status),
		Notes:       m.Notes.String,
		Items:       lineItems,
		AuditFields: m.AuditFields.toDomain(),
	}
}

// ToDomainInvoiceSummary converts an invoices row to its list form.
func ToDomainInvoiceSummary(m Invoice) domain.InvoiceSummary {
	return domain.InvoiceSummary{
		InvoiceID:     m.InvoiceID,
		InvoiceNumber: m.InvoiceNumber,
		ClientName:    m.ClientName,
		IssueDate:     domain.DateOnly(m.IssueDate),
		DueDate:       domain.DateOnly(m.DueDate),
		Total:         m.Total,
		Status:        domain.InvoiceStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}
