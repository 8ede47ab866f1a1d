package pgsql

import (
	portsrepo "github.com/Ash-neon/simple-invoice-generator/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    newPgxUserRepository(dbPool),
		ClientRepo:  newPgxClientRepository(dbPool),
		InvoiceRepo: newPgxInvoiceRepository(dbPool),
	}
}
