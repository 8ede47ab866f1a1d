package services

import (
	portsrepo "github.com/Ash-neon/simple-invoice-generator/internal/core/ports/repositories"
	portssvc "github.com/Ash-neon/simple-invoice-generator/internal/core/ports/services"
	"github.com/Ash-neon/simple-invoice-generator/internal/platform/config"
)

// Adapters holds the optional outbound adapters wired into the services.
// A nil field disables the feature it backs.
type Adapters struct {
	Renderer   portssvc.DocumentRenderer
	Archiver   portssvc.DocumentArchiver
	StatsCache portssvc.StatsCache
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, adapters Adapters) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.Client = NewClientService(repos.ClientRepo)

	invoiceOpts := []InvoiceServiceOption{}
	dashboardOpts := []DashboardServiceOption{}
	if adapters.Archiver != nil {
		invoiceOpts = append(invoiceOpts, WithDocumentArchiver(adapters.Archiver))
	}
	if adapters.StatsCache != nil {
		invoiceOpts = append(invoiceOpts, WithStatsInvalidation(adapters.StatsCache))
		dashboardOpts = append(dashboardOpts, WithStatsCache(adapters.StatsCache))
	}

	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.UserRepo, adapters.Renderer, invoiceOpts...)
	container.Dashboard = NewDashboardService(repos.InvoiceRepo, dashboardOpts...)

	return container
}
