package services

import (
	"context"
	"log/slog"

	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	portsrepo "github.com/Ash-neon/simple-invoice-generator/internal/core/ports/repositories"
	portssvc "github.com/Ash-neon/simple-invoice-generator/internal/core/ports/services"
)

// dashboardService computes per-owner stats, reading through an optional cache.
type dashboardService struct {
	BaseService
	statsRepo portsrepo.InvoiceStatsReader
	cache     portssvc.StatsCache
}

// DashboardServiceOption configures the dashboard service
type DashboardServiceOption func(*dashboardService)

// WithStatsCache enables cache-aside reads of dashboard stats.
func WithStatsCache(cache portssvc.StatsCache) DashboardServiceOption {
	return func(s *dashboardService) {
		s.cache = cache
	}
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(statsRepo portsrepo.InvoiceStatsReader, options ...DashboardServiceOption) portssvc.DashboardSvc {
	svc := &dashboardService{statsRepo: statsRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) GetDashboardStats(ctx context.Context, ownerID string) (*domain.DashboardStats, error) {
	cacheable := false
	var generation int64
	if s.cache != nil {
		stats, gen, err := s.cache.GetStats(ctx, ownerID)
		switch {
		case err != nil:
			s.LogError(ctx, err, "Stats cache read failed", slog.String("owner_id", ownerID))
		case stats != nil:
			s.LogDebug(ctx, "Stats cache hit", slog.String("owner_id", ownerID))
			return stats, nil
		default:
			cacheable, generation = true, gen
		}
	}

	stats, err := s.statsRepo.SummarizeInvoicesByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize invoices", slog.String("owner_id", ownerID))
		return nil, err
	}

	// Written under the generation read before the query, so a concurrent invalidation wins.
	if cacheable {
		if err := s.cache.SetStats(ctx, ownerID, generation, *stats); err != nil {
			s.LogError(ctx, err, "Stats cache write failed", slog.String("owner_id", ownerID))
		}
	}
	return stats, nil
}
