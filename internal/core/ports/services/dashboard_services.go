package services

import (
	"context"

	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
)

// DashboardSvc exposes the per-owner invoice aggregate.
type DashboardSvc interface {
	GetDashboardStats(ctx context.Context, ownerID string) (*domain.DashboardStats, error)
}

// StatsCache stores dashboard stats per owner. GetStats returns nil stats on a miss,
// along with the owner's current generation. SetStats only becomes visible if no
// InvalidateStats happened since that generation was read.
type StatsCache interface {
	GetStats(ctx context.Context, ownerID string) (stats *domain.DashboardStats, generation int64, err error)
	SetStats(ctx context.Context, ownerID string, generation int64, stats domain.DashboardStats) error
	InvalidateStats(ctx context.Context, ownerID string) error
}
