package service

import (
	"context"
	"time"

	"github.com/sangkips/billing-api/internal/domain/repository"
	"github.com/sangkips/billing-api/pkg/apperror"
)

// DefaultSalesWindowDays is the trailing window of the daily sales chart.
const DefaultSalesWindowDays = 7

// DashboardService serves the two sales charts and the summary card.
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		now:           time.Now,
	}
}

// GetStats returns the dashboard summary.
func (s *DashboardService) GetStats(ctx context.Context) (*repository.SalesStats, error) {
	return s.analyticsRepo.GetStats(ctx, s.now())
}

// SalesByItem returns total quantity sold per item, over all rows ever
// written, for the overall sales chart.
func (s *DashboardService) SalesByItem(ctx context.Context) ([]repository.ItemSalesResult, error) {
	return s.analyticsRepo.AggregateByItem(ctx)
}

// DailySales returns one entry per day for the trailing window, oldest
// first, zero-filled, for the daily sales histogram.
func (s *DashboardService) DailySales(ctx context.Context, days int) ([]repository.DailySalesResult, error) {
	if days == 0 {
		days = DefaultSalesWindowDays
	}
	if days < 1 || days > 90 {
		return nil, apperror.NewValidationError("days", "days must be between 1 and 90")
	}
	return s.analyticsRepo.AggregateByDay(ctx, days, s.now())
}
