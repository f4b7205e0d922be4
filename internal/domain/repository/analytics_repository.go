package repository

import (
	"context"
	"time"
)

// ItemSalesResult represents total quantity sold for one menu item
type ItemSalesResult struct {
	Item          string `json:"item"`
	TotalQuantity int64  `json:"total_quantity"`
}

// DailySalesResult represents the sales amount for a single calendar day
type DailySalesResult struct {
	Date        string  `json:"date"`
	TotalAmount float64 `json:"total_amount"`
}

// SalesStats is the dashboard summary over the whole store
type SalesStats struct {
	TotalRevenue float64 `json:"total_revenue"`
	TodayRevenue float64 `json:"today_revenue"`
	TotalLines   int64   `json:"total_lines"`
	TotalBills   int64   `json:"total_bills"`
}

// AnalyticsRepository defines interface for aggregation queries over the
// sales store
type AnalyticsRepository interface {
	// AggregateByItem returns quantity sold per distinct item over every
	// row ever written. The output order is stable within a single call.
	AggregateByItem(ctx context.Context) ([]ItemSalesResult, error)

	// AggregateByDay returns one entry per calendar day for the `days` most
	// recent days counting back from ref (inclusive), oldest first. Days
	// with no sales report zero, not absence.
	AggregateByDay(ctx context.Context, days int, ref time.Time) ([]DailySalesResult, error)

	// GetStats returns the dashboard summary.
	GetStats(ctx context.Context, ref time.Time) (*SalesStats, error)
}
