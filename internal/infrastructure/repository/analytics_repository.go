package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sangkips/billing-api/internal/domain/entity"
	domainRepo "github.com/sangkips/billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// AggregateByItem sums quantity per distinct item over every row ever
// written. Ordered by item name so repeated calls render identically.
func (r *analyticsRepository) AggregateByItem(ctx context.Context) ([]domainRepo.ItemSalesResult, error) {
	var results []domainRepo.ItemSalesResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			item,
			COALESCE(SUM(quantity), 0) as total_quantity
		FROM orders
		GROUP BY item
		ORDER BY item ASC
	`).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

// AggregateByDay reports the sales amount for each of the `days` most
// recent calendar days counting back from ref, oldest first. Every day in
// the window is present exactly once; days without sales report zero.
func (r *analyticsRepository) AggregateByDay(ctx context.Context, days int, ref time.Time) ([]domainRepo.DailySalesResult, error) {
	results := make([]domainRepo.DailySalesResult, 0, days)

	for i := days - 1; i >= 0; i-- {
		label := ref.AddDate(0, 0, -i).Format(entity.DateLabel)

		var amount sql.NullFloat64
		err := r.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(line_total), 0) / 100.0
			FROM orders
			WHERE date = ?
		`, label).Scan(&amount).Error
		if err != nil {
			return nil, err
		}

		total := 0.0
		if amount.Valid {
			total = amount.Float64
		}

		results = append(results, domainRepo.DailySalesResult{
			Date:        label,
			TotalAmount: total,
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetStats(ctx context.Context, ref time.Time) (*domainRepo.SalesStats, error) {
	stats := &domainRepo.SalesStats{}

	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(line_total), 0) / 100.0
		FROM orders
	`).Scan(&stats.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	today := ref.Format(entity.DateLabel)
	err = r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(line_total), 0) / 100.0
		FROM orders
		WHERE date = ?
	`, today).Scan(&stats.TodayRevenue).Error
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entity.Order{}).Count(&stats.TotalLines).Error; err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT bill_number) FROM orders
	`).Scan(&stats.TotalBills).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
