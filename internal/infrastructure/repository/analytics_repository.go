package repository

import (
	"context"
	"time"

	domainRepo "github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// contractorFilter resolves the contractor ID for raw aggregation queries.
// Raw SQL cannot use the ContractorScope GORM scope directly.
func contractorFilter(ctx context.Context) uuid.UUID {
	contractorID, ok := GetContractorID(ctx)
	if !ok {
		return uuid.Nil
	}
	return contractorID
}

func (r *analyticsRepository) GetEstimateStatusCounts(ctx context.Context) ([]domainRepo.StatusCountResult, error) {
	var results []domainRepo.StatusCountResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count
		FROM estimates
		WHERE contractor_id = ? AND deleted_at IS NULL
		GROUP BY status
	`, contractorFilter(ctx)).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetInvoiceStatusCounts(ctx context.Context) ([]domainRepo.StatusCountResult, error) {
	var results []domainRepo.StatusCountResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count
		FROM invoices
		WHERE contractor_id = ? AND deleted_at IS NULL
		GROUP BY status
	`, contractorFilter(ctx)).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetContractStatusCounts(ctx context.Context) ([]domainRepo.StatusCountResult, error) {
	var results []domainRepo.StatusCountResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count
		FROM contracts
		WHERE contractor_id = ? AND deleted_at IS NULL
		GROUP BY status
	`, contractorFilter(ctx)).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetTopCustomers(ctx context.Context, limit int) ([]domainRepo.TopCustomerResult, error) {
	var results []domainRepo.TopCustomerResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id as customer_id,
			c.name as customer_name,
			COALESCE(SUM(i.total), 0) as total_billed,
			COUNT(i.id) as invoice_count
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE i.contractor_id = ? AND i.deleted_at IS NULL AND i.customer_id IS NOT NULL
		GROUP BY c.id, c.name
		ORDER BY total_billed DESC
		LIMIT ?
	`, contractorFilter(ctx), limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetMonthlyRevenue(ctx context.Context, months int) ([]domainRepo.MonthlyRevenueResult, error) {
	results := make([]domainRepo.MonthlyRevenueResult, 0, months)
	now := time.Now()
	contractorID := contractorFilter(ctx)

	for i := months - 1; i >= 0; i-- {
		startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		endOfMonth := startOfMonth.AddDate(0, 1, 0)

		var row struct {
			Revenue float64
			Paid    float64
		}
		err := r.db.WithContext(ctx).Raw(`
			SELECT
				COALESCE(SUM(total), 0) as revenue,
				COALESCE(SUM(CASE WHEN status = 2 THEN total ELSE 0 END), 0) as paid
			FROM invoices
			WHERE contractor_id = ? AND deleted_at IS NULL
			AND date >= ? AND date < ?
		`, contractorID, startOfMonth, endOfMonth).Scan(&row).Error

		if err != nil {
			return nil, err
		}

		results = append(results, domainRepo.MonthlyRevenueResult{
			Month:   startOfMonth,
			Revenue: row.Revenue,
			Paid:    row.Paid,
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetOutstandingBalance(ctx context.Context) (float64, error) {
	var balance float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM invoices
		WHERE contractor_id = ? AND deleted_at IS NULL AND status IN (1, 3)
	`, contractorFilter(ctx)).Scan(&balance).Error

	return balance, err
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM invoices
		WHERE contractor_id = ? AND deleted_at IS NULL AND status = 2
	`, contractorFilter(ctx)).Scan(&revenue).Error

	return revenue, err
}
