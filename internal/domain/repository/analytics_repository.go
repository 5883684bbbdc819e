package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StatusCountResult represents document counts grouped by status
type StatusCountResult struct {
	Status int
	Count  int64
}

// TopCustomerResult represents a customer's billing volume
type TopCustomerResult struct {
	CustomerID   uuid.UUID
	CustomerName string
	TotalBilled  float64
	InvoiceCount int
}

// MonthlyRevenueResult represents invoiced revenue for a single month
type MonthlyRevenueResult struct {
	Month   time.Time
	Revenue float64
	Paid    float64
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// GetEstimateStatusCounts returns estimate counts grouped by status
	GetEstimateStatusCounts(ctx context.Context) ([]StatusCountResult, error)

	// GetInvoiceStatusCounts returns invoice counts grouped by status
	GetInvoiceStatusCounts(ctx context.Context) ([]StatusCountResult, error)

	// GetContractStatusCounts returns contract counts grouped by status
	GetContractStatusCounts(ctx context.Context) ([]StatusCountResult, error)

	// GetTopCustomers returns top customers by total invoiced amount
	GetTopCustomers(ctx context.Context, limit int) ([]TopCustomerResult, error)

	// GetMonthlyRevenue returns invoiced and paid revenue for the last N months
	GetMonthlyRevenue(ctx context.Context, months int) ([]MonthlyRevenueResult, error)

	// GetOutstandingBalance returns the sum of unpaid invoice totals
	GetOutstandingBalance(ctx context.Context) (float64, error)

	// GetTotalRevenue returns total revenue from paid invoices
	GetTotalRevenue(ctx context.Context) (float64, error)
}
