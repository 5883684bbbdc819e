package service

import (
	"context"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/repository"
)

// DashboardService provides dashboard statistics
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardStats represents dashboard statistics for one contractor
type DashboardStats struct {
	EstimateCounts     map[string]int64      `json:"estimate_counts"`
	InvoiceCounts      map[string]int64      `json:"invoice_counts"`
	ContractCounts     map[string]int64      `json:"contract_counts"`
	TotalRevenue       float64               `json:"total_revenue"`
	OutstandingBalance float64               `json:"outstanding_balance"`
	MonthlyRevenue     []MonthlyRevenuePoint `json:"monthly_revenue"`
	TopCustomers       []TopCustomerPoint    `json:"top_customers"`
}

// MonthlyRevenuePoint represents one month of invoiced and paid revenue
type MonthlyRevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Paid    float64 `json:"paid"`
}

// TopCustomerPoint represents a customer's billing volume
type TopCustomerPoint struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	TotalBilled  float64 `json:"total_billed"`
	InvoiceCount int     `json:"invoice_count"`
}

// estimateStatusNames maps integer estimate statuses to display labels
var estimateStatusNames = []string{"draft", "submitted", "approved", "needs_update", "declined"}

// invoiceStatusNames maps integer invoice statuses to display labels
var invoiceStatusNames = []string{"draft", "submitted", "paid", "overdue", "canceled"}

// contractStatusNames maps integer contract statuses to display labels
var contractStatusNames = []string{"draft", "sent", "signed", "declined"}

func countsToMap(counts []repository.StatusCountResult, names []string) map[string]int64 {
	result := make(map[string]int64, len(names))
	for _, name := range names {
		result[name] = 0
	}
	for _, c := range counts {
		if c.Status >= 0 && c.Status < len(names) {
			result[names[c.Status]] = c.Count
		}
	}
	return result
}

// GetDashboardStats returns dashboard statistics for the current contractor
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	estimateCounts, err := s.analyticsRepo.GetEstimateStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	stats.EstimateCounts = countsToMap(estimateCounts, estimateStatusNames)

	invoiceCounts, err := s.analyticsRepo.GetInvoiceStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	stats.InvoiceCounts = countsToMap(invoiceCounts, invoiceStatusNames)

	contractCounts, err := s.analyticsRepo.GetContractStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	stats.ContractCounts = countsToMap(contractCounts, contractStatusNames)

	stats.TotalRevenue, err = s.analyticsRepo.GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	stats.OutstandingBalance, err = s.analyticsRepo.GetOutstandingBalance(ctx)
	if err != nil {
		return nil, err
	}

	monthly, err := s.analyticsRepo.GetMonthlyRevenue(ctx, 6)
	if err != nil {
		return nil, err
	}
	stats.MonthlyRevenue = make([]MonthlyRevenuePoint, 0, len(monthly))
	for _, m := range monthly {
		stats.MonthlyRevenue = append(stats.MonthlyRevenue, MonthlyRevenuePoint{
			Month:   m.Month.Format("Jan 2006"),
			Revenue: m.Revenue,
			Paid:    m.Paid,
		})
	}

	topCustomers, err := s.analyticsRepo.GetTopCustomers(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.TopCustomers = make([]TopCustomerPoint, 0, len(topCustomers))
	for _, c := range topCustomers {
		stats.TopCustomers = append(stats.TopCustomers, TopCustomerPoint{
			CustomerID:   c.CustomerID.String(),
			CustomerName: c.CustomerName,
			TotalBilled:  c.TotalBilled,
			InvoiceCount: c.InvoiceCount,
		})
	}

	return stats, nil
}
