package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/entity"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/repository"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/pagination"
	"github.com/xuri/excelize/v2"
)

// ReportService exports billing data as spreadsheets
type ReportService struct {
	estimateRepo repository.EstimateRepository
	invoiceRepo  repository.InvoiceRepository
	contractRepo repository.ContractRepository
}

// NewReportService creates a new report service
func NewReportService(
	estimateRepo repository.EstimateRepository,
	invoiceRepo repository.InvoiceRepository,
	contractRepo repository.ContractRepository,
) *ReportService {
	return &ReportService{
		estimateRepo: estimateRepo,
		invoiceRepo:  invoiceRepo,
		contractRepo: contractRepo,
	}
}

// ReportFile is a generated spreadsheet ready to serve
type ReportFile struct {
	Filename string
	Data     []byte
}

// exportPageSize is the per-query batch; exports page until exhausted
const exportPageSize = 100

// fetchAll pages through a list endpoint until every row is collected
func fetchAll[T any](list func(*pagination.PaginationParams) ([]T, int64, error)) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		batch, total, err := list(&pagination.PaginationParams{Page: page, PerPage: exportPageSize})
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) == 0 || int64(len(all)) >= total {
			return all, nil
		}
	}
}

// ExportInvoices writes all invoices for the current contractor to an XLSX workbook
func (s *ReportService) ExportInvoices(ctx context.Context) (*ReportFile, error) {
	invoices, err := fetchAll(func(p *pagination.PaginationParams) ([]entity.Invoice, int64, error) {
		return s.invoiceRepo.List(ctx, &repository.InvoiceFilterParams{Pagination: p})
	})
	if err != nil {
		return nil, err
	}

	headers := []string{"Reference", "Customer", "Date", "Due Date", "Status", "Subtotal", "Tax", "Total", "Paid At"}
	rows := make([][]interface{}, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, []interface{}{
			inv.Reference,
			invoiceCustomerName(&inv),
			inv.Date.Format("2006-01-02"),
			formatDatePtr(inv.DueDate),
			inv.Status.String(),
			inv.Subtotal,
			inv.TaxAmount,
			inv.Total,
			formatDatePtr(inv.PaidAt),
		})
	}

	data, err := buildWorkbook("Invoices", headers, rows)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("invoices-%s.xlsx", time.Now().Format("2006-01-02"))
	return &ReportFile{Filename: filename, Data: data}, nil
}

// ExportEstimates writes all estimates for the current contractor to an XLSX workbook
func (s *ReportService) ExportEstimates(ctx context.Context) (*ReportFile, error) {
	estimates, err := fetchAll(func(p *pagination.PaginationParams) ([]entity.Estimate, int64, error) {
		return s.estimateRepo.List(ctx, &repository.EstimateFilterParams{Pagination: p})
	})
	if err != nil {
		return nil, err
	}

	headers := []string{"Reference", "Customer", "Date", "Status", "Subtotal", "Tax", "Total"}
	rows := make([][]interface{}, 0, len(estimates))
	for _, est := range estimates {
		customerName := ""
		if est.Customer != nil {
			customerName = est.Customer.Name
		}
		rows = append(rows, []interface{}{
			est.Reference,
			customerName,
			est.Date.Format("2006-01-02"),
			est.Status.String(),
			est.Subtotal,
			est.TaxAmount,
			est.Total,
		})
	}

	data, err := buildWorkbook("Estimates", headers, rows)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("estimates-%s.xlsx", time.Now().Format("2006-01-02"))
	return &ReportFile{Filename: filename, Data: data}, nil
}

// ExportContracts writes all contracts for the current contractor to an XLSX workbook
func (s *ReportService) ExportContracts(ctx context.Context) (*ReportFile, error) {
	contracts, err := fetchAll(func(p *pagination.PaginationParams) ([]entity.Contract, int64, error) {
		return s.contractRepo.List(ctx, &repository.ContractFilterParams{Pagination: p})
	})
	if err != nil {
		return nil, err
	}

	headers := []string{"Reference", "Customer", "Date", "Status", "Amount", "Signed At"}
	rows := make([][]interface{}, 0, len(contracts))
	for _, con := range contracts {
		customerName := ""
		if con.Customer != nil {
			customerName = con.Customer.Name
		}
		rows = append(rows, []interface{}{
			con.Reference,
			customerName,
			con.Date.Format("2006-01-02"),
			con.Status.String(),
			con.Amount,
			formatDatePtr(con.SignedAt),
		})
	}

	data, err := buildWorkbook("Contracts", headers, rows)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("contracts-%s.xlsx", time.Now().Format("2006-01-02"))
	return &ReportFile{Filename: filename, Data: data}, nil
}

// buildWorkbook creates a single-sheet workbook with a bold header row
func buildWorkbook(sheetName string, headers []string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func invoiceCustomerName(inv *entity.Invoice) string {
	if inv.Customer != nil {
		return inv.Customer.Name
	}
	return ""
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
