package handler

import (
	"net/http"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/application/service"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves spreadsheet exports
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) serveReport(c *gin.Context, file *service.ReportFile, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, file.Data)
}

// ExportEstimates downloads all estimates as an XLSX workbook
// @Summary Export Estimates
// @Tags reports
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /reports/estimates [get]
func (h *ReportHandler) ExportEstimates(c *gin.Context) {
	file, err := h.reportService.ExportEstimates(c.Request.Context())
	h.serveReport(c, file, err)
}

// ExportInvoices downloads all invoices as an XLSX workbook
// @Summary Export Invoices
// @Tags reports
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /reports/invoices [get]
func (h *ReportHandler) ExportInvoices(c *gin.Context) {
	file, err := h.reportService.ExportInvoices(c.Request.Context())
	h.serveReport(c, file, err)
}

// ExportContracts downloads all contracts as an XLSX workbook
// @Summary Export Contracts
// @Tags reports
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /reports/contracts [get]
func (h *ReportHandler) ExportContracts(c *gin.Context) {
	file, err := h.reportService.ExportContracts(c.Request.Context())
	h.serveReport(c, file, err)
}
