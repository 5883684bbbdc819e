package handler

import (
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/application/service"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/enum"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/presentation/http/dto/request"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/presentation/http/dto/response"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List handles listing invoices with filters
// @Summary List Invoices
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	input := &service.ListInvoicesInput{
		Pagination: params,
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if raw := c.Query("status"); raw != "" {
		status, err := enum.ParseInvoiceStatus(raw)
		if err != nil {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		input.Status = &status
	}

	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID filter")
			return
		}
		input.CustomerID = &customerID
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Get handles fetching a single invoice with its items
// @Summary Get Invoice
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Create handles invoice creation
// @Summary Create Invoice
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateInvoiceRequest true "Invoice data"
// @Success 201 {object} response.APIResponse
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	contractorID := GetContractorID(c)
	if userID == nil || contractorID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customerID, ok := parseUUIDPtr(req.CustomerID)
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	estimateID, ok := parseUUIDPtr(req.EstimateID)
	if !ok {
		response.BadRequest(c, "Invalid estimate ID")
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		ContractorID: *contractorID,
		UserID:       *userID,
		CustomerID:   customerID,
		EstimateID:   estimateID,
		Date:         req.Date,
		DueDate:      req.DueDate,
		TaxRate:      req.TaxRate,
		Notes:        req.Notes,
		Terms:        req.Terms,
		Items:        toLineItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// CreateFromEstimate builds a draft invoice from an approved estimate
// @Summary Create Invoice From Estimate
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.InvoiceFromEstimateRequest true "Source estimate"
// @Success 201 {object} response.APIResponse
// @Router /invoices/from-estimate [post]
func (h *InvoiceHandler) CreateFromEstimate(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.InvoiceFromEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	estimateID, err := uuid.Parse(req.EstimateID)
	if err != nil {
		response.BadRequest(c, "Invalid estimate ID")
		return
	}

	invoice, err := h.invoiceService.CreateInvoiceFromEstimate(c.Request.Context(), *userID, estimateID, req.DueDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Update handles invoice updates
// @Summary Update Invoice
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UpdateInvoiceRequest true "Invoice data"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customerID, ok := parseUUIDPtr(req.CustomerID)
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), &service.UpdateInvoiceInput{
		ID:           id,
		UserID:       *userID,
		IsSuperAdmin: IsSuperAdmin(c),
		CustomerID:   customerID,
		Date:         req.Date,
		DueDate:      req.DueDate,
		TaxRate:      req.TaxRate,
		Notes:        req.Notes,
		Terms:        req.Terms,
		Items:        toLineItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", invoice)
}

// Delete handles invoice deletion
// @Summary Delete Invoice
// @Tags invoices
// @Security BearerAuth
// @Success 204
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Submit issues a draft invoice to the customer
// @Summary Submit Invoice
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id}/submit [post]
func (h *InvoiceHandler) Submit(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.SubmitInvoice(c.Request.Context(), *userID, id, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice submitted successfully", invoice)
}

// MarkPaid records payment of an issued invoice
// @Summary Mark Invoice Paid
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id}/pay [post]
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.MarkInvoicePaid(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice marked as paid", invoice)
}

// Cancel cancels an unpaid invoice
// @Summary Cancel Invoice
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id}/cancel [post]
func (h *InvoiceHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.CancelInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice canceled", invoice)
}

// MarkOverdue flags issued invoices past their due date
// @Summary Mark Overdue Invoices
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /invoices/mark-overdue [post]
func (h *InvoiceHandler) MarkOverdue(c *gin.Context) {
	marked, err := h.invoiceService.MarkOverdueInvoices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Overdue invoices updated", gin.H{"marked": marked})
}
