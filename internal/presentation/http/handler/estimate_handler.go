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

// EstimateHandler handles estimate-related HTTP requests
type EstimateHandler struct {
	estimateService *service.EstimateService
}

// NewEstimateHandler creates a new estimate handler
func NewEstimateHandler(estimateService *service.EstimateService) *EstimateHandler {
	return &EstimateHandler{estimateService: estimateService}
}

func toLineItemInputs(items []request.LineItemRequest) []service.LineItemInput {
	inputs := make([]service.LineItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, service.LineItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
		})
	}
	return inputs
}

// List handles listing estimates with filters
// @Summary List Estimates
// @Tags estimates
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /estimates [get]
func (h *EstimateHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	input := &service.ListEstimatesInput{
		Pagination: params,
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if raw := c.Query("status"); raw != "" {
		status, err := enum.ParseEstimateStatus(raw)
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

	result, err := h.estimateService.ListEstimates(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Estimates retrieved successfully", result)
}

// Get handles fetching a single estimate with its items
// @Summary Get Estimate
// @Tags estimates
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /estimates/{id} [get]
func (h *EstimateHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid estimate ID")
		return
	}

	estimate, err := h.estimateService.GetEstimate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Estimate retrieved successfully", estimate)
}

// Create handles estimate creation
// @Summary Create Estimate
// @Tags estimates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateEstimateRequest true "Estimate data"
// @Success 201 {object} response.APIResponse
// @Router /estimates [post]
func (h *EstimateHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	contractorID := GetContractorID(c)
	if userID == nil || contractorID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customerID, ok := parseUUIDPtr(req.CustomerID)
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	estimate, err := h.estimateService.CreateEstimate(c.Request.Context(), &service.CreateEstimateInput{
		ContractorID:   *contractorID,
		UserID:         *userID,
		CustomerID:     customerID,
		Date:           req.Date,
		TaxRate:        req.TaxRate,
		JobDescription: req.JobDescription,
		ScopeOfWork:    req.ScopeOfWork,
		Terms:          req.Terms,
		Items:          toLineItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Estimate created successfully", estimate)
}

// Update handles estimate updates
// @Summary Update Estimate
// @Tags estimates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UpdateEstimateRequest true "Estimate data"
// @Success 200 {object} response.APIResponse
// @Router /estimates/{id} [put]
func (h *EstimateHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid estimate ID")
		return
	}

	var req request.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customerID, ok := parseUUIDPtr(req.CustomerID)
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	estimate, err := h.estimateService.UpdateEstimate(c.Request.Context(), &service.UpdateEstimateInput{
		ID:             id,
		UserID:         *userID,
		IsSuperAdmin:   IsSuperAdmin(c),
		CustomerID:     customerID,
		Date:           req.Date,
		TaxRate:        req.TaxRate,
		JobDescription: req.JobDescription,
		ScopeOfWork:    req.ScopeOfWork,
		Terms:          req.Terms,
		Items:          toLineItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Estimate updated successfully", estimate)
}

// Delete handles estimate deletion
// @Summary Delete Estimate
// @Tags estimates
// @Security BearerAuth
// @Success 204
// @Router /estimates/{id} [delete]
func (h *EstimateHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid estimate ID")
		return
	}

	if err := h.estimateService.DeleteEstimate(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Submit moves a draft estimate to submitted
// @Summary Submit Estimate
// @Tags estimates
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /estimates/{id}/submit [post]
func (h *EstimateHandler) Submit(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid estimate ID")
		return
	}

	estimate, err := h.estimateService.SubmitEstimate(c.Request.Context(), *userID, id, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Estimate submitted successfully", estimate)
}

// Approve marks a submitted estimate approved
// @Summary Approve Estimate
// @Tags estimates
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /estimates/{id}/approve [post]
func (h *EstimateHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid estimate ID")
		return
	}

	estimate, err := h.estimateService.ApproveEstimate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Estimate approved", estimate)
}

// Decline marks a submitted estimate declined
// @Summary Decline Estimate
// @Tags estimates
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /estimates/{id}/decline [post]
func (h *EstimateHandler) Decline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid estimate ID")
		return
	}

	estimate, err := h.estimateService.DeclineEstimate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Estimate declined", estimate)
}

// RequestChanges sends a submitted estimate back for edits
// @Summary Request Estimate Changes
// @Tags estimates
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /estimates/{id}/request-changes [post]
func (h *EstimateHandler) RequestChanges(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid estimate ID")
		return
	}

	estimate, err := h.estimateService.RequestEstimateChanges(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Estimate returned for changes", estimate)
}
