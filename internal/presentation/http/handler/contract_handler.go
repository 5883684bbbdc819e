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

// ContractHandler handles contract-related HTTP requests
type ContractHandler struct {
	contractService *service.ContractService
}

// NewContractHandler creates a new contract handler
func NewContractHandler(contractService *service.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// List handles listing contracts with filters
// @Summary List Contracts
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /contracts [get]
func (h *ContractHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	input := &service.ListContractsInput{
		Pagination: params,
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if raw := c.Query("status"); raw != "" {
		status, err := enum.ParseContractStatus(raw)
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

	result, err := h.contractService.ListContracts(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Contracts retrieved successfully", result)
}

// Get handles fetching a single contract
// @Summary Get Contract
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /contracts/{id} [get]
func (h *ContractHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contract ID")
		return
	}

	contract, err := h.contractService.GetContract(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Contract retrieved successfully", contract)
}

// Create handles contract creation
// @Summary Create Contract
// @Tags contracts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateContractRequest true "Contract data"
// @Success 201 {object} response.APIResponse
// @Router /contracts [post]
func (h *ContractHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	contractorID := GetContractorID(c)
	if userID == nil || contractorID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateContractRequest
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

	contract, err := h.contractService.CreateContract(c.Request.Context(), &service.CreateContractInput{
		ContractorID:   *contractorID,
		UserID:         *userID,
		CustomerID:     customerID,
		EstimateID:     estimateID,
		Date:           req.Date,
		Amount:         req.Amount,
		JobDescription: req.JobDescription,
		ScopeOfWork:    req.ScopeOfWork,
		Terms:          req.Terms,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Contract created successfully", contract)
}

// CreateFromEstimate builds a draft contract from an approved estimate
// @Summary Create Contract From Estimate
// @Tags contracts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.ContractFromEstimateRequest true "Source estimate"
// @Success 201 {object} response.APIResponse
// @Router /contracts/from-estimate [post]
func (h *ContractHandler) CreateFromEstimate(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ContractFromEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	estimateID, err := uuid.Parse(req.EstimateID)
	if err != nil {
		response.BadRequest(c, "Invalid estimate ID")
		return
	}

	contract, err := h.contractService.CreateContractFromEstimate(c.Request.Context(), *userID, estimateID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Contract created successfully", contract)
}

// Update handles contract updates
// @Summary Update Contract
// @Tags contracts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UpdateContractRequest true "Contract data"
// @Success 200 {object} response.APIResponse
// @Router /contracts/{id} [put]
func (h *ContractHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contract ID")
		return
	}

	var req request.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customerID, ok := parseUUIDPtr(req.CustomerID)
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	contract, err := h.contractService.UpdateContract(c.Request.Context(), &service.UpdateContractInput{
		ID:             id,
		UserID:         *userID,
		IsSuperAdmin:   IsSuperAdmin(c),
		CustomerID:     customerID,
		Date:           req.Date,
		Amount:         req.Amount,
		JobDescription: req.JobDescription,
		ScopeOfWork:    req.ScopeOfWork,
		Terms:          req.Terms,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Contract updated successfully", contract)
}

// Delete handles contract deletion
// @Summary Delete Contract
// @Tags contracts
// @Security BearerAuth
// @Success 204
// @Router /contracts/{id} [delete]
func (h *ContractHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contract ID")
		return
	}

	if err := h.contractService.DeleteContract(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Send sends a draft contract for signing
// @Summary Send Contract
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /contracts/{id}/send [post]
func (h *ContractHandler) Send(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contract ID")
		return
	}

	contract, err := h.contractService.SendContract(c.Request.Context(), *userID, id, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Contract sent for signing", contract)
}

// Sign records a customer signature on a sent contract
// @Summary Sign Contract
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /contracts/{id}/sign [post]
func (h *ContractHandler) Sign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contract ID")
		return
	}

	contract, err := h.contractService.SignContract(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Contract signed", contract)
}

// Decline records a customer declining a sent contract
// @Summary Decline Contract
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /contracts/{id}/decline [post]
func (h *ContractHandler) Decline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contract ID")
		return
	}

	contract, err := h.contractService.DeclineContract(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Contract declined", contract)
}
