package service

import (
	"context"
	"log"
	"time"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/entity"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/enum"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/repository"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/apperror"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/pagination"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/utils"
	"github.com/google/uuid"
)

// ContractService handles contract-related operations
type ContractService struct {
	contractRepo     repository.ContractRepository
	estimateRepo     repository.EstimateRepository
	customerRepo     repository.CustomerRepository
	notificationRepo repository.NotificationRepository
}

// NewContractService creates a new contract service
func NewContractService(
	contractRepo repository.ContractRepository,
	estimateRepo repository.EstimateRepository,
	customerRepo repository.CustomerRepository,
	notificationRepo repository.NotificationRepository,
) *ContractService {
	return &ContractService{
		contractRepo:     contractRepo,
		estimateRepo:     estimateRepo,
		customerRepo:     customerRepo,
		notificationRepo: notificationRepo,
	}
}

// CreateContractInput represents the input for creating a contract
type CreateContractInput struct {
	ContractorID   uuid.UUID
	UserID         uuid.UUID
	CustomerID     *uuid.UUID
	EstimateID     *uuid.UUID
	Date           time.Time
	Amount         float64
	JobDescription *string
	ScopeOfWork    *string
	Terms          *string
}

// CreateContract creates a new contract, optionally linked to an estimate
func (s *ContractService) CreateContract(ctx context.Context, input *CreateContractInput) (*entity.Contract, error) {
	nextNum, err := s.contractRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}
	reference := utils.GenerateReference("CON", nextNum)

	if input.Amount < 0 {
		return nil, apperror.NewBadRequestError("Contract amount cannot be negative")
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	if input.EstimateID != nil {
		estimate, err := s.estimateRepo.GetByID(ctx, *input.EstimateID)
		if err != nil {
			return nil, err
		}
		if estimate == nil {
			return nil, apperror.NewNotFoundError("Estimate")
		}
	}

	contract := &entity.Contract{
		ContractorID:   input.ContractorID,
		UserID:         input.UserID,
		CustomerID:     input.CustomerID,
		EstimateID:     input.EstimateID,
		Date:           input.Date,
		Reference:      reference,
		Amount:         input.Amount,
		Status:         enum.ContractStatusDraft,
		JobDescription: input.JobDescription,
		ScopeOfWork:    input.ScopeOfWork,
		Terms:          input.Terms,
	}

	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, err
	}

	return s.contractRepo.GetWithDetails(ctx, contract.ID)
}

// CreateContractFromEstimate builds a draft contract from an approved estimate
func (s *ContractService) CreateContractFromEstimate(ctx context.Context, userID uuid.UUID, estimateID uuid.UUID) (*entity.Contract, error) {
	estimate, err := s.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	if estimate == nil {
		return nil, apperror.NewNotFoundError("Estimate")
	}
	if estimate.Status != enum.EstimateStatusApproved {
		return nil, apperror.NewConflictError("Only approved estimates can be contracted")
	}

	return s.CreateContract(ctx, &CreateContractInput{
		ContractorID:   estimate.ContractorID,
		UserID:         userID,
		CustomerID:     estimate.CustomerID,
		EstimateID:     &estimate.ID,
		Date:           time.Now(),
		Amount:         estimate.Total,
		JobDescription: estimate.JobDescription,
		ScopeOfWork:    estimate.ScopeOfWork,
		Terms:          estimate.Terms,
	})
}

// GetContract retrieves a contract by ID
func (s *ContractService) GetContract(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	contract, err := s.contractRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, apperror.NewNotFoundError("Contract")
	}
	return contract, nil
}

// ListContractsInput represents the input for listing contracts
type ListContractsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.ContractStatus
	CustomerID *uuid.UUID
	SortBy     string
	SortOrder  string
}

// ListContracts lists contracts with filtering
func (s *ContractService) ListContracts(ctx context.Context, input *ListContractsInput) (*pagination.PaginatedResult[entity.Contract], error) {
	params := &repository.ContractFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		CustomerID: input.CustomerID,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}

	contracts, total, err := s.contractRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(contracts, pag), nil
}

// UpdateContractInput represents the input for updating a contract
type UpdateContractInput struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	IsSuperAdmin   bool
	CustomerID     *uuid.UUID
	Date           time.Time
	Amount         float64
	JobDescription *string
	ScopeOfWork    *string
	Terms          *string
}

// UpdateContract updates a draft contract
func (s *ContractService) UpdateContract(ctx context.Context, input *UpdateContractInput) (*entity.Contract, error) {
	contract, err := s.contractRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, apperror.NewNotFoundError("Contract")
	}

	if !input.IsSuperAdmin && contract.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if contract.Status != enum.ContractStatusDraft {
		return nil, apperror.ErrDocumentLocked
	}

	if input.Amount < 0 {
		return nil, apperror.NewBadRequestError("Contract amount cannot be negative")
	}

	contract.CustomerID = input.CustomerID
	contract.Date = input.Date
	contract.Amount = input.Amount
	contract.JobDescription = input.JobDescription
	contract.ScopeOfWork = input.ScopeOfWork
	contract.Terms = input.Terms

	if err := s.contractRepo.Update(ctx, contract); err != nil {
		return nil, err
	}

	return s.contractRepo.GetWithDetails(ctx, contract.ID)
}

// DeleteContract deletes a contract
func (s *ContractService) DeleteContract(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if contract == nil {
		return apperror.NewNotFoundError("Contract")
	}

	if !isSuperAdmin && contract.UserID != userID {
		return apperror.ErrForbidden
	}

	if contract.Status == enum.ContractStatusSigned {
		return apperror.NewConflictError("Signed contracts cannot be deleted")
	}

	return s.contractRepo.Delete(ctx, id)
}

// SendContract sends a draft contract to the customer for signing
func (s *ContractService) SendContract(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) (*entity.Contract, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, apperror.NewNotFoundError("Contract")
	}

	if !isSuperAdmin && contract.UserID != userID {
		return nil, apperror.ErrForbidden
	}

	if contract.Status != enum.ContractStatusDraft {
		return nil, apperror.NewConflictError("Only draft contracts can be sent")
	}

	if err := s.contractRepo.UpdateStatus(ctx, id, enum.ContractStatusSent); err != nil {
		return nil, err
	}

	s.notify(ctx, contract.UserID, "Contract sent",
		"Contract "+contract.Reference+" was sent for signing", "contract.sent", id)

	return s.contractRepo.GetWithDetails(ctx, id)
}

// SignContract records a customer signature on a sent contract
func (s *ContractService) SignContract(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, apperror.NewNotFoundError("Contract")
	}

	if contract.Status != enum.ContractStatusSent {
		return nil, apperror.NewConflictError("Only sent contracts can be signed")
	}

	if err := s.contractRepo.UpdateStatus(ctx, id, enum.ContractStatusSigned); err != nil {
		return nil, err
	}

	s.notify(ctx, contract.UserID, "Contract signed",
		"Contract "+contract.Reference+" was signed by the customer", "contract.signed", id)

	return s.contractRepo.GetWithDetails(ctx, id)
}

// DeclineContract records a customer declining a sent contract
func (s *ContractService) DeclineContract(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, apperror.NewNotFoundError("Contract")
	}

	if contract.Status != enum.ContractStatusSent {
		return nil, apperror.NewConflictError("Only sent contracts can be declined")
	}

	if err := s.contractRepo.UpdateStatus(ctx, id, enum.ContractStatusDeclined); err != nil {
		return nil, err
	}

	s.notify(ctx, contract.UserID, "Contract declined",
		"Contract "+contract.Reference+" was declined by the customer", "contract.declined", id)

	return s.contractRepo.GetWithDetails(ctx, id)
}

// notify records an in-app notification, logging instead of failing on error
func (s *ContractService) notify(ctx context.Context, userID uuid.UUID, title, body, kind string, entityID uuid.UUID) {
	if s.notificationRepo == nil {
		return
	}
	n := &entity.Notification{
		UserID:   userID,
		Title:    title,
		Body:     body,
		Kind:     kind,
		EntityID: &entityID,
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		log.Printf("Warning: failed to create notification: %v", err)
	}
}
