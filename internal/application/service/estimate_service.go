package service

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/entity"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/enum"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/ledger"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/repository"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/apperror"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/email"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/pagination"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/utils"
	"github.com/google/uuid"
)

// EstimateService handles estimate-related operations
type EstimateService struct {
	estimateRepo     repository.EstimateRepository
	estimateItemRepo repository.EstimateItemRepository
	customerRepo     repository.CustomerRepository
	notificationRepo repository.NotificationRepository
	emailService     *email.EmailService
}

// NewEstimateService creates a new estimate service
func NewEstimateService(
	estimateRepo repository.EstimateRepository,
	estimateItemRepo repository.EstimateItemRepository,
	customerRepo repository.CustomerRepository,
	notificationRepo repository.NotificationRepository,
	emailService *email.EmailService,
) *EstimateService {
	return &EstimateService{
		estimateRepo:     estimateRepo,
		estimateItemRepo: estimateItemRepo,
		customerRepo:     customerRepo,
		notificationRepo: notificationRepo,
		emailService:     emailService,
	}
}

// LineItemInput represents a line item input for estimates and invoices
type LineItemInput struct {
	Description string
	Quantity    float64
	Rate        float64
}

// CreateEstimateInput represents the input for creating an estimate
type CreateEstimateInput struct {
	ContractorID   uuid.UUID
	UserID         uuid.UUID
	CustomerID     *uuid.UUID
	Date           time.Time
	TaxRate        float64
	JobDescription *string
	ScopeOfWork    *string
	Terms          *string
	Items          []LineItemInput
}

// toLedgerItems converts raw inputs into ledger line items with derived amounts
func toLedgerItems(inputs []LineItemInput) []ledger.LineItem {
	l := ledger.New()
	for _, in := range inputs {
		item := l.AddItem()
		l.UpdateDescription(item.ID, in.Description)
		l.UpdateQuantity(item.ID, in.Quantity)
		l.UpdateRate(item.ID, in.Rate)
	}
	return l.Items()
}

// validateDocument runs ledger validation and maps a failure to an app error
func validateDocument(reference string, customerID *uuid.UUID, items []ledger.LineItem, taxRate float64) error {
	customer := ""
	if customerID != nil {
		customer = customerID.String()
	}
	state := ledger.Validate(reference, customer, items, taxRate)
	if !state.AllRequiredValid {
		return apperror.NewAppError(http.StatusUnprocessableEntity, state.Reason)
	}
	return nil
}

// CreateEstimate creates a new estimate with validated line items and totals
func (s *EstimateService) CreateEstimate(ctx context.Context, input *CreateEstimateInput) (*entity.Estimate, error) {
	nextNum, err := s.estimateRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}
	reference := utils.GenerateReference("EST", nextNum)

	items := toLedgerItems(input.Items)
	if err := validateDocument(reference, input.CustomerID, items, input.TaxRate); err != nil {
		return nil, err
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

	totals := ledger.ComputeTotals(items, input.TaxRate)

	estimate := &entity.Estimate{
		ContractorID:   input.ContractorID,
		UserID:         input.UserID,
		CustomerID:     input.CustomerID,
		Date:           input.Date,
		Reference:      reference,
		Subtotal:       totals.Subtotal,
		TaxRate:        totals.TaxRate,
		TaxAmount:      totals.TaxAmount,
		Total:          totals.Total,
		Status:         enum.EstimateStatusDraft,
		JobDescription: input.JobDescription,
		ScopeOfWork:    input.ScopeOfWork,
		Terms:          input.Terms,
	}

	if err := s.estimateRepo.Create(ctx, estimate); err != nil {
		return nil, err
	}

	entityItems := make([]entity.EstimateItem, 0, len(items))
	for i, item := range items {
		entityItems = append(entityItems, entity.EstimateItem{
			EstimateID:  estimate.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
			Position:    i,
		})
	}
	if err := s.estimateItemRepo.CreateBatch(ctx, entityItems); err != nil {
		return nil, err
	}

	return s.estimateRepo.GetWithDetails(ctx, estimate.ID)
}

// GetEstimate retrieves an estimate by ID with its items
func (s *EstimateService) GetEstimate(ctx context.Context, id uuid.UUID) (*entity.Estimate, error) {
	estimate, err := s.estimateRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if estimate == nil {
		return nil, apperror.NewNotFoundError("Estimate")
	}
	return estimate, nil
}

// ListEstimatesInput represents the input for listing estimates
type ListEstimatesInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.EstimateStatus
	CustomerID *uuid.UUID
	SortBy     string
	SortOrder  string
}

// ListEstimates lists estimates with filtering
func (s *EstimateService) ListEstimates(ctx context.Context, input *ListEstimatesInput) (*pagination.PaginatedResult[entity.Estimate], error) {
	params := &repository.EstimateFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		CustomerID: input.CustomerID,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}

	estimates, total, err := s.estimateRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(estimates, pag), nil
}

// UpdateEstimateInput represents the input for updating an estimate
type UpdateEstimateInput struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	IsSuperAdmin   bool
	CustomerID     *uuid.UUID
	Date           time.Time
	TaxRate        float64
	JobDescription *string
	ScopeOfWork    *string
	Terms          *string
	Items          []LineItemInput
}

// estimateEditable reports whether an estimate can still be modified
func estimateEditable(status enum.EstimateStatus) bool {
	return status == enum.EstimateStatusDraft || status == enum.EstimateStatusNeedsUpdate
}

// UpdateEstimate replaces the content of a draft estimate and recomputes totals
func (s *EstimateService) UpdateEstimate(ctx context.Context, input *UpdateEstimateInput) (*entity.Estimate, error) {
	estimate, err := s.estimateRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if estimate == nil {
		return nil, apperror.NewNotFoundError("Estimate")
	}

	if !input.IsSuperAdmin && estimate.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if !estimateEditable(estimate.Status) {
		return nil, apperror.ErrDocumentLocked
	}

	items := toLedgerItems(input.Items)
	if err := validateDocument(estimate.Reference, input.CustomerID, items, input.TaxRate); err != nil {
		return nil, err
	}

	totals := ledger.ComputeTotals(items, input.TaxRate)

	estimate.CustomerID = input.CustomerID
	estimate.Date = input.Date
	estimate.Subtotal = totals.Subtotal
	estimate.TaxRate = totals.TaxRate
	estimate.TaxAmount = totals.TaxAmount
	estimate.Total = totals.Total
	estimate.JobDescription = input.JobDescription
	estimate.ScopeOfWork = input.ScopeOfWork
	estimate.Terms = input.Terms

	if err := s.estimateRepo.Update(ctx, estimate); err != nil {
		return nil, err
	}

	// Replace line items
	if err := s.estimateItemRepo.DeleteByEstimateID(ctx, estimate.ID); err != nil {
		return nil, err
	}

	entityItems := make([]entity.EstimateItem, 0, len(items))
	for i, item := range items {
		entityItems = append(entityItems, entity.EstimateItem{
			EstimateID:  estimate.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
			Position:    i,
		})
	}
	if err := s.estimateItemRepo.CreateBatch(ctx, entityItems); err != nil {
		return nil, err
	}

	return s.estimateRepo.GetWithDetails(ctx, estimate.ID)
}

// DeleteEstimate deletes an estimate and its items
func (s *EstimateService) DeleteEstimate(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	estimate, err := s.estimateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if estimate == nil {
		return apperror.NewNotFoundError("Estimate")
	}

	if !isSuperAdmin && estimate.UserID != userID {
		return apperror.ErrForbidden
	}

	if err := s.estimateItemRepo.DeleteByEstimateID(ctx, id); err != nil {
		return err
	}

	return s.estimateRepo.Delete(ctx, id)
}

// SubmitEstimate moves an estimate from draft to submitted and notifies the customer
func (s *EstimateService) SubmitEstimate(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) (*entity.Estimate, error) {
	estimate, err := s.estimateRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if estimate == nil {
		return nil, apperror.NewNotFoundError("Estimate")
	}

	if !isSuperAdmin && estimate.UserID != userID {
		return nil, apperror.ErrForbidden
	}

	if !estimateEditable(estimate.Status) {
		return nil, apperror.NewConflictError("Only draft estimates can be submitted")
	}

	if err := s.estimateRepo.UpdateStatus(ctx, id, enum.EstimateStatusSubmitted); err != nil {
		return nil, err
	}

	s.notify(ctx, estimate.UserID, "Estimate submitted",
		"Estimate "+estimate.Reference+" was submitted to the customer", "estimate.submitted", id)

	// Customer email is best effort; a delivery failure does not fail the submit
	if s.emailService != nil && estimate.Customer != nil && estimate.Customer.Email != nil {
		if err := s.emailService.SendEstimateEmail(*estimate.Customer.Email, estimate.Customer.Name,
			estimate.Reference, estimate.Total); err != nil {
			log.Printf("Warning: failed to send estimate email for %s: %v", estimate.Reference, err)
		}
	}

	return s.estimateRepo.GetWithDetails(ctx, id)
}

// ApproveEstimate marks a submitted estimate as approved
func (s *EstimateService) ApproveEstimate(ctx context.Context, id uuid.UUID) (*entity.Estimate, error) {
	return s.resolveEstimate(ctx, id, enum.EstimateStatusApproved, "Estimate approved", "estimate.approved")
}

// DeclineEstimate marks a submitted estimate as declined
func (s *EstimateService) DeclineEstimate(ctx context.Context, id uuid.UUID) (*entity.Estimate, error) {
	return s.resolveEstimate(ctx, id, enum.EstimateStatusDeclined, "Estimate declined", "estimate.declined")
}

// RequestEstimateChanges sends a submitted estimate back for edits
func (s *EstimateService) RequestEstimateChanges(ctx context.Context, id uuid.UUID) (*entity.Estimate, error) {
	return s.resolveEstimate(ctx, id, enum.EstimateStatusNeedsUpdate, "Estimate needs changes", "estimate.needs_update")
}

func (s *EstimateService) resolveEstimate(ctx context.Context, id uuid.UUID, status enum.EstimateStatus, title, kind string) (*entity.Estimate, error) {
	estimate, err := s.estimateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if estimate == nil {
		return nil, apperror.NewNotFoundError("Estimate")
	}

	if estimate.Status != enum.EstimateStatusSubmitted {
		return nil, apperror.NewConflictError("Only submitted estimates can be resolved")
	}

	if err := s.estimateRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.notify(ctx, estimate.UserID, title,
		"Estimate "+estimate.Reference+" status changed to "+status.String(), kind, id)

	return s.estimateRepo.GetWithDetails(ctx, id)
}

// notify records an in-app notification, logging instead of failing on error
func (s *EstimateService) notify(ctx context.Context, userID uuid.UUID, title, body, kind string, entityID uuid.UUID) {
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
