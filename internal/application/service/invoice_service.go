package service

import (
	"context"
	"log"
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

// InvoiceService handles invoice-related operations
type InvoiceService struct {
	invoiceRepo      repository.InvoiceRepository
	invoiceItemRepo  repository.InvoiceItemRepository
	estimateRepo     repository.EstimateRepository
	customerRepo     repository.CustomerRepository
	notificationRepo repository.NotificationRepository
	emailService     *email.EmailService
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	invoiceItemRepo repository.InvoiceItemRepository,
	estimateRepo repository.EstimateRepository,
	customerRepo repository.CustomerRepository,
	notificationRepo repository.NotificationRepository,
	emailService *email.EmailService,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:      invoiceRepo,
		invoiceItemRepo:  invoiceItemRepo,
		estimateRepo:     estimateRepo,
		customerRepo:     customerRepo,
		notificationRepo: notificationRepo,
		emailService:     emailService,
	}
}

// CreateInvoiceInput represents the input for creating an invoice
type CreateInvoiceInput struct {
	ContractorID uuid.UUID
	UserID       uuid.UUID
	CustomerID   *uuid.UUID
	EstimateID   *uuid.UUID
	Date         time.Time
	DueDate      *time.Time
	TaxRate      float64
	Notes        *string
	Terms        *string
	Items        []LineItemInput
}

// CreateInvoice creates a new invoice with validated line items and totals
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	nextNum, err := s.invoiceRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}
	reference := utils.GenerateReference("INV", nextNum)

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

	if input.EstimateID != nil {
		estimate, err := s.estimateRepo.GetByID(ctx, *input.EstimateID)
		if err != nil {
			return nil, err
		}
		if estimate == nil {
			return nil, apperror.NewNotFoundError("Estimate")
		}
	}

	totals := ledger.ComputeTotals(items, input.TaxRate)

	invoice := &entity.Invoice{
		ContractorID: input.ContractorID,
		UserID:       input.UserID,
		CustomerID:   input.CustomerID,
		EstimateID:   input.EstimateID,
		Date:         input.Date,
		DueDate:      input.DueDate,
		Reference:    reference,
		Subtotal:     totals.Subtotal,
		TaxRate:      totals.TaxRate,
		TaxAmount:    totals.TaxAmount,
		Total:        totals.Total,
		Status:       enum.InvoiceStatusDraft,
		Notes:        input.Notes,
		Terms:        input.Terms,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	entityItems := make([]entity.InvoiceItem, 0, len(items))
	for i, item := range items {
		entityItems = append(entityItems, entity.InvoiceItem{
			InvoiceID:   invoice.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
			Position:    i,
		})
	}
	if err := s.invoiceItemRepo.CreateBatch(ctx, entityItems); err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetWithDetails(ctx, invoice.ID)
}

// CreateInvoiceFromEstimate builds a draft invoice from an approved estimate
func (s *InvoiceService) CreateInvoiceFromEstimate(ctx context.Context, userID uuid.UUID, estimateID uuid.UUID, dueDate *time.Time) (*entity.Invoice, error) {
	estimate, err := s.estimateRepo.GetWithDetails(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	if estimate == nil {
		return nil, apperror.NewNotFoundError("Estimate")
	}
	if estimate.Status != enum.EstimateStatusApproved {
		return nil, apperror.NewConflictError("Only approved estimates can be invoiced")
	}

	items := make([]LineItemInput, 0, len(estimate.Items))
	for _, item := range estimate.Items {
		items = append(items, LineItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
		})
	}

	return s.CreateInvoice(ctx, &CreateInvoiceInput{
		ContractorID: estimate.ContractorID,
		UserID:       userID,
		CustomerID:   estimate.CustomerID,
		EstimateID:   &estimate.ID,
		Date:         time.Now(),
		DueDate:      dueDate,
		TaxRate:      estimate.TaxRate,
		Terms:        estimate.Terms,
		Items:        items,
	})
}

// GetInvoice retrieves an invoice by ID with its items
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoicesInput represents the input for listing invoices
type ListInvoicesInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.InvoiceStatus
	CustomerID *uuid.UUID
	SortBy     string
	SortOrder  string
}

// ListInvoices lists invoices with filtering
func (s *InvoiceService) ListInvoices(ctx context.Context, input *ListInvoicesInput) (*pagination.PaginatedResult[entity.Invoice], error) {
	params := &repository.InvoiceFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		CustomerID: input.CustomerID,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}

	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// UpdateInvoiceInput represents the input for updating an invoice
type UpdateInvoiceInput struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	IsSuperAdmin bool
	CustomerID   *uuid.UUID
	Date         time.Time
	DueDate      *time.Time
	TaxRate      float64
	Notes        *string
	Terms        *string
	Items        []LineItemInput
}

// UpdateInvoice replaces the content of a draft invoice and recomputes totals
func (s *InvoiceService) UpdateInvoice(ctx context.Context, input *UpdateInvoiceInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if !input.IsSuperAdmin && invoice.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if invoice.Status != enum.InvoiceStatusDraft {
		return nil, apperror.ErrDocumentLocked
	}

	items := toLedgerItems(input.Items)
	if err := validateDocument(invoice.Reference, input.CustomerID, items, input.TaxRate); err != nil {
		return nil, err
	}

	totals := ledger.ComputeTotals(items, input.TaxRate)

	invoice.CustomerID = input.CustomerID
	invoice.Date = input.Date
	invoice.DueDate = input.DueDate
	invoice.Subtotal = totals.Subtotal
	invoice.TaxRate = totals.TaxRate
	invoice.TaxAmount = totals.TaxAmount
	invoice.Total = totals.Total
	invoice.Notes = input.Notes
	invoice.Terms = input.Terms

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	// Replace line items
	if err := s.invoiceItemRepo.DeleteByInvoiceID(ctx, invoice.ID); err != nil {
		return nil, err
	}

	entityItems := make([]entity.InvoiceItem, 0, len(items))
	for i, item := range items {
		entityItems = append(entityItems, entity.InvoiceItem{
			InvoiceID:   invoice.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
			Position:    i,
		})
	}
	if err := s.invoiceItemRepo.CreateBatch(ctx, entityItems); err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetWithDetails(ctx, invoice.ID)
}

// DeleteInvoice deletes an invoice and its items
func (s *InvoiceService) DeleteInvoice(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	if !isSuperAdmin && invoice.UserID != userID {
		return apperror.ErrForbidden
	}

	if invoice.Status == enum.InvoiceStatusPaid {
		return apperror.NewConflictError("Paid invoices cannot be deleted")
	}

	if err := s.invoiceItemRepo.DeleteByInvoiceID(ctx, id); err != nil {
		return err
	}

	return s.invoiceRepo.Delete(ctx, id)
}

// SubmitInvoice issues a draft invoice to the customer
func (s *InvoiceService) SubmitInvoice(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if !isSuperAdmin && invoice.UserID != userID {
		return nil, apperror.ErrForbidden
	}

	if invoice.Status != enum.InvoiceStatusDraft {
		return nil, apperror.NewConflictError("Only draft invoices can be submitted")
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, id, enum.InvoiceStatusSubmitted); err != nil {
		return nil, err
	}

	s.notify(ctx, invoice.UserID, "Invoice issued",
		"Invoice "+invoice.Reference+" was issued to the customer", "invoice.submitted", id)

	// Customer email is best effort; a delivery failure does not fail the submit
	if s.emailService != nil && invoice.Customer != nil && invoice.Customer.Email != nil {
		if err := s.emailService.SendInvoiceEmail(*invoice.Customer.Email, invoice.Customer.Name,
			invoice.Reference, invoice.Total); err != nil {
			log.Printf("Warning: failed to send invoice email for %s: %v", invoice.Reference, err)
		}
	}

	return s.invoiceRepo.GetWithDetails(ctx, id)
}

// MarkInvoicePaid records payment of a submitted or overdue invoice
func (s *InvoiceService) MarkInvoicePaid(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if invoice.Status != enum.InvoiceStatusSubmitted && invoice.Status != enum.InvoiceStatusOverdue {
		return nil, apperror.NewConflictError("Only issued invoices can be marked paid")
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, id, enum.InvoiceStatusPaid); err != nil {
		return nil, err
	}

	s.notify(ctx, invoice.UserID, "Invoice paid",
		"Invoice "+invoice.Reference+" was marked as paid", "invoice.paid", id)

	return s.invoiceRepo.GetWithDetails(ctx, id)
}

// CancelInvoice cancels an unpaid invoice
func (s *InvoiceService) CancelInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if invoice.Status == enum.InvoiceStatusPaid {
		return nil, apperror.NewConflictError("Paid invoices cannot be canceled")
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, id, enum.InvoiceStatusCanceled); err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetWithDetails(ctx, id)
}

// MarkOverdueInvoices flags issued invoices past their due date. Intended to
// run periodically from a scheduler or on dashboard load.
func (s *InvoiceService) MarkOverdueInvoices(ctx context.Context) (int, error) {
	overdue, err := s.invoiceRepo.ListOverdue(ctx)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, invoice := range overdue {
		if err := s.invoiceRepo.UpdateStatus(ctx, invoice.ID, enum.InvoiceStatusOverdue); err != nil {
			log.Printf("Warning: failed to mark invoice %s overdue: %v", invoice.Reference, err)
			continue
		}
		s.notify(ctx, invoice.UserID, "Invoice overdue",
			"Invoice "+invoice.Reference+" is past its due date", "invoice.overdue", invoice.ID)
		marked++
	}

	return marked, nil
}

// notify records an in-app notification, logging instead of failing on error
func (s *InvoiceService) notify(ctx context.Context, userID uuid.UUID, title, body, kind string, entityID uuid.UUID) {
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
