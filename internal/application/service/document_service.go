package service

import (
	"context"
	"fmt"
	"log"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/entity"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/enum"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/repository"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/infrastructure/storage"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/apperror"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/pdfgen"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/utils"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// DocumentService renders billing documents to PDF. Each render resolves
// the document and its related records sequentially, fails fast on the
// first missing piece, then assembles a single-page PDF.
type DocumentService struct {
	estimateRepo   repository.EstimateRepository
	invoiceRepo    repository.InvoiceRepository
	contractRepo   repository.ContractRepository
	contractorRepo repository.ContractorRepository
	assembler      *pdfgen.Assembler
	blobStorage    storage.BlobStorage
}

// NewDocumentService creates a new document service
func NewDocumentService(
	estimateRepo repository.EstimateRepository,
	invoiceRepo repository.InvoiceRepository,
	contractRepo repository.ContractRepository,
	contractorRepo repository.ContractorRepository,
	blobStorage storage.BlobStorage,
) *DocumentService {
	return &DocumentService{
		estimateRepo:   estimateRepo,
		invoiceRepo:    invoiceRepo,
		contractRepo:   contractRepo,
		contractorRepo: contractorRepo,
		assembler:      pdfgen.NewAssembler(),
		blobStorage:    blobStorage,
	}
}

// RenderedDocument is a generated PDF ready to serve
type RenderedDocument struct {
	Filename string
	Data     []byte
}

// RenderDocument renders the document of the given type and ID to PDF
func (s *DocumentService) RenderDocument(ctx context.Context, docType enum.DocumentType, id uuid.UUID) (*RenderedDocument, error) {
	var data []byte
	var err error

	switch docType {
	case enum.DocumentTypeEstimate:
		data, err = s.renderEstimate(ctx, id)
	case enum.DocumentTypeInvoice:
		data, err = s.renderInvoice(ctx, id)
	case enum.DocumentTypeContract:
		data, err = s.renderContract(ctx, id)
	default:
		return nil, apperror.NewBadRequestError("Unknown document type")
	}
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("%s-%s.pdf", docType, id)

	// Archive a copy in blob storage; a failure never blocks the download
	if s.blobStorage != nil {
		key := utils.GenerateDocumentKey(string(docType), id)
		if err := s.blobStorage.Upload(ctx, key, "application/pdf", data); err != nil {
			log.Printf("Warning: failed to archive %s: %v", key, err)
		}
	}

	return &RenderedDocument{Filename: filename, Data: data}, nil
}

func (s *DocumentService) renderEstimate(ctx context.Context, id uuid.UUID) ([]byte, error) {
	estimate, err := s.estimateRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if estimate == nil {
		return nil, apperror.NewNotFoundError("Estimate")
	}

	contractor, err := s.contractorRepo.GetByID(ctx, estimate.ContractorID)
	if err != nil {
		return nil, err
	}
	if contractor == nil {
		return nil, apperror.NewNotFoundError("Contractor")
	}

	items := make([]pdfgen.Item, 0, len(estimate.Items))
	for _, item := range estimate.Items {
		items = append(items, pdfgen.Item{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
		})
	}

	doc := pdfgen.EstimateDocument{
		Reference:  estimate.Reference,
		Date:       estimate.Date.Format(dateLayout),
		Contractor: contractorParty(contractor),
		Customer:   customerParty(estimate.Customer),
		Items:      items,
		Totals: pdfgen.Totals{
			Subtotal:  estimate.Subtotal,
			TaxRate:   estimate.TaxRate,
			TaxAmount: estimate.TaxAmount,
			Total:     estimate.Total,
		},
		JobDescription: deref(estimate.JobDescription),
		ScopeOfWork:    deref(estimate.ScopeOfWork),
		Terms:          deref(estimate.Terms),
	}

	return s.assembler.RenderEstimate(doc)
}

func (s *DocumentService) renderInvoice(ctx context.Context, id uuid.UUID) ([]byte, error) {
	invoice, err := s.invoiceRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	contractor, err := s.contractorRepo.GetByID(ctx, invoice.ContractorID)
	if err != nil {
		return nil, err
	}
	if contractor == nil {
		return nil, apperror.NewNotFoundError("Contractor")
	}

	items := make([]pdfgen.Item, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, pdfgen.Item{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
		})
	}

	dueDate := ""
	if invoice.DueDate != nil {
		dueDate = invoice.DueDate.Format(dateLayout)
	}

	doc := pdfgen.InvoiceDocument{
		Reference:  invoice.Reference,
		Date:       invoice.Date.Format(dateLayout),
		DueDate:    dueDate,
		Contractor: contractorParty(contractor),
		Customer:   customerParty(invoice.Customer),
		Items:      items,
		Totals: pdfgen.Totals{
			Subtotal:  invoice.Subtotal,
			TaxRate:   invoice.TaxRate,
			TaxAmount: invoice.TaxAmount,
			Total:     invoice.Total,
		},
		Notes: deref(invoice.Notes),
		Terms: deref(invoice.Terms),
	}

	return s.assembler.RenderInvoice(doc)
}

func (s *DocumentService) renderContract(ctx context.Context, id uuid.UUID) ([]byte, error) {
	contract, err := s.contractRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, apperror.NewNotFoundError("Contract")
	}

	contractor, err := s.contractorRepo.GetByID(ctx, contract.ContractorID)
	if err != nil {
		return nil, err
	}
	if contractor == nil {
		return nil, apperror.NewNotFoundError("Contractor")
	}

	doc := pdfgen.ContractDocument{
		Reference:      contract.Reference,
		Date:           contract.Date.Format(dateLayout),
		Contractor:     contractorParty(contractor),
		Customer:       customerParty(contract.Customer),
		Amount:         contract.Amount,
		JobDescription: deref(contract.JobDescription),
		ScopeOfWork:    deref(contract.ScopeOfWork),
		Terms:          deref(contract.Terms),
	}

	return s.assembler.RenderContract(doc)
}

func contractorParty(c *entity.Contractor) pdfgen.Party {
	return pdfgen.Party{
		Name:    deref(c.ContactName),
		Company: c.CompanyName,
		Address: deref(c.Address),
		Phone:   deref(c.Phone),
		Email:   deref(c.Email),
	}
}

func customerParty(c *entity.Customer) pdfgen.Party {
	if c == nil {
		return pdfgen.Party{}
	}
	return pdfgen.Party{
		Name:    c.Name,
		Company: deref(c.CompanyName),
		Address: deref(c.Address),
		Phone:   deref(c.Phone),
		Email:   deref(c.Email),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
