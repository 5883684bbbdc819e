package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/entity"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/enum"
	domainRepo "github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *gorm.DB) domainRepo.ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) Create(ctx context.Context, contract *entity.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *contractRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	var contract entity.Contract
	err := r.db.WithContext(ctx).
		Scopes(ContractorScope(ctx)).
		Preload("Customer").
		First(&contract, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &contract, err
}

func (r *contractRepository) GetByReference(ctx context.Context, reference string) (*entity.Contract, error) {
	var contract entity.Contract
	err := r.db.WithContext(ctx).
		Scopes(ContractorScope(ctx)).
		First(&contract, "reference = ?", reference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &contract, err
}

func (r *contractRepository) Update(ctx context.Context, contract *entity.Contract) error {
	return r.db.WithContext(ctx).Save(contract).Error
}

func (r *contractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(ContractorScope(ctx)).
		Delete(&entity.Contract{}, "id = ?", id).Error
}

func (r *contractRepository) List(ctx context.Context, params *domainRepo.ContractFilterParams) ([]entity.Contract, int64, error) {
	var contracts []entity.Contract
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Contract{}).
		Scopes(ContractorScope(ctx))

	if params.Search != "" {
		query = query.Joins("LEFT JOIN customers ON customers.id = contracts.customer_id").
			Where("contracts.reference ILIKE ? OR customers.name ILIKE ?",
				"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("contracts.status = ?", *params.Status)
	}

	if params.CustomerID != nil {
		query = query.Where("contracts.customer_id = ?", *params.CustomerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "contracts.created_at"
	sortOrder := "DESC"
	switch params.SortBy {
	case "date":
		sortBy = "contracts.date"
	case "reference":
		sortBy = "contracts.reference"
	case "amount":
		sortBy = "contracts.amount"
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order(sortBy + " " + sortOrder).
		Find(&contracts).Error

	return contracts, total, err
}

func (r *contractRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	var contract entity.Contract
	err := r.db.WithContext(ctx).
		Scopes(ContractorScope(ctx)).
		Preload("Customer").
		Preload("Estimate").
		First(&contract, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &contract, err
}

func (r *contractRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ContractStatus) error {
	updates := map[string]interface{}{"status": status}
	if status == enum.ContractStatusSigned {
		updates["signed_at"] = time.Now()
	}
	return r.db.WithContext(ctx).Model(&entity.Contract{}).
		Scopes(ContractorScope(ctx)).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *contractRepository) GetNextReferenceNumber(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Contract{}).
		Scopes(ContractorScope(ctx)).
		Count(&count).Error
	return int(count) + 1, err
}
