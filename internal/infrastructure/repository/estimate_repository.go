package repository

import (
	"context"
	"errors"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/entity"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/enum"
	domainRepo "github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type estimateRepository struct {
	db *gorm.DB
}

// NewEstimateRepository creates a new estimate repository
func NewEstimateRepository(db *gorm.DB) domainRepo.EstimateRepository {
	return &estimateRepository{db: db}
}

func (r *estimateRepository) Create(ctx context.Context, estimate *entity.Estimate) error {
	return r.db.WithContext(ctx).Create(estimate).Error
}

func (r *estimateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Estimate, error) {
	var estimate entity.Estimate
	err := r.db.WithContext(ctx).
		Scopes(ContractorScope(ctx)).
		Preload("Customer").
		First(&estimate, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &estimate, err
}

func (r *estimateRepository) GetByReference(ctx context.Context, reference string) (*entity.Estimate, error) {
	var estimate entity.Estimate
	err := r.db.WithContext(ctx).
		Scopes(ContractorScope(ctx)).
		First(&estimate, "reference = ?", reference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &estimate, err
}

func (r *estimateRepository) Update(ctx context.Context, estimate *entity.Estimate) error {
	return r.db.WithContext(ctx).Save(estimate).Error
}

func (r *estimateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(ContractorScope(ctx)).
		Delete(&entity.Estimate{}, "id = ?", id).Error
}

func (r *estimateRepository) List(ctx context.Context, params *domainRepo.EstimateFilterParams) ([]entity.Estimate, int64, error) {
	var estimates []entity.Estimate
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Estimate{}).
		Scopes(ContractorScope(ctx))

	if params.Search != "" {
		query = query.Joins("LEFT JOIN customers ON customers.id = estimates.customer_id").
			Where("estimates.reference ILIKE ? OR customers.name ILIKE ?",
				"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("estimates.status = ?", *params.Status)
	}

	if params.CustomerID != nil {
		query = query.Where("estimates.customer_id = ?", *params.CustomerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "estimates.created_at"
	sortOrder := "DESC"
	switch params.SortBy {
	case "date":
		sortBy = "estimates.date"
	case "reference":
		sortBy = "estimates.reference"
	case "total":
		sortBy = "estimates.total"
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order(sortBy + " " + sortOrder).
		Find(&estimates).Error

	return estimates, total, err
}

func (r *estimateRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Estimate, error) {
	var estimate entity.Estimate
	err := r.db.WithContext(ctx).
		Scopes(ContractorScope(ctx)).
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("estimate_items.position ASC")
		}).
		First(&estimate, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &estimate, err
}

func (r *estimateRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.EstimateStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Estimate{}).
		Scopes(ContractorScope(ctx)).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *estimateRepository) GetNextReferenceNumber(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Estimate{}).
		Scopes(ContractorScope(ctx)).
		Count(&count).Error
	return int(count) + 1, err
}

type estimateItemRepository struct {
	db *gorm.DB
}

// NewEstimateItemRepository creates a new estimate item repository
func NewEstimateItemRepository(db *gorm.DB) domainRepo.EstimateItemRepository {
	return &estimateItemRepository{db: db}
}

func (r *estimateItemRepository) Create(ctx context.Context, item *entity.EstimateItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *estimateItemRepository) CreateBatch(ctx context.Context, items []entity.EstimateItem) error {
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *estimateItemRepository) GetByEstimateID(ctx context.Context, estimateID uuid.UUID) ([]entity.EstimateItem, error) {
	var items []entity.EstimateItem
	err := r.db.WithContext(ctx).
		Where("estimate_id = ?", estimateID).
		Order("position ASC").
		Find(&items).Error
	return items, err
}

func (r *estimateItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.EstimateItem{}, "id = ?", id).Error
}

func (r *estimateItemRepository) DeleteByEstimateID(ctx context.Context, estimateID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.EstimateItem{}, "estimate_id = ?", estimateID).Error
}
