package repository

import (
	"context"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/entity"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/enum"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// EstimateRepository defines the interface for estimate data operations
type EstimateRepository interface {
	Create(ctx context.Context, estimate *entity.Estimate) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Estimate, error)
	GetByReference(ctx context.Context, reference string) (*entity.Estimate, error)
	Update(ctx context.Context, estimate *entity.Estimate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *EstimateFilterParams) ([]entity.Estimate, int64, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Estimate, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.EstimateStatus) error
	GetNextReferenceNumber(ctx context.Context) (int, error)
}

// EstimateFilterParams contains filtering parameters for estimate queries
type EstimateFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.EstimateStatus
	CustomerID *uuid.UUID
	SortBy     string
	SortOrder  string
}

// EstimateItemRepository defines the interface for estimate line item operations
type EstimateItemRepository interface {
	Create(ctx context.Context, item *entity.EstimateItem) error
	CreateBatch(ctx context.Context, items []entity.EstimateItem) error
	GetByEstimateID(ctx context.Context, estimateID uuid.UUID) ([]entity.EstimateItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByEstimateID(ctx context.Context, estimateID uuid.UUID) error
}
