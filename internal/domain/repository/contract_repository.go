package repository

import (
	"context"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/entity"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/enum"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// ContractRepository defines the interface for contract data operations
type ContractRepository interface {
	Create(ctx context.Context, contract *entity.Contract) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error)
	GetByReference(ctx context.Context, reference string) (*entity.Contract, error)
	Update(ctx context.Context, contract *entity.Contract) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ContractFilterParams) ([]entity.Contract, int64, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Contract, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ContractStatus) error
	GetNextReferenceNumber(ctx context.Context) (int, error)
}

// ContractFilterParams contains filtering parameters for contract queries
type ContractFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.ContractStatus
	CustomerID *uuid.UUID
	SortBy     string
	SortOrder  string
}
