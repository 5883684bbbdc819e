package repository

import (
	"context"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/entity"
	"github.com/google/uuid"
)

// ContractorRepository defines the interface for contractor data operations
type ContractorRepository interface {
	Create(ctx context.Context, contractor *entity.Contractor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contractor, error)
	Update(ctx context.Context, contractor *entity.Contractor) error
	Delete(ctx context.Context, id uuid.UUID) error
}
