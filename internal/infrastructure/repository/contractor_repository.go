package repository

import (
	"context"
	"errors"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/entity"
	domainRepo "github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contractorRepository struct {
	db *gorm.DB
}

// NewContractorRepository creates a new contractor repository
func NewContractorRepository(db *gorm.DB) domainRepo.ContractorRepository {
	return &contractorRepository{db: db}
}

func (r *contractorRepository) Create(ctx context.Context, contractor *entity.Contractor) error {
	return r.db.WithContext(ctx).Create(contractor).Error
}

func (r *contractorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contractor, error) {
	var contractor entity.Contractor
	err := r.db.WithContext(ctx).First(&contractor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &contractor, err
}

func (r *contractorRepository) Update(ctx context.Context, contractor *entity.Contractor) error {
	return r.db.WithContext(ctx).Save(contractor).Error
}

func (r *contractorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Contractor{}, "id = ?", id).Error
}
