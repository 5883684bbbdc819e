package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

const (
	// ContractorIDKey is the context key for contractor ID
	ContractorIDKey ctxKey = "contractor_id"
	// SkipContractorScopeKey is the context key for skipping contractor scope (super admin)
	SkipContractorScopeKey ctxKey = "skip_contractor_scope"
)

// ContractorScope returns a GORM scope that filters by contractor
// This should be applied to all queries for contractor-scoped entities
// If SkipContractorScopeKey is true in context (super admin), returns all records
func ContractorScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		// Check if contractor scope should be skipped (super admin)
		if skipScope, ok := ctx.Value(SkipContractorScopeKey).(bool); ok && skipScope {
			return db
		}

		contractorID, ok := ctx.Value(ContractorIDKey).(uuid.UUID)
		if !ok {
			// Fail-safe: return no results if contractor context missing
			// This prevents accidental cross-contractor data access
			return db.Where("1 = 0")
		}
		return db.Where("contractor_id = ?", contractorID)
	}
}

// WithSkipContractorScope adds skip contractor scope flag to context (for super admins)
func WithSkipContractorScope(ctx context.Context, skip bool) context.Context {
	return context.WithValue(ctx, SkipContractorScopeKey, skip)
}

// WithContractor adds contractor ID to context
func WithContractor(ctx context.Context, contractorID uuid.UUID) context.Context {
	return context.WithValue(ctx, ContractorIDKey, contractorID)
}

// GetContractorID extracts contractor ID from context
func GetContractorID(ctx context.Context) (uuid.UUID, bool) {
	contractorID, ok := ctx.Value(ContractorIDKey).(uuid.UUID)
	return contractorID, ok
}
