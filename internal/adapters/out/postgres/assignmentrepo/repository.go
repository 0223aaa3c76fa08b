package assignmentrepo

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
// The ledger is append-only: the repository deliberately offers no update
// or delete operations.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM ledger repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a new entry to the ledger.
func (r *GormAssignmentRepository) Add(ctx context.Context, entry *assignment.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// GetAll retrieves the full ledger in insertion order.
func (r *GormAssignmentRepository) GetAll(ctx context.Context) ([]*assignment.Entry, error) {
	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Order("seq ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetRecent retrieves the latest entries, newest first, capped at limit.
func (r *GormAssignmentRepository) GetRecent(ctx context.Context, limit int) ([]*assignment.Entry, error) {
	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Order("seq DESC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []EntryDTO) ([]*assignment.Entry, error) {
	entries := make([]*assignment.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
