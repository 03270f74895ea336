package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/salepointhq/salepoint-api/internal/domain/entity"
	domainRepo "github.com/salepointhq/salepoint-api/internal/domain/repository"
)

type cartSnapshotRepository struct {
	db *gorm.DB
}

// NewCartSnapshotRepository creates a new cart snapshot repository
func NewCartSnapshotRepository(db *gorm.DB) domainRepo.CartSnapshotRepository {
	return &cartSnapshotRepository{db: db}
}

// Save upserts the session's slot, replacing any previous payload.
func (r *cartSnapshotRepository) Save(ctx context.Context, snapshot *entity.CartSnapshot) error {
	snapshot.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "discount_mode", "updated_at"}),
		}).
		Create(snapshot).Error
}

func (r *cartSnapshotRepository) Get(ctx context.Context, sessionID string) (*entity.CartSnapshot, error) {
	var snapshot entity.CartSnapshot
	err := r.db.WithContext(ctx).First(&snapshot, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *cartSnapshotRepository) Delete(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).
		Delete(&entity.CartSnapshot{}, "session_id = ?", sessionID).Error
}
