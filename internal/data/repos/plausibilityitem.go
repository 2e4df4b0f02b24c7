package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/banglanlp/dialect-eval-backend/internal/domain"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
)

type PlausibilityItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, items []*domain.PlausibilityItem) ([]*domain.PlausibilityItem, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.PlausibilityItem, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.PlausibilityItem, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type plausibilityItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlausibilityItemRepo(db *gorm.DB, baseLog *logger.Logger) PlausibilityItemRepo {
	return &plausibilityItemRepo{db: db, log: baseLog.With("repo", "PlausibilityItemRepo")}
}

func (r *plausibilityItemRepo) Create(ctx context.Context, tx *gorm.DB, items []*domain.PlausibilityItem) ([]*domain.PlausibilityItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(items) == 0 {
		return []*domain.PlausibilityItem{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *plausibilityItemRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.PlausibilityItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.PlausibilityItem
	if err := transaction.WithContext(ctx).
		Order("created_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *plausibilityItemRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.PlausibilityItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.PlausibilityItem
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *plausibilityItemRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.PlausibilityItem{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *plausibilityItemRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(ids) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&domain.PlausibilityItem{}).Error; err != nil {
		return err
	}
	return nil
}
