package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/banglanlp/dialect-eval-backend/internal/domain"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
)

type DialectPairRepo interface {
	Create(ctx context.Context, tx *gorm.DB, pairs []*domain.DialectPair) ([]*domain.DialectPair, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.DialectPair, error)
	GetByDialect(ctx context.Context, tx *gorm.DB, dialect string) ([]*domain.DialectPair, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.DialectPair, error)
	CountByDialect(ctx context.Context, tx *gorm.DB, dialect string) (int64, error)
	FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type dialectPairRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDialectPairRepo(db *gorm.DB, baseLog *logger.Logger) DialectPairRepo {
	return &dialectPairRepo{db: db, log: baseLog.With("repo", "DialectPairRepo")}
}

func (r *dialectPairRepo) Create(ctx context.Context, tx *gorm.DB, pairs []*domain.DialectPair) ([]*domain.DialectPair, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(pairs) == 0 {
		return []*domain.DialectPair{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&pairs).Error; err != nil {
		return nil, err
	}
	return pairs, nil
}

func (r *dialectPairRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.DialectPair, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.DialectPair
	if err := transaction.WithContext(ctx).
		Order("dialect_name, created_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *dialectPairRepo) GetByDialect(ctx context.Context, tx *gorm.DB, dialect string) ([]*domain.DialectPair, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.DialectPair
	if err := transaction.WithContext(ctx).
		Where("dialect_name = ?", dialect).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *dialectPairRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.DialectPair, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.DialectPair
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

func (r *dialectPairRepo) CountByDialect(ctx context.Context, tx *gorm.DB, dialect string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.DialectPair{}).
		Where("dialect_name = ?", dialect).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *dialectPairRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(ids) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&domain.DialectPair{}).Error; err != nil {
		return err
	}
	return nil
}
