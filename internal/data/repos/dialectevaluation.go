package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/banglanlp/dialect-eval-backend/internal/domain"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
)

type DialectEvaluationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, evals []*domain.DialectEvaluation) ([]*domain.DialectEvaluation, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.DialectEvaluation, error)
	GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID string) ([]*domain.DialectEvaluation, error)
	CountByEmail(ctx context.Context, tx *gorm.DB, email string) (int64, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type dialectEvaluationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDialectEvaluationRepo(db *gorm.DB, baseLog *logger.Logger) DialectEvaluationRepo {
	return &dialectEvaluationRepo{db: db, log: baseLog.With("repo", "DialectEvaluationRepo")}
}

func (r *dialectEvaluationRepo) Create(ctx context.Context, tx *gorm.DB, evals []*domain.DialectEvaluation) ([]*domain.DialectEvaluation, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(evals) == 0 {
		return []*domain.DialectEvaluation{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&evals).Error; err != nil {
		return nil, err
	}
	return evals, nil
}

func (r *dialectEvaluationRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.DialectEvaluation, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.DialectEvaluation
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *dialectEvaluationRepo) GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID string) ([]*domain.DialectEvaluation, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.DialectEvaluation
	if err := transaction.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *dialectEvaluationRepo) CountByEmail(ctx context.Context, tx *gorm.DB, email string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.DialectEvaluation{}).
		Where("evaluator_email = ?", email).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *dialectEvaluationRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.DialectEvaluation{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
