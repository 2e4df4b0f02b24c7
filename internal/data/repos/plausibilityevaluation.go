package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/banglanlp/dialect-eval-backend/internal/domain"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
)

type PlausibilityEvaluationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, evals []*domain.PlausibilityEvaluation) ([]*domain.PlausibilityEvaluation, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.PlausibilityEvaluation, error)
	GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID string) ([]*domain.PlausibilityEvaluation, error)
	CountByEmail(ctx context.Context, tx *gorm.DB, email string) (int64, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type plausibilityEvaluationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlausibilityEvaluationRepo(db *gorm.DB, baseLog *logger.Logger) PlausibilityEvaluationRepo {
	return &plausibilityEvaluationRepo{db: db, log: baseLog.With("repo", "PlausibilityEvaluationRepo")}
}

func (r *plausibilityEvaluationRepo) Create(ctx context.Context, tx *gorm.DB, evals []*domain.PlausibilityEvaluation) ([]*domain.PlausibilityEvaluation, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(evals) == 0 {
		return []*domain.PlausibilityEvaluation{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&evals).Error; err != nil {
		return nil, err
	}
	return evals, nil
}

func (r *plausibilityEvaluationRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.PlausibilityEvaluation, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.PlausibilityEvaluation
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *plausibilityEvaluationRepo) GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID string) ([]*domain.PlausibilityEvaluation, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.PlausibilityEvaluation
	if err := transaction.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *plausibilityEvaluationRepo) CountByEmail(ctx context.Context, tx *gorm.DB, email string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.PlausibilityEvaluation{}).
		Where("evaluator_email = ?", email).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *plausibilityEvaluationRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.PlausibilityEvaluation{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
