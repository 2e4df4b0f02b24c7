package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/banglanlp/dialect-eval-backend/internal/domain"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
)

type StaffUserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, user *domain.StaffUser) (*domain.StaffUser, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*domain.StaffUser, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.StaffUser, error)
}

type staffUserRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStaffUserRepo(db *gorm.DB, baseLog *logger.Logger) StaffUserRepo {
	return &staffUserRepo{db: db, log: baseLog.With("repo", "StaffUserRepo")}
}

func (r *staffUserRepo) Create(ctx context.Context, tx *gorm.DB, user *domain.StaffUser) (*domain.StaffUser, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *staffUserRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*domain.StaffUser, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var user domain.StaffUser
	err := transaction.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *staffUserRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.StaffUser, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var user domain.StaffUser
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
