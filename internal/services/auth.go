package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/banglanlp/dialect-eval-backend/internal/data/repos"
	"github.com/banglanlp/dialect-eval-backend/internal/domain"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
)

// StaffAuthService authenticates the staff principals allowed to reach
// the export surface. Tokens are short-lived HS256 JWTs with the staff
// user id as subject.
type StaffAuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*domain.StaffUser, error)
	CreateStaff(ctx context.Context, email, password string) (*domain.StaffUser, error)
}

type staffAuthService struct {
	db           *gorm.DB
	log          *logger.Logger
	staffRepo    repos.StaffUserRepo
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewStaffAuthService(
	db *gorm.DB,
	log *logger.Logger,
	staffRepo repos.StaffUserRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
) StaffAuthService {
	return &staffAuthService{
		db:           db,
		log:          log.With("service", "StaffAuthService"),
		staffRepo:    staffRepo,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

func (s *staffAuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.staffRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return "", fmt.Errorf("load staff user: %w", err)
	}
	if user == nil {
		return "", fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecretKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	s.log.Info("Staff login", "staff_id", user.ID, "email", user.Email)
	return token, nil
}

func (s *staffAuthService) ValidateToken(ctx context.Context, tokenString string) (*domain.StaffUser, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.jwtSecretKey), nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, fmt.Errorf("%w: malformed token claims", ErrUnauthorized)
	}
	staffID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed token subject", ErrUnauthorized)
	}

	user, err := s.staffRepo.GetByID(ctx, nil, staffID)
	if err != nil {
		return nil, fmt.Errorf("load staff user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: staff user no longer exists", ErrUnauthorized)
	}
	return user, nil
}

func (s *staffAuthService) CreateStaff(ctx context.Context, email, password string) (*domain.StaffUser, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := s.staffRepo.Create(ctx, nil, &domain.StaffUser{
		Email:    email,
		Password: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("create staff user: %w", err)
	}
	return user, nil
}
