package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/banglanlp/dialect-eval-backend/internal/domain"
)

func SeedDialectPair(tb testing.TB, ctx context.Context, tx *gorm.DB, dialect, original, generated string) *domain.DialectPair {
	tb.Helper()
	p := &domain.DialectPair{
		ID:                     uuid.New(),
		DialectName:            dialect,
		OriginalStandardText:   original,
		AIGeneratedDialectText: generated,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed dialect pair: %v", err)
	}
	return p
}

// SeedDialectPairs inserts n generated pairs for one dialect.
func SeedDialectPairs(tb testing.TB, ctx context.Context, tx *gorm.DB, dialect string, n int) []*domain.DialectPair {
	tb.Helper()
	pairs := make([]*domain.DialectPair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, SeedDialectPair(tb, ctx, tx, dialect,
			fmt.Sprintf("original %s %d", dialect, i),
			fmt.Sprintf("generated %s %d", dialect, i)))
	}
	return pairs
}

func SeedPlausibilityItem(tb testing.TB, ctx context.Context, tx *gorm.DB, question string) *domain.PlausibilityItem {
	tb.Helper()
	item := &domain.PlausibilityItem{
		ID:            uuid.New(),
		Question:      question,
		CorrectAnswer: "correct",
		WrongOption1:  "wrong one",
		WrongOption2:  "wrong two",
		WrongOption3:  "wrong three",
	}
	if err := tx.WithContext(ctx).Create(item).Error; err != nil {
		tb.Fatalf("seed plausibility item: %v", err)
	}
	return item
}

func SeedPlausibilityItems(tb testing.TB, ctx context.Context, tx *gorm.DB, n int) []*domain.PlausibilityItem {
	tb.Helper()
	items := make([]*domain.PlausibilityItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, SeedPlausibilityItem(tb, ctx, tx, fmt.Sprintf("question %d", i)))
	}
	return items
}

func SeedDialectEvaluation(tb testing.TB, ctx context.Context, tx *gorm.DB, pairID uuid.UUID, email, sessionID string) *domain.DialectEvaluation {
	tb.Helper()
	e := &domain.DialectEvaluation{
		ID:                uuid.New(),
		DialectPairID:     pairID,
		EvaluatorEmail:    email,
		AccuracyRating:    3,
		NaturalnessRating: 3,
		SessionID:         sessionID,
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed dialect evaluation: %v", err)
	}
	return e
}

func SeedStaffUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email, password string) *domain.StaffUser {
	tb.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		tb.Fatalf("hash staff password: %v", err)
	}
	u := &domain.StaffUser{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hash),
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed staff user: %v", err)
	}
	return u
}
