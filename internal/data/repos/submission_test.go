package repos_test

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/banglanlp/dialect-eval-backend/internal/data/repos"
	"github.com/banglanlp/dialect-eval-backend/internal/data/repos/testutil"
	"github.com/banglanlp/dialect-eval-backend/internal/domain"
)

func TestSubmissionRepoRejectsDuplicateEmail(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := repos.NewSubmissionRepo(db, testutil.Logger(t))

	if _, err := repo.Create(ctx, nil, &domain.Submission{
		SessionID:      "session-1",
		EvaluatorEmail: "rater@example.com",
	}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := repo.Create(ctx, nil, &domain.Submission{
		SessionID:      "session-2",
		EvaluatorEmail: "rater@example.com",
	})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
}

func TestSubmissionRepoAllowsRepeatedAnonymous(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := repos.NewSubmissionRepo(db, testutil.Logger(t))

	for i, session := range []string{"session-1", "session-2"} {
		if _, err := repo.Create(ctx, nil, &domain.Submission{SessionID: session}); err != nil {
			t.Fatalf("anonymous create %d: %v", i, err)
		}
	}

	count, err := repo.CountByEmail(ctx, nil, "rater@example.com")
	if err != nil {
		t.Fatalf("CountByEmail: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows for unused email, got %d", count)
	}
}
