package repos_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/banglanlp/dialect-eval-backend/internal/data/repos"
	"github.com/banglanlp/dialect-eval-backend/internal/data/repos/testutil"
	"github.com/banglanlp/dialect-eval-backend/internal/domain"
)

func TestDialectPairRepoGetByDialect(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := repos.NewDialectPairRepo(db, testutil.Logger(t))

	testutil.SeedDialectPairs(t, ctx, db, domain.DialectSylheti, 3)
	testutil.SeedDialectPairs(t, ctx, db, domain.DialectRangpur, 2)

	got, err := repo.GetByDialect(ctx, nil, domain.DialectSylheti)
	if err != nil {
		t.Fatalf("GetByDialect: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 sylheti pairs, got %d", len(got))
	}
	for _, p := range got {
		if p.DialectName != domain.DialectSylheti {
			t.Fatalf("pair %s has dialect %q", p.ID, p.DialectName)
		}
	}

	count, err := repo.CountByDialect(ctx, nil, domain.DialectRangpur)
	if err != nil {
		t.Fatalf("CountByDialect: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 rangpur pairs, got %d", count)
	}
}

func TestDialectPairRepoGetByIDs(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := repos.NewDialectPairRepo(db, testutil.Logger(t))

	pairs := testutil.SeedDialectPairs(t, ctx, db, domain.DialectBarishal, 3)

	got, err := repo.GetByIDs(ctx, nil, []uuid.UUID{pairs[0].ID, pairs[2].ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(got))
	}

	got, err = repo.GetByIDs(ctx, nil, nil)
	if err != nil {
		t.Fatalf("GetByIDs with no ids: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no pairs for empty id list, got %d", len(got))
	}
}

func TestDialectPairDeleteCascadesToEvaluations(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	pairRepo := repos.NewDialectPairRepo(db, testutil.Logger(t))
	evalRepo := repos.NewDialectEvaluationRepo(db, testutil.Logger(t))

	pair := testutil.SeedDialectPair(t, ctx, db, domain.DialectChittagonian, "original", "generated")
	testutil.SeedDialectEvaluation(t, ctx, db, pair.ID, "rater@example.com", "session-1")

	if err := pairRepo.FullDeleteByIDs(ctx, nil, []uuid.UUID{pair.ID}); err != nil {
		t.Fatalf("FullDeleteByIDs: %v", err)
	}

	count, err := evalRepo.Count(ctx, nil)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected cascade delete to remove evaluations, %d remain", count)
	}
}
