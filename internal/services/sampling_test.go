package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/banglanlp/dialect-eval-backend/internal/data/repos"
	"github.com/banglanlp/dialect-eval-backend/internal/data/repos/testutil"
	"github.com/banglanlp/dialect-eval-backend/internal/domain"
	"github.com/banglanlp/dialect-eval-backend/internal/services"
)

func newSamplingService(t *testing.T) (services.SamplingService, *testFixtures) {
	t.Helper()
	f := newFixtures(t)
	svc := services.NewSamplingService(f.db, f.log,
		repos.NewDialectPairRepo(f.db, f.log),
		repos.NewPlausibilityItemRepo(f.db, f.log))
	return svc, f
}

func TestSampleDialectReturnsExactlyTen(t *testing.T) {
	svc, f := newSamplingService(t)
	ctx := context.Background()

	testutil.SeedDialectPairs(t, ctx, f.db, domain.DialectSylheti, 25)
	testutil.SeedDialectPairs(t, ctx, f.db, domain.DialectRangpur, 25)

	got, err := svc.SampleDialect(ctx, domain.DialectSylheti)
	if err != nil {
		t.Fatalf("SampleDialect: %v", err)
	}
	if len(got) != services.SampleSize {
		t.Fatalf("expected %d pairs, got %d", services.SampleSize, len(got))
	}

	seen := map[uuid.UUID]struct{}{}
	for _, p := range got {
		if p.DialectName != domain.DialectSylheti {
			t.Fatalf("sampled pair from wrong dialect: %s", p.DialectName)
		}
		if _, dup := seen[p.ID]; dup {
			t.Fatalf("pair %s sampled twice", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
}

func TestSampleDialectRequiresTenItems(t *testing.T) {
	svc, f := newSamplingService(t)
	ctx := context.Background()

	testutil.SeedDialectPairs(t, ctx, f.db, domain.DialectNoakhali, services.SampleSize-1)

	if _, err := svc.SampleDialect(ctx, domain.DialectNoakhali); !errors.Is(err, services.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestSampleDialectRejectsMissingDialect(t *testing.T) {
	svc, _ := newSamplingService(t)

	if _, err := svc.SampleDialect(context.Background(), "  "); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSamplePlausibilityCapsAtAvailable(t *testing.T) {
	svc, f := newSamplingService(t)
	ctx := context.Background()

	testutil.SeedPlausibilityItems(t, ctx, f.db, 4)

	got, err := svc.SamplePlausibility(ctx)
	if err != nil {
		t.Fatalf("SamplePlausibility: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected all 4 items, got %d", len(got))
	}
}

func TestSamplePlausibilityReturnsTenWhenPlentiful(t *testing.T) {
	svc, f := newSamplingService(t)
	ctx := context.Background()

	testutil.SeedPlausibilityItems(t, ctx, f.db, 30)

	got, err := svc.SamplePlausibility(ctx)
	if err != nil {
		t.Fatalf("SamplePlausibility: %v", err)
	}
	if len(got) != services.SampleSize {
		t.Fatalf("expected %d items, got %d", services.SampleSize, len(got))
	}
}

func TestSamplePlausibilityEmptyTable(t *testing.T) {
	svc, _ := newSamplingService(t)

	if _, err := svc.SamplePlausibility(context.Background()); !errors.Is(err, services.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}
