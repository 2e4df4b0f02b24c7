package services_test

import (
	"testing"

	"gorm.io/gorm"

	"github.com/banglanlp/dialect-eval-backend/internal/data/repos"
	"github.com/banglanlp/dialect-eval-backend/internal/data/repos/testutil"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
)

type testFixtures struct {
	db  *gorm.DB
	log *logger.Logger

	pairs       repos.DialectPairRepo
	items       repos.PlausibilityItemRepo
	dialectEval repos.DialectEvaluationRepo
	plausEval   repos.PlausibilityEvaluationRepo
	submissions repos.SubmissionRepo
	staff       repos.StaffUserRepo
}

func newFixtures(t *testing.T) *testFixtures {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	return &testFixtures{
		db:          db,
		log:         log,
		pairs:       repos.NewDialectPairRepo(db, log),
		items:       repos.NewPlausibilityItemRepo(db, log),
		dialectEval: repos.NewDialectEvaluationRepo(db, log),
		plausEval:   repos.NewPlausibilityEvaluationRepo(db, log),
		submissions: repos.NewSubmissionRepo(db, log),
		staff:       repos.NewStaffUserRepo(db, log),
	}
}
