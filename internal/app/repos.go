package app

import (
	"gorm.io/gorm"

	"github.com/banglanlp/dialect-eval-backend/internal/data/repos"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
)

type Repos struct {
	DialectPair            repos.DialectPairRepo
	PlausibilityItem       repos.PlausibilityItemRepo
	DialectEvaluation      repos.DialectEvaluationRepo
	PlausibilityEvaluation repos.PlausibilityEvaluationRepo
	Submission             repos.SubmissionRepo
	StaffUser              repos.StaffUserRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		DialectPair:            repos.NewDialectPairRepo(db, log),
		PlausibilityItem:       repos.NewPlausibilityItemRepo(db, log),
		DialectEvaluation:      repos.NewDialectEvaluationRepo(db, log),
		PlausibilityEvaluation: repos.NewPlausibilityEvaluationRepo(db, log),
		Submission:             repos.NewSubmissionRepo(db, log),
		StaffUser:              repos.NewStaffUserRepo(db, log),
	}
}
