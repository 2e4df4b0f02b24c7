package app

import (
	"gorm.io/gorm"

	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
	"github.com/banglanlp/dialect-eval-backend/internal/services"
)

type Services struct {
	Sampling   services.SamplingService
	Submission services.SubmissionService
	Export     services.ExportService
	StaffAuth  services.StaffAuthService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Sampling:   services.NewSamplingService(db, log, r.DialectPair, r.PlausibilityItem),
		Submission: services.NewSubmissionService(db, log, r.DialectPair, r.PlausibilityItem, r.DialectEvaluation, r.PlausibilityEvaluation, r.Submission),
		Export:     services.NewExportService(db, log, r.DialectPair, r.PlausibilityItem, r.DialectEvaluation, r.PlausibilityEvaluation),
		StaffAuth:  services.NewStaffAuthService(db, log, r.StaffUser, cfg.JWTSecretKey, cfg.AccessTokenTTL),
	}
}
