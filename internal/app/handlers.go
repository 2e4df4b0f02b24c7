package app

import (
	httpH "github.com/banglanlp/dialect-eval-backend/internal/http/handlers"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
)

type Handlers struct {
	Survey    *httpH.SurveyHandler
	Export    *httpH.ExportHandler
	StaffAuth *httpH.StaffAuthHandler
	Health    *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, cfg Config, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Survey:    httpH.NewSurveyHandler(log, s.Sampling, s.Submission),
		Export:    httpH.NewExportHandler(log, s.Export),
		StaffAuth: httpH.NewStaffAuthHandler(log, s.StaffAuth, int(cfg.AccessTokenTTL.Seconds())),
		Health:    httpH.NewHealthHandler(),
	}
}
