package app

import (
	httpMW "github.com/banglanlp/dialect-eval-backend/internal/http/middleware"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
)

type Middleware struct {
	Staff *httpMW.StaffMiddleware
}

func wireMiddleware(log *logger.Logger, s Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Staff: httpMW.NewStaffMiddleware(log, s.StaffAuth),
	}
}
