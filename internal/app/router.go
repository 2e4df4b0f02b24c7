package app

import (
	"github.com/gin-gonic/gin"

	httpserver "github.com/banglanlp/dialect-eval-backend/internal/http"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return httpserver.NewRouter(httpserver.RouterConfig{
		Log:              log,
		SurveyHandler:    handlers.Survey,
		ExportHandler:    handlers.Export,
		StaffAuthHandler: handlers.StaffAuth,
		HealthHandler:    handlers.Health,
		StaffMiddleware:  middleware.Staff,
		ServiceName:      cfg.ServiceName,
	})
}
