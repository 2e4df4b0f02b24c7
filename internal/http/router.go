package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/banglanlp/dialect-eval-backend/internal/http/handlers"
	httpMW "github.com/banglanlp/dialect-eval-backend/internal/http/middleware"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
	"github.com/banglanlp/dialect-eval-backend/internal/web"
)

type RouterConfig struct {
	Log *logger.Logger

	SurveyHandler    *httpH.SurveyHandler
	ExportHandler    *httpH.ExportHandler
	StaffAuthHandler *httpH.StaffAuthHandler
	HealthHandler    *httpH.HealthHandler

	StaffMiddleware *httpMW.StaffMiddleware

	ServiceName string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.CORS())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))

	r.SetHTMLTemplate(web.Templates())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Survey pages
	if cfg.SurveyHandler != nil {
		r.GET("/", cfg.SurveyHandler.Home)
		r.GET("/thank-you/", cfg.SurveyHandler.ThankYou)
	}

	api := r.Group("/api")
	{
		// Survey data + submission (public)
		if cfg.SurveyHandler != nil {
			api.GET("/get-dialect-data/", cfg.SurveyHandler.GetDialectData)
			api.GET("/get-plausibility-data/", cfg.SurveyHandler.GetPlausibilityData)
			api.POST("/submit-evaluation/", cfg.SurveyHandler.SubmitEvaluation)
		}

		// Staff auth
		if cfg.StaffAuthHandler != nil {
			api.POST("/staff/login", cfg.StaffAuthHandler.Login)
			api.POST("/staff/logout", cfg.StaffAuthHandler.Logout)
		}
	}

	// Export (staff only)
	export := r.Group("/export")
	{
		if cfg.StaffMiddleware != nil {
			export.Use(cfg.StaffMiddleware.RequireStaff())
		}
		if cfg.ExportHandler != nil {
			export.GET("/", cfg.ExportHandler.Export)
		}
	}

	return r
}
