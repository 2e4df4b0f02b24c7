package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/banglanlp/dialect-eval-backend/internal/http/response"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/ctxutil"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
	"github.com/banglanlp/dialect-eval-backend/internal/services"
)

type ExportHandler struct {
	log    *logger.Logger
	export services.ExportService
}

func NewExportHandler(log *logger.Logger, export services.ExportService) *ExportHandler {
	return &ExportHandler{log: log.With("handler", "ExportHandler"), export: export}
}

// GET /export/            — export page
// GET /export/?type=K     — JSON file attachment
// Both run behind RequireStaff.
func (h *ExportHandler) Export(c *gin.Context) {
	kind := strings.TrimSpace(c.Query("type"))
	if kind == "" {
		sd := ctxutil.GetStaff(c.Request.Context())
		email := ""
		if sd != nil {
			email = sd.Email
		}
		c.HTML(http.StatusOK, "export.html", gin.H{
			"StaffEmail": email,
			"Kinds": []string{
				services.ExportDialectData,
				services.ExportPlausibilityData,
				services.ExportDialectEvaluations,
				services.ExportPlausibilityEvaluations,
				services.ExportAll,
			},
		})
		return
	}

	filename, payload, err := h.export.Export(c.Request.Context(), kind)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", payload)
}
