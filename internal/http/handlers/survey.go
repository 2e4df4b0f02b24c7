package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/banglanlp/dialect-eval-backend/internal/domain"
	"github.com/banglanlp/dialect-eval-backend/internal/http/response"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
	"github.com/banglanlp/dialect-eval-backend/internal/services"
)

type SurveyHandler struct {
	log        *logger.Logger
	sampling   services.SamplingService
	submission services.SubmissionService
}

func NewSurveyHandler(log *logger.Logger, sampling services.SamplingService, submission services.SubmissionService) *SurveyHandler {
	return &SurveyHandler{
		log:        log.With("handler", "SurveyHandler"),
		sampling:   sampling,
		submission: submission,
	}
}

// GET /
func (h *SurveyHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Dialects": domain.KnownDialects(),
	})
}

// GET /thank-you/
func (h *SurveyHandler) ThankYou(c *gin.Context) {
	c.HTML(http.StatusOK, "thank_you.html", nil)
}

// GET /api/get-dialect-data/?dialect=X
func (h *SurveyHandler) GetDialectData(c *gin.Context) {
	pairs, err := h.sampling.SampleDialect(c.Request.Context(), c.Query("dialect"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}
	response.Data(c, pairs)
}

// GET /api/get-plausibility-data/
func (h *SurveyHandler) GetPlausibilityData(c *gin.Context) {
	items, err := h.sampling.SamplePlausibility(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}
	response.Data(c, items)
}

// POST /api/submit-evaluation/
// The whole form posts as one batch; any failure rejects the batch.
func (h *SurveyHandler) SubmitEvaluation(c *gin.Context) {
	var req services.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result, err := h.submission.Submit(c.Request.Context(), req)
	if err != nil {
		h.log.Warn("Submission rejected", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    result.Message,
		"session_id": result.SessionID,
	})
}
