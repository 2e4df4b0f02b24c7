package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/banglanlp/dialect-eval-backend/internal/http/middleware"
	"github.com/banglanlp/dialect-eval-backend/internal/http/response"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
	"github.com/banglanlp/dialect-eval-backend/internal/services"
)

type StaffAuthHandler struct {
	log         *logger.Logger
	authService services.StaffAuthService
	cookieTTL   int
}

func NewStaffAuthHandler(log *logger.Logger, authService services.StaffAuthService, cookieTTLSeconds int) *StaffAuthHandler {
	return &StaffAuthHandler{
		log:         log.With("handler", "StaffAuthHandler"),
		authService: authService,
		cookieTTL:   cookieTTLSeconds,
	}
}

// POST /api/staff/login
// body: { "email": "...", "password": "..." }
func (h *StaffAuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, err)
		return
	}

	c.SetCookie(middleware.StaffCookieName, token, h.cookieTTL, "/", "", false, true)
	response.RespondOK(c, gin.H{"token": token})
}

// POST /api/staff/logout
func (h *StaffAuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.StaffCookieName, "", -1, "/", "", false, true)
	response.RespondOK(c, gin.H{"ok": true})
}
