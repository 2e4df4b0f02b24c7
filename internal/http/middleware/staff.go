package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/banglanlp/dialect-eval-backend/internal/platform/ctxutil"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
	"github.com/banglanlp/dialect-eval-backend/internal/services"
)

// StaffCookieName holds the staff JWT for browser sessions; API callers
// may send the same token as a bearer header instead.
const StaffCookieName = "staff_token"

type StaffMiddleware struct {
	log         *logger.Logger
	authService services.StaffAuthService
}

func NewStaffMiddleware(log *logger.Logger, authService services.StaffAuthService) *StaffMiddleware {
	return &StaffMiddleware{log: log.With("middleware", "StaffMiddleware"), authService: authService}
}

// RequireStaff gates the export surface. Non-staff callers are sent back
// to the home page with a redirect, never a JSON error body.
func (m *StaffMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractStaffToken(c)
		if tokenString == "" {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		staff, err := m.authService.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			m.log.Warn("Rejected non-staff access", "path", c.Request.URL.Path, "error", err)
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		ctx := ctxutil.WithStaff(c.Request.Context(), &ctxutil.StaffData{
			StaffID: staff.ID,
			Email:   staff.Email,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractStaffToken(c *gin.Context) string {
	if cookie, err := c.Cookie(StaffCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
