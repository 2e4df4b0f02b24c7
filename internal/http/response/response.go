package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire shapes are flat on purpose: `{data: [...]}` on success,
// `{error: "..."}` on failure, matching what the evaluation form's
// client-side code consumes.

func Data(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, gin.H{"data": payload})
}

func Error(c *gin.Context, status int, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, gin.H{"error": msg})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
