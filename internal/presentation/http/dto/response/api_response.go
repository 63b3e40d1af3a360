package response

import (
	"github.com/gin-gonic/gin"
	"github.com/hallmarkbd/hallmark-api/pkg/apperror"
)

// The React client consumes plain JSON payloads (arrays and objects as-is),
// so unlike envelope-style APIs, success responses are written directly
// with c.JSON. These helpers only standardize error and message bodies.

// ErrorBody is the shape of every error response
type ErrorBody struct {
	Message string               `json:"message"`
	Errors  []apperror.FieldError `json:"errors,omitempty"`
}

// Error sends an error response derived from the error's taxonomy:
// validation 400, duplicate 409, missing 404, everything else a generic
// 500.
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	if appErr.Code >= 500 {
		// Surface the original failure in the request log, not the body.
		_ = c.Error(err)
	}
	c.JSON(appErr.Code, ErrorBody{
		Message: appErr.Message,
		Errors:  appErr.Errors,
	})
}

// BadRequest sends a 400 with a message
func BadRequest(c *gin.Context, message string) {
	c.JSON(400, ErrorBody{Message: message})
}

// NotFound sends a 404 with a message
func NotFound(c *gin.Context, message string) {
	c.JSON(404, ErrorBody{Message: message})
}

// Message sends a bare {message} body with the given status
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}
