package response

import (
	"go-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ApiEnvelope struct {
	Ok    bool       `json:"ok"`
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
	})
}

func Error(c *gin.Context, httpErr apperror.HTTPError) {
	c.JSON(httpErr.Status, ApiEnvelope{
		Ok: false,
		Error: &ErrorBody{
			Code:    httpErr.Code,
			Message: httpErr.Message,
			Details: httpErr.Details,
		},
	})
}

// Abort writes the error envelope and stops the handler chain.
func Abort(c *gin.Context, httpErr apperror.HTTPError) {
	Error(c, httpErr)
	c.Abort()
}
