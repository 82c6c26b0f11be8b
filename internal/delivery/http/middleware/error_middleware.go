package middleware

import (
	"errors"
	"net/http"

	"go-forex-backend/internal/delivery/http/response"
	"go-forex-backend/pkg/apperror"
	"go-forex-backend/pkg/logger"
	"go-forex-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors attached to the context into the JSON envelope.
// Validation errors become a 400 with per-field messages; AppErrors keep
// their code and message; anything else is logged and hidden behind a
// generic 500 so internal details never reach the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var vErr *validation.Error
		if errors.As(err, &vErr) {
			response.ValidationFailed(c, vErr.Fields)
			return
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"path", c.FullPath(),
					"code", appErr.Code,
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong!", nil)
	}
}
