package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"go-jobsearch-backend/internal/delivery/http/response"
	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const genericErrorMessage = "An unexpected error occurred. Please try again later."

// ErrorHandler renders the last error a handler attached with c.Error.
// Infrastructure failure details only reach clients outside production.
func ErrorHandler(production bool, log *slog.Logger) gin.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		body := response.ErrorBody{Kind: string(appErr.Kind), Fields: appErr.Fields}
		message := appErr.Message
		if appErr.Kind == apperror.KindStore {
			log.Error("request failed",
				"request_id", c.GetString(string(domain.KeyRequestID)),
				"method", c.Request.Method,
				"path", c.FullPath(),
				"error", err,
			)
			if production {
				message = genericErrorMessage
			} else if appErr.Err != nil {
				body.Detail = appErr.Err.Error()
			}
		} else {
			log.Debug("request rejected",
				"request_id", c.GetString(string(domain.KeyRequestID)),
				"path", c.FullPath(),
				"kind", appErr.Kind,
			)
		}

		code := appErr.Code
		if code == 0 {
			code = http.StatusInternalServerError
		}
		response.Error(c, code, message, body)
	}
}
