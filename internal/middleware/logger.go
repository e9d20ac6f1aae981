package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"starcatalog/internal/pkg/apierror"
	"starcatalog/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	msgNotFound            = "Not Found"
	msgInternalServerError = "Internal Server Error"
)

// ErrorHandler renders errors attached by handlers and recovers from panics.
// Every failure leaves as {"message": ...} with the matching status.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequestError(c, start, "panic", err.Error(), debug.Stack())

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": msgInternalServerError})
				return
			}

			if len(c.Errors) == 0 {
				if c.Writer.Status() >= http.StatusInternalServerError {
					logRequestError(c, start, "http_error", fmt.Sprintf("status=%d", c.Writer.Status()), nil)
				}
				return
			}

			last := c.Errors.Last()
			status, body := renderError(last.Err)
			if status >= http.StatusInternalServerError {
				for _, err := range c.Errors {
					logRequestError(c, start, describe(err.Err), err.Error(), nil)
				}
			}

			if !c.Writer.Written() {
				c.JSON(status, body)
			}
		}()

		c.Next()
	}
}

func renderError(err error) (int, gin.H) {
	if apiErr, ok := apierror.As(err); ok {
		return apiErr.StatusCode, gin.H(apiErr.ToMap())
	}
	if errors.Is(err, repository.ErrNotFound) {
		return http.StatusNotFound, gin.H{"message": msgNotFound}
	}
	return http.StatusInternalServerError, gin.H{"message": msgInternalServerError}
}

// describe tags persistence failures with their SQLSTATE when the driver is PostgreSQL.
func describe(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Sprintf("pg_%s constraint=%s", pgErr.Code, pgErr.ConstraintName)
	}
	return "error"
}

func logRequestError(c *gin.Context, start time.Time, errType string, message string, stack []byte) {
	log.Printf(
		"request_error type=%s status=%d method=%s path=%s client_ip=%s user_id=%d request_id=%s latency=%s error=%q stack=%s",
		errType,
		c.Writer.Status(),
		c.Request.Method,
		c.Request.URL.Path,
		c.ClientIP(),
		c.GetInt64(UserIDKey),
		c.GetString(RequestIDKey),
		time.Since(start),
		message,
		string(stack),
	)
}
