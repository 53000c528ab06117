package handlers

import (
	"errors"
	"net/http"

	"library/internal/domain"
	"library/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Success:   false,
		Message:   message,
		Error:     message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Internal causes are
// attached to the context for the access log and never sent to the client.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusBadRequest, "conflict", err.Error())
	case domain.IsAuthentication(err):
		respondError(c, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	default:
		_ = c.Error(err)
		msg := "internal server error"
		var ie domain.InternalError
		if errors.As(err, &ie) {
			msg = ie.PublicMessage()
		}
		respondError(c, http.StatusInternalServerError, "internal_error", msg)
	}
}
