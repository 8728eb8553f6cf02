package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/phylo-app/phylo/internal/httputil"
	"github.com/phylo-app/phylo/internal/metrics"
	"github.com/phylo-app/phylo/internal/models"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeInternalError  = "internal_error"
	ErrCodeRateLimited    = "rate_limited"
)

// respondError writes a standardized JSON error response, pulling the request
// ID from the Gin context (set by the request ID middleware).
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}

// respondServiceError maps service errors onto HTTP statuses. Anything that is
// not a known sentinel is logged and reported as a 500.
func respondServiceError(c *gin.Context, log *logrus.Logger, err error, action string) {
	switch {
	case errors.Is(err, models.ErrTreeNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "tree not found")
	case errors.Is(err, models.ErrMemberNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "member not found")
	case errors.Is(err, models.ErrInvalidID),
		errors.Is(err, models.ErrMissingID),
		errors.Is(err, models.ErrMissingFrom),
		errors.Is(err, models.ErrMissingTo):
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
	default:
		log.WithError(err).Error(action)
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
