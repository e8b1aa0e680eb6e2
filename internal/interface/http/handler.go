// Package handlers contains the Gin handlers. Handlers bind and validate the
// payload, call the service and translate service errors into the response
// envelope; no business rules live here.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/application"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/repository"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/response"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/validation"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var validationErr *application.ValidationError
	var policyErr *application.PolicyError
	var unauthorizedErr *application.UnauthorizedError

	switch {
	case errors.As(err, &validationErr):
		response.Error[any](c, http.StatusBadRequest, validationErr.Message, nil)
	case errors.As(err, &policyErr):
		response.Error[any](c, http.StatusForbidden, policyErr.Message, nil)
	case errors.As(err, &unauthorizedErr):
		response.Error[any](c, http.StatusUnauthorized, unauthorizedErr.Message, nil)
	case errors.Is(err, repository.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "Resource not found", nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func respondBindError(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
}

func currentUserID(c *gin.Context) string {
	return c.GetString("userID")
}
