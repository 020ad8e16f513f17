package handler

import (
	"errors"
	"net/http"

	"github.com/entnt/dentalcare-server/internal/api/http/response"
	"github.com/entnt/dentalcare-server/internal/model"
	"github.com/gin-gonic/gin"
)

// writeServiceError maps clinic store errors to HTTP status codes.
func writeServiceError(c *gin.Context, err error) {
	var storageErr *model.StorageError

	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		response.JSON(c, http.StatusUnauthorized, false, "invalid email or password", nil)
	case errors.Is(err, model.ErrPermissionDenied):
		response.JSON(c, http.StatusForbidden, false, "permission denied", nil)
	case errors.Is(err, model.ErrPatientNotFound):
		response.JSON(c, http.StatusUnprocessableEntity, false, "patient does not exist", nil)
	case errors.Is(err, model.ErrInvalidStatus):
		response.JSON(c, http.StatusBadRequest, false, "invalid incident status", nil)
	case errors.Is(err, model.ErrNotFound):
		response.JSON(c, http.StatusNotFound, false, "record not found", nil)
	case errors.As(err, &storageErr):
		response.JSON(c, http.StatusServiceUnavailable, false, "persistent storage unavailable", nil)
	default:
		response.JSON(c, http.StatusInternalServerError, false, "internal server error", nil)
	}
}
