package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// Envelope messages shared by the error paths
const (
	MsgValidationFailed = "Validation failed"
	MsgCourseNotFound   = "Course not found"
	MsgResourceNotFound = "Resource not found"
	MsgInternalError    = "Internal server error"
)

// HandleAPIError writes the error envelope for err. failureMessage is the
// client-facing message for storage failures of the current operation; the
// storage cause itself is only logged.
func HandleAPIError(c *gin.Context, err error, failureMessage string) {
	var vErr *apperrors.ValidationError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(MsgValidationFailed).WithErrors(vErr.Fields))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(MsgValidationFailed))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorEnvelope(MsgCourseNotFound))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorEnvelope(MsgResourceNotFound))
	case errors.Is(err, apperrors.ErrPersistence):
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg(failureMessage)
		c.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(failureMessage))
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorEnvelope(MsgInternalError))
	}
	_ = c.Error(err)
}
