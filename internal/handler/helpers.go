package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"bands-console/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatusClientClosedRequest: клиент ушёл до ответа.
const StatusClientClosedRequest = 499

func toErrorResponse(code, message string) domain.ErrorResponse {
	return domain.ErrorResponse{
		Error: domain.HTTPError{
			Code:    code,
			Message: message,
		},
	}
}

func toAPIErrorResponse(httpErr domain.HTTPError) domain.ErrorResponse {
	return domain.ErrorResponse{Error: httpErr}
}

// toUpstreamErrorResponse сохраняет сообщение и details upstream API как есть.
func toUpstreamErrorResponse(err *domain.UpstreamError) domain.ErrorResponse {
	resp := toErrorResponse("UPSTREAM_ERROR", err.Message)
	if resp.Error.Message == "" {
		resp.Error.Message = http.StatusText(err.Status)
	}
	if err.Details != "" {
		if json.Valid([]byte(err.Details)) && strings.HasPrefix(strings.TrimSpace(err.Details), "{") {
			resp.Error.Details = json.RawMessage(err.Details)
		} else {
			resp.Error.Details = err.Details
		}
	}
	return resp
}

func getHTTPStatusCode(err error) int {
	switch {
	// Conflict errors (409)
	case errors.Is(err, domain.ErrInstrumentAlreadyAdded), errors.Is(err, domain.ErrRoleFull),
		errors.Is(err, domain.ErrBadgeAlreadyAssigned), errors.Is(err, domain.ErrUnsavedChanges),
		errors.Is(err, domain.ErrAlreadySubscribed), errors.Is(err, domain.ErrNotOnReviewStep),
		errors.Is(err, domain.ErrActionNotAllowed):
		return http.StatusConflict

	// Not Found errors (404)
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrDraftNotFound),
		errors.Is(err, domain.ErrInstrumentNotFound), errors.Is(err, domain.ErrRoleNotFound),
		errors.Is(err, domain.ErrBadgeNotFound), errors.Is(err, domain.ErrUnknownTab):
		return http.StatusNotFound

	// Forbidden (403)
	case errors.Is(err, domain.ErrSelfAction):
		return http.StatusForbidden

	// Precondition Required (428) - действие без подтверждения
	case errors.Is(err, domain.ErrConfirmationRequired):
		return http.StatusPreconditionRequired

	// Unprocessable (422) - ошибки полей формы
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity

	// Bad Request errors (400)
	case errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, domain.ErrInvalidSkillLevel),
		errors.Is(err, domain.ErrInvalidBirthDate), errors.Is(err, domain.ErrUnknownField),
		errors.Is(err, domain.ErrUnknownAction), errors.Is(err, domain.ErrInvalidFilters),
		errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest

	// Photo errors
	case errors.Is(err, domain.ErrUnsupportedPhoto):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrPhotoTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrPhotoUploadFailed):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// upstreamStatus: ошибки клиента upstream API отдаются с тем же кодом, его сбои превращаются в 502.
func upstreamStatus(err *domain.UpstreamError) int {
	if err.Status >= 400 && err.Status < 500 {
		return err.Status
	}
	return http.StatusBadGateway
}

// respondError пишет ошибку в едином формате {error: {code, message, details?}}.
func respondError(c echo.Context, logEntry *logrus.Entry, err error) error {
	if errors.Is(err, context.Canceled) {
		logEntry.Info("Request cancelled by client")
		return c.NoContent(StatusClientClosedRequest)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		logEntry.WithError(err).Warn("Upstream request timed out")
		return c.JSON(http.StatusGatewayTimeout, toErrorResponse("UPSTREAM_TIMEOUT", "upstream API did not respond in time"))
	}

	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		logEntry.WithError(err).Warn("Upstream API rejected the request")
		return c.JSON(upstreamStatus(upstreamErr), toUpstreamErrorResponse(upstreamErr))
	}

	if httpErr, exists := domain.ToHTTPError(err); exists {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			httpErr.Details = verr.Fields
		}
		status := getHTTPStatusCode(err)
		if status >= http.StatusInternalServerError {
			logEntry.WithError(err).Error("Request failed")
		} else {
			logEntry.WithError(err).Warn("Request rejected")
		}
		return c.JSON(status, toAPIErrorResponse(httpErr))
	}

	logEntry.WithError(err).Error("Unexpected error")
	return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
}

func badRequest(c echo.Context, logEntry *logrus.Entry, err error) error {
	logEntry.WithError(err).Warn("Invalid request")
	return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
}
