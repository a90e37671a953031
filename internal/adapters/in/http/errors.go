package http

import (
	"errors"
	"log/slog"
	"net/http"

	"fastereats/internal/generated/servers"
	"fastereats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps an application error to its HTTP status. Order matters:
// ServiceUnavailableError also unwraps to its cause.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrAlreadyClaimed),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrCouponIsInvalid),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a servers.Error. Internal errors are logged and
// their text is not exposed.
func respondError(ctx echo.Context, logger *slog.Logger, err error) error {
	status := statusOf(err)
	message := err.Error()

	switch status {
	case http.StatusInternalServerError:
		logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = http.StatusText(status)
	case http.StatusServiceUnavailable:
		logger.WarnContext(ctx.Request().Context(), "dependency unavailable",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = "Service unavailable, the outcome of the request is unknown: re-fetch before retrying"
	}

	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

// errorHandler renders errors raised by echo itself (routing, binding) in
// the same body shape as application errors.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg, ok := he.Message.(string)
			if !ok {
				msg = http.StatusText(he.Code)
			}
			_ = ctx.JSON(he.Code, servers.Error{Code: he.Code, Message: msg})
			return
		}

		_ = respondError(ctx, logger, err)
	}
}
