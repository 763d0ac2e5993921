package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "storm/internal/delivery/context"
	domainerrors "storm/internal/domain/errors"
	"storm/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is Echo's HTTPErrorHandler. AppErrors are rendered with
// their stable message, echo errors keep their status, and everything else
// becomes a generic internal error. Causes are only logged.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.LoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(logger, err, c)
		}
		m.write(c, domainerrors.NewErrorResponse(appErr))

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		m.write(c, httpErrorResponse(httpErr))

		return
	}

	m.logUnhandled(logger, err, c)
	m.write(c, domainerrors.NewErrorResponse(domainerrors.ErrInternalError))
}

func (m *ErrorMiddleware) write(c echo.Context, resp domainerrors.Response) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(resp.Code)
	} else {
		err = c.JSON(resp.Code, resp)
	}
	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

func (m *ErrorMiddleware) logUnhandled(logger *slog.Logger, err error, c echo.Context) {
	logger.Error("Request failed",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

// httpErrorResponse maps echo's routing, binding and body-limit errors.
func httpErrorResponse(httpErr *echo.HTTPError) domainerrors.Response {
	code := httpErr.Code
	message := http.StatusText(code)
	if msg, ok := httpErr.Message.(string); ok && code < http.StatusInternalServerError {
		message = msg
	}

	errorCode := "HTTP_ERROR"
	switch code {
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		errorCode = "PAYLOAD_TOO_LARGE"
	case http.StatusBadRequest:
		errorCode = domainerrors.ErrValidationFailed.ErrorCode()
	}

	return domainerrors.Response{
		Success: false,
		Code:    code,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code: errorCode,
		},
	}
}
