package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summary/errors"
	"github.com/johnquangdev/meeting-summary/internal/adapter/dto/common"
	uerrors "github.com/johnquangdev/meeting-summary/internal/usecase/errors"
)

// getRequestID reads the request id set by the RequestID middleware,
// falling back to the incoming header.
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// toAppError maps usecase errors onto their HTTP representation
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var httpErr *echo.HTTPError
	if stdErrors.As(err, &httpErr) {
		return fromHTTPError(httpErr)
	}

	var deliveryErr *uerrors.DeliveryError
	switch {
	case stdErrors.Is(err, uerrors.ErrInvalidEncoding):
		return errors.ErrInvalidEncoding(err)
	case stdErrors.Is(err, uerrors.ErrEmptyTranscript):
		return errors.ErrEmptyTranscript()
	case stdErrors.Is(err, uerrors.ErrAnalysisFailed):
		return errors.ErrAIAnalysisFailed(err)
	case stdErrors.Is(err, uerrors.ErrEmailNotConfigured):
		return errors.ErrEmailNotConfigured()
	case stdErrors.As(err, &deliveryErr):
		return errors.ErrEmailDeliveryFailed(deliveryErr.Cause)
	}
	return errors.ErrInternal(err)
}

// fromHTTPError converts errors raised by echo itself (routing, body limit)
func fromHTTPError(he *echo.HTTPError) errors.AppError {
	switch {
	case he.Code == http.StatusNotFound:
		return errors.ErrNotFound("Route")
	case he.Code >= http.StatusInternalServerError:
		return errors.ErrInternal(he)
	}

	msg := http.StatusText(he.Code)
	if he.Message != nil {
		msg = fmt.Sprint(he.Message)
	}
	appErr := errors.ErrInvalidArgument(msg)
	appErr.HTTPCode = he.Code
	return appErr
}

// NewHTTPErrorHandler renders errors that never reached a handler, such as
// unknown routes, in the same body shape as HandleError.
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if werr := HandleError(logger, c, err); werr != nil && logger != nil {
			logger.Error("failed to write error response", zap.Error(werr))
		}
	}
}

// HandleSuccess writes data as the JSON body using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, data)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", appErr.HTTPCode),
			zap.Stringer("app_code", appErr.Code),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	return c.JSON(appErr.HTTPCode, common.ErrorResponse{
		Detail:  appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	})
}
