package factory

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func NewModuleLogger(module string) logrus.FieldLogger {
	return logrus.WithField("module", module)
}

// LoggerWithContext adds the request ID assigned by the RequestID middleware,
// which sets it on the response rather than the request.
func LoggerWithContext(logger logrus.FieldLogger, ctx echo.Context) logrus.FieldLogger {
	requestID := ctx.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = ctx.Request().Header.Get(echo.HeaderXRequestID)
	}
	entry := logger.WithField("request_id", requestID)
	if path := ctx.Path(); path != "" {
		entry = entry.WithField("route", path)
	}
	return entry
}
