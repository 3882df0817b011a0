package factory

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func TestNewModuleLogger(t *testing.T) {
	logger := NewModuleLogger("pricing-controller")
	entry, ok := logger.(*logrus.Entry)
	if !ok {
		t.Fatalf("expected *logrus.Entry, got %T", logger)
	}
	if entry.Data["module"] != "pricing-controller" {
		t.Fatalf("expected module field, got %+v", entry.Data)
	}
}

func TestLoggerWithContextPrefersResponseRequestID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/pricing", nil)
	req.Header.Set(echo.HeaderXRequestID, "rest-incoming")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetPath("/pricing")
	ctx.Response().Header().Set(echo.HeaderXRequestID, "rest-assigned")

	logger := LoggerWithContext(logrus.NewEntry(logrus.StandardLogger()), ctx)
	entry, ok := logger.(*logrus.Entry)
	if !ok {
		t.Fatalf("expected *logrus.Entry, got %T", logger)
	}
	if entry.Data["request_id"] != "rest-assigned" {
		t.Fatalf("expected assigned request_id, got %+v", entry.Data)
	}
	if entry.Data["route"] != "/pricing" {
		t.Fatalf("expected route field, got %+v", entry.Data)
	}
}

func TestLoggerWithContextFallsBackToRequestHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "rest-test-123")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	logger := LoggerWithContext(logrus.NewEntry(logrus.StandardLogger()), ctx)
	entry := logger.(*logrus.Entry)
	if entry.Data["request_id"] != "rest-test-123" {
		t.Fatalf("expected request_id field, got %+v", entry.Data)
	}
	if _, ok := entry.Data["route"]; ok {
		t.Fatalf("did not expect route field, got %+v", entry.Data)
	}
}
