package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func TestRequestLoggerInjectsContextValues(t *testing.T) {
	var seenReqID string
	var sawLogger bool

	handler := RequestID()(RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenReqID = RequestIDFromContext(r.Context())
		sawLogger = LoggerFromContext(r.Context()) != nil
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "logging-test-id")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seenReqID != "logging-test-id" {
		t.Errorf("expected request id in context, got %q", seenReqID)
	}
	if !sawLogger {
		t.Error("expected request-scoped logger in context")
	}
}

func TestLoggerFromContextFallsBack(t *testing.T) {
	if LoggerFromContext(context.Background()) == nil {
		t.Error("expected global logger fallback")
	}
	if LoggerFromContext(nil) == nil { //nolint:staticcheck // nil context is the documented fallback path
		t.Error("expected global logger fallback for nil context")
	}
}

func TestRequestIDFromContextEmpty(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestLogHelpersAcceptNilError(t *testing.T) {
	ctx := context.Background()
	LogInfo(ctx, "info message")
	LogWarn(ctx, "warn message")
	LogError(ctx, "error message", nil)
	LogAuditEvent(ctx, "create", "user", "john@example.com", "success", nil)
}
