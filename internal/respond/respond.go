// Package respond owns the error surface of the API: every error response,
// whether raised by a handler, by request validation, or by the router,
// is rendered as the same JSON body carrying a timestamp, the numeric
// status, its reason phrase, and a human-readable message.
package respond

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	appmiddleware "github.com/userhub/users-api/internal/middleware"
)

// ErrorBody is the wire format of every error response.
type ErrorBody struct {
	Timestamp string `json:"timestamp" doc:"Time the error was produced (RFC 3339)"`
	Status    int    `json:"status"    doc:"HTTP status code"`
	Error     string `json:"error"     doc:"HTTP reason phrase"`
	Message   string `json:"message"   doc:"Human-readable description"`
}

var installOnce sync.Once

// Install routes all Huma-generated errors (including validation failures)
// through the shared error body and logging.
func Install() {
	installOnce.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			return newStatusError(context.Background(), status, msg, errs)
		}
		huma.NewErrorWithContext = func(hctx huma.Context, status int, msg string, errs ...error) huma.StatusError {
			ctx := context.Background()
			if hctx != nil {
				ctx = hctx.Context()
			}
			return newStatusError(ctx, status, msg, errs)
		}
	})
}

// Error builds a status error with the shared body and logging semantics.
func Error(ctx context.Context, status int, msg string) huma.StatusError {
	return newStatusError(ctx, status, msg, nil)
}

// Write serializes an ErrorBody directly to the ResponseWriter, for use
// outside Huma operations (router-level handlers, panic recovery).
func Write(w http.ResponseWriter, ctx context.Context, status int, msg string) {
	body := errorBody(status, msg)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		appmiddleware.LogError(ctx, "failed to render error body", err)
	}
}

// NotFoundHandler answers unmatched routes with a shared-body 404.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		Write(w, r.Context(), http.StatusNotFound, "resource not found")
	}
}

// MethodNotAllowedHandler answers unsupported methods with a shared-body 405.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		Write(w, r.Context(), http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Recoverer converts panics into structured 500 responses.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					var err error
					switch v := rec.(type) {
					case error:
						err = v
					default:
						err = fmt.Errorf("%v", v)
					}
					appmiddleware.LogError(r.Context(), "panic recovered", err,
						zap.ByteString("stack", debug.Stack()))
					Write(w, r.Context(), http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type statusError struct {
	ErrorBody
	status int
}

func (e *statusError) Error() string {
	return e.Message
}

func (e *statusError) GetStatus() int {
	return e.status
}

func newStatusError(ctx context.Context, status int, msg string, errs []error) huma.StatusError {
	msg = combineMessage(status, msg, errs)
	// Huma probes NewError(0, "") during route registration to derive the
	// error response schema; that call is not a real failure.
	if status != 0 {
		logWithStatus(ctx, status, msg)
	}
	return &statusError{ErrorBody: errorBody(status, msg), status: status}
}

func errorBody(status int, msg string) ErrorBody {
	if strings.TrimSpace(msg) == "" {
		msg = reasonPhrase(status)
	}
	return ErrorBody{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
		Error:     reasonPhrase(status),
		Message:   msg,
	}
}

// combineMessage folds detail errors (e.g. per-field validation failures)
// into the single message slot the error body provides.
func combineMessage(status int, msg string, errs []error) string {
	parts := make([]string, 0, len(errs)+1)
	if strings.TrimSpace(msg) != "" {
		parts = append(parts, msg)
	}
	for _, err := range errs {
		if err == nil {
			continue
		}
		detail := err.Error()
		if d, ok := err.(huma.ErrorDetailer); ok {
			if ed := d.ErrorDetail(); ed != nil && ed.Message != "" {
				detail = ed.Message
				if ed.Location != "" {
					detail = ed.Location + ": " + detail
				}
			}
		}
		parts = append(parts, detail)
	}
	if len(parts) == 0 {
		return reasonPhrase(status)
	}
	return strings.Join(parts, "; ")
}

func reasonPhrase(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}

func logWithStatus(ctx context.Context, status int, msg string) {
	fields := []zap.Field{zap.Int("status", status)}
	switch {
	case status >= 500:
		appmiddleware.LogError(ctx, msg, nil, fields...)
	case status >= 400:
		appmiddleware.LogWarn(ctx, msg, fields...)
	default:
		appmiddleware.LogInfo(ctx, msg, fields...)
	}
}
