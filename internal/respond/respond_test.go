package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func decodeErrorBody(t *testing.T, resp *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error body: %v (%s)", err, resp.Body.String())
	}
	return body
}

func TestNotFoundHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	resp := httptest.NewRecorder()

	NotFoundHandler()(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	body := decodeErrorBody(t, resp)
	if body.Status != http.StatusNotFound || body.Error != "Not Found" {
		t.Errorf("unexpected body %+v", body)
	}
	if body.Message != "resource not found" {
		t.Errorf("unexpected message %q", body.Message)
	}
	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
		t.Errorf("timestamp must be RFC 3339, got %q", body.Timestamp)
	}
}

func TestMethodNotAllowedHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodTrace, "/users", nil)
	resp := httptest.NewRecorder()

	MethodNotAllowedHandler()(resp, req)

	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.Code)
	}
	body := decodeErrorBody(t, resp)
	if body.Error != "Method Not Allowed" || body.Message != "method not allowed" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestRecovererRendersInternalError(t *testing.T) {
	handler := Recoverer()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	body := decodeErrorBody(t, resp)
	if body.Status != http.StatusInternalServerError || body.Error != "Internal Server Error" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestErrorUsesReasonPhraseWhenMessageEmpty(t *testing.T) {
	se := Error(nil, http.StatusBadRequest, "")
	if se.GetStatus() != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", se.GetStatus())
	}
	if se.Error() != "Bad Request" {
		t.Errorf("expected reason phrase fallback, got %q", se.Error())
	}
}

func TestInstalledErrorHookProducesSharedBody(t *testing.T) {
	Install()

	se := Error(nil, http.StatusUnprocessableEntity, "validation failed")
	env, ok := se.(*statusError)
	if !ok {
		t.Fatalf("unexpected error type %T", se)
	}
	if env.Status != http.StatusUnprocessableEntity || env.Message != "validation failed" {
		t.Errorf("unexpected body %+v", env.ErrorBody)
	}
}
