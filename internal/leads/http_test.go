package leads

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPHandler_Success(t *testing.T) {
	handler, _ := newTestHandler(nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/lead", strings.NewReader(`{"name":"Asha","email":"asha@example.com","phone":"98765"}`))
	rec := httptest.NewRecorder()

	HTTPHandler(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestHTTPHandler_OversizedBody(t *testing.T) {
	handler, log := newTestHandler(nil, nil)
	big := `{"name":"` + strings.Repeat("a", maxBodyBytes+1) + `","email":"e","phone":"p"}`
	req := httptest.NewRequest(http.MethodPost, "/lead", strings.NewReader(big))
	rec := httptest.NewRecorder()

	HTTPHandler(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if len(log.list()) != 0 {
		t.Fatalf("expected no collaborator calls")
	}
}

func TestHTTPHandler_Preflight(t *testing.T) {
	handler, _ := newTestHandler(nil, nil)
	req := httptest.NewRequest(http.MethodOptions, "/lead", nil)
	rec := httptest.NewRecorder()

	HTTPHandler(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
		t.Fatalf("unexpected allow headers %q", got)
	}
}
