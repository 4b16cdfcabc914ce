package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/emiliopalmerini/typouniverse/internal/messages"
)

func TestHTMX(t *testing.T) {
	var got bool
	h := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = IsHTMX(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)
	if got {
		t.Error("expected plain request")
	}

	req.Header.Set("HX-Request", "true")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if !got {
		t.Error("expected HTMX request")
	}
}

func TestLocalize(t *testing.T) {
	c, err := messages.New("en")
	if err != nil {
		t.Fatal(err)
	}
	var got string
	h := Localize(c)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = messages.FromContext(r.Context()).Sprintf(messages.NavLab)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if got != "실험실" {
		t.Errorf("got %q, want Korean label", got)
	}

	req.Header.Set("Accept-Language", "fr")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if got != "Lab" {
		t.Errorf("got %q, want fallback label", got)
	}
}

func TestIsHTMX_WithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	if IsHTMX(req) {
		t.Error("expected false when middleware did not run")
	}
}

func TestHTMX_TargetAndTrigger(t *testing.T) {
	var got HTMXRequest
	h := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = HTMXFrom(r)
		TriggerEvent(w, "guide-generated")
	}))

	req := httptest.NewRequest(http.MethodPost, "/guide", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "guide")
	req.Header.Set("HX-Trigger", "generate")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	want := HTMXRequest{Enabled: true, Target: "guide", Trigger: "generate"}
	if got != want {
		t.Errorf("HTMXFrom = %+v, want %+v", got, want)
	}
	if ev := rec.Header().Get("HX-Trigger"); ev != "guide-generated" {
		t.Errorf("HX-Trigger response header = %q", ev)
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := chimw.RequestID(HTMX(RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := logs.AllUntimed()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}

	first := entries[0].ContextMap()
	if first["path"] != "/health" || first["status"] != int64(200) {
		t.Errorf("unexpected fields %v", first)
	}
	if first["request_id"] == "" {
		t.Error("expected request id")
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("expected warn for 404, got %v", entries[1].Level)
	}
}
