package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notificable/internal/config"
	"notificable/internal/core"
	"notificable/internal/notify"
)

// stubSender implements Sender with a canned outcome.
type stubSender struct {
	outcome notify.Outcome
	calls   int
	last    notify.Notification
}

func (s *stubSender) Send(_ context.Context, n notify.Notification) notify.Outcome {
	s.calls++
	s.last = n
	return s.outcome
}

// newTestAPI mounts the handler on a full core server so requests flow
// through the real middleware chain and routing.
func newTestAPI(t *testing.T, sender Sender) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv, err := core.NewServer(&config.Config{Environment: "local"}, logger)
	require.NoError(t, err)

	h := NewNotifyHandler(sender, logger)
	srv.APIRouteRegistrars = append(srv.APIRouteRegistrars, h.RegisterRoutes)
	srv.MountRoutes()

	return srv.Handler()
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	api := newTestAPI(t, &stubSender{outcome: notify.Delivered()})

	rec := get(t, api, "/api/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Backend is running!"}`, rec.Body.String())
}

func TestHelloEndpoint(t *testing.T) {
	api := newTestAPI(t, &stubSender{outcome: notify.Delivered()})

	rec := get(t, api, "/api/hello/Ada")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Hello, Ada!"}`, rec.Body.String())
}

func TestDemoNotifyDelivered(t *testing.T) {
	sender := &stubSender{outcome: notify.Delivered()}
	api := newTestAPI(t, sender)

	rec := get(t, api, "/api/notify")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Notification sent!"}`, rec.Body.String())
	assert.Equal(t, 1, sender.calls)

	// The demo notification carries the fixed content and default timeout.
	want := notify.New().
		Summary("Notificable Purr").
		Body("This is a test notification from the backend!")
	assert.Equal(t, want.Finalize(), sender.last)
}

func TestDemoNotifyOutcomeMapping(t *testing.T) {
	tests := []struct {
		name       string
		outcome    notify.Outcome
		wantStatus int
	}{
		{name: "delivered", outcome: notify.Delivered(), wantStatus: http.StatusOK},
		{name: "failed", outcome: notify.Failed("no daemon"), wantStatus: http.StatusBadGateway},
		{name: "unsupported", outcome: notify.Unsupported(), wantStatus: http.StatusNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, &stubSender{outcome: tt.outcome})

			rec := get(t, api, "/api/notify")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"message"`)
		})
	}
}

func TestPostNotifyBuildsNotification(t *testing.T) {
	sender := &stubSender{outcome: notify.Delivered()}
	api := newTestAPI(t, sender)

	rec := postJSON(t, api, "/api/notify", `{
		"summary": "deploy finished",
		"subtitle": "production",
		"body": "all 12 services healthy",
		"timeout_ms": 0,
		"replace_id": 7
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	want := notify.New().
		Summary("deploy finished").
		Subtitle("production").
		Body("all 12 services healthy").
		TimeoutMillis(0).
		ID(7)
	assert.Equal(t, want.Finalize(), sender.last)
}

func TestPostNotifyValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"summary":`},
		{name: "missing summary", body: `{"body":"no title"}`},
		{name: "unknown field", body: `{"summary":"hi","urgent":true}`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &stubSender{outcome: notify.Delivered()}
			api := newTestAPI(t, sender)

			rec := postJSON(t, api, "/api/notify", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"message"`)
			assert.Zero(t, sender.calls, "invalid requests must not dispatch")
		})
	}
}

func TestPostNotifyFailureDoesNotLeakReason(t *testing.T) {
	api := newTestAPI(t, &stubSender{outcome: notify.Failed("dbus: /run/user/1000/bus refused")})

	rec := postJSON(t, api, "/api/notify", `{"summary":"hi"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "/run/user")
}
