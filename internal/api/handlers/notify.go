// Package handlers contains the HTTP handler implementations for the
// Notificable API:
//   - Liveness check (GET /api/health)
//   - Greeting echo (GET /api/hello/{name})
//   - Fixed demo notification (GET /api/notify)
//   - Caller-configured notification (POST /api/notify)
//
// Every response uses the fixed single-field envelope
// {"message": "..."}.
package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"notificable/internal/core"
	"notificable/internal/notify"
	"notificable/internal/types"
)

// Demo notification content for GET /api/notify.
const (
	demoSummary = "Notificable Purr"
	demoBody    = "This is a test notification from the backend!"
)

// Sender dispatches a finalized notification. Matches notify.Service but is
// defined locally so tests can inject a double without a real dispatcher.
type Sender interface {
	Send(ctx context.Context, n notify.Notification) notify.Outcome
}

// NotifyHandler maps HTTP requests to the notification dispatch service.
type NotifyHandler struct {
	sender   Sender
	validate *validator.Validate
	logger   *slog.Logger
}

// NewNotifyHandler creates a NotifyHandler with the provided dependencies.
func NewNotifyHandler(sender Sender, logger *slog.Logger) *NotifyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotifyHandler{
		sender:   sender,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes mounts the handler's routes on the /api route group.
func (h *NotifyHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.HandleHealth)
	r.Get("/hello/{name}", h.HandleHello)
	r.Get("/notify", h.HandleDemoNotify)
	r.Post("/notify", h.HandleNotify)
}

// HandleHealth is the liveness check. It reports process liveness only;
// notification transport reachability is intentionally not probed here,
// since an absent daemon is an expected condition, not an unhealthy one.
func (h *NotifyHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	core.Message(w, r, http.StatusOK, "Backend is running!")
}

// HandleHello echoes a greeting for the path name.
func (h *NotifyHandler) HandleHello(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	core.Message(w, r, http.StatusOK, fmt.Sprintf("Hello, %s!", name))
}

// HandleDemoNotify dispatches a fixed demo notification with the default
// timeout and maps the outcome onto the response status.
func (h *NotifyHandler) HandleDemoNotify(w http.ResponseWriter, r *http.Request) {
	n := notify.New().
		Summary(demoSummary).
		Body(demoBody)

	h.respondOutcome(w, r, h.sender.Send(r.Context(), n))
}

// notifyRequest is the POST /api/notify body. Timeout and replacement id
// are optional; an absent timeout_ms means the server-default expiry, and
// -1/0 carry their freedesktop sentinel meanings (default / never expire).
type notifyRequest struct {
	Summary   string  `json:"summary" validate:"required,max=256"`
	Subtitle  *string `json:"subtitle" validate:"omitempty,max=256"`
	Body      string  `json:"body" validate:"max=4096"`
	TimeoutMS *int32  `json:"timeout_ms"`
	ReplaceID *uint32 `json:"replace_id"`
}

// HandleNotify dispatches a caller-configured notification.
func (h *NotifyHandler) HandleNotify(w http.ResponseWriter, r *http.Request) {
	var req notifyRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.Error(w, r, types.NewAppError(
			types.ErrCodeValidationFailed,
			"invalid notification request: "+err.Error(),
			err,
		))
		return
	}

	n := notify.New().
		Summary(req.Summary).
		Body(req.Body)
	if req.Subtitle != nil {
		n = n.Subtitle(*req.Subtitle)
	}
	if req.TimeoutMS != nil {
		n = n.TimeoutMillis(*req.TimeoutMS)
	}
	if req.ReplaceID != nil {
		n = n.ID(*req.ReplaceID)
	}

	h.respondOutcome(w, r, h.sender.Send(r.Context(), n))
}

// respondOutcome maps a dispatch outcome onto the response: 200 for
// delivered, 502 for failed, 501 for unsupported. Failure detail stays in
// the server logs; the client sees only the failure class.
func (h *NotifyHandler) respondOutcome(w http.ResponseWriter, r *http.Request, out notify.Outcome) {
	switch out.Status {
	case notify.StatusDelivered:
		core.Message(w, r, http.StatusOK, "Notification sent!")
	case notify.StatusUnsupported:
		core.Error(w, r, types.NewAppError(
			types.ErrCodeDispatchUnsupported,
			"notifications are not supported on this platform",
			nil,
		))
	default:
		h.logger.Warn("notification dispatch failed", "reason", out.Reason)
		core.Error(w, r, types.NewAppError(
			types.ErrCodeDispatchFailed,
			"notification delivery failed",
			nil,
		))
	}
}
