package leads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skillupx/lead-intake/internal/observability/metrics"
	"github.com/skillupx/lead-intake/pkg/logging"
)

// Response messages returned to the form.
const (
	MessageSaved            = "Lead saved & email sent."
	MessageRequired         = "Name, Email, Phone are required."
	MessageInvalidBody      = "Invalid request body"
	MessageMethodNotAllowed = "Method Not Allowed"
	MessageFailed           = "Failed to save lead."
)

// HealthBody answers GET /health in both the server and Lambda variants.
const HealthBody = `{"status":"ok"}`

// Request is the platform-neutral view of an incoming call.
type Request struct {
	Method string
	Path   string
	Body   []byte
}

// Response is the platform-neutral reply; adapters copy it onto their transport.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// Submitter runs the intake for a decoded request.
type Submitter interface {
	Submit(ctx context.Context, req *CreateLeadRequest) (*Lead, error)
}

// Handler turns requests into intake calls and uniform JSON results.
type Handler struct {
	service Submitter
	metrics *metrics.LeadMetrics
	logger  *logging.Logger
}

// NewHandler creates a new lead intake handler
func NewHandler(service Submitter, m *metrics.LeadMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service: service,
		metrics: m,
		logger:  logger,
	}
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handle answers preflight, enforces POST and runs the intake.
func (h *Handler) Handle(ctx context.Context, req Request) Response {
	switch req.Method {
	case http.MethodOptions:
		return Response{StatusCode: http.StatusOK, Headers: corsHeaders()}
	case http.MethodPost:
	default:
		return jsonResponse(http.StatusMethodNotAllowed, errorResponse{Error: MessageMethodNotAllowed})
	}

	payload, err := decodeRequest(req.Body)
	if err != nil {
		h.logger.Warn("failed to decode lead request", "error", err)
		h.metrics.ObserveSubmission(metrics.OutcomeInvalidBody)
		return jsonResponse(http.StatusBadRequest, errorResponse{Error: MessageInvalidBody})
	}

	lead, err := h.service.Submit(ctx, payload)
	switch {
	case err == nil:
	case errors.Is(err, ErrMissingRequired):
		h.metrics.ObserveSubmission(metrics.OutcomeValidationError)
		return jsonResponse(http.StatusBadRequest, errorResponse{Error: MessageRequired})
	default:
		stage := "unknown"
		var downstream *DownstreamError
		if errors.As(err, &downstream) {
			stage = downstream.Stage
		}
		h.logger.Error("failed to save lead", "error", err, "stage", stage, "lead_name", payload.Name)
		h.metrics.ObserveSubmission(metrics.OutcomeDownstreamFailure)
		return jsonResponse(http.StatusInternalServerError, errorResponse{Error: MessageFailed})
	}

	h.logger.Info("lead saved and email sent", "lead_name", lead.Name, "lead_email", lead.Email, "submitted_at", lead.SubmittedAt)
	h.metrics.ObserveSubmission(metrics.OutcomeSuccess)
	return jsonResponse(http.StatusOK, successResponse{Success: true, Message: MessageSaved})
}

func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
	}
}

func jsonResponse(status int, v any) Response {
	headers := corsHeaders()
	headers["Content-Type"] = "application/json"
	body, err := json.Marshal(v)
	if err != nil {
		return Response{StatusCode: http.StatusInternalServerError, Headers: headers, Body: []byte(`{"error":"Failed to save lead."}`)}
	}
	return Response{StatusCode: status, Headers: headers, Body: body}
}
