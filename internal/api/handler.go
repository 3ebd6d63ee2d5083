// Package api exposes the expense pipeline over HTTP.
package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/api/middleware"
	"github.com/Vaishnavi212121/Personal-finance-agent/internal/model"
)

// Processor is the session pipeline served by the API.
type Processor interface {
	Process(rawText string) (model.Result, error)
	Summary() model.Summary
	Logs() []model.Event
}

// Handler serves the expense endpoints. All access to the underlying
// session is serialized.
type Handler struct {
	mu   sync.Mutex
	proc Processor
	log  *zap.Logger
}

// NewHandler creates a Handler for proc.
func NewHandler(proc Processor, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.L()
	}
	return &Handler{proc: proc, log: log}
}

// ProcessRequest is the body of POST /process_expense.
type ProcessRequest struct {
	Text string `json:"text"`
}

// ProcessResponse is the body returned by POST /process_expense.
type ProcessResponse struct {
	Result  model.Result  `json:"result"`
	Summary model.Summary `json:"summary"`
}

// Root handles GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Finance Agent API is running!",
	})
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ProcessExpense handles POST /process_expense
func (h *Handler) ProcessExpense(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.mu.Lock()
	res, err := h.proc.Process(req.Text)
	var summary model.Summary
	if err == nil {
		summary = h.proc.Summary()
	}
	h.mu.Unlock()

	if err != nil {
		h.log.Error("api: process expense failed",
			zap.String("request_id", middleware.RequestIDFrom(r.Context())),
			zap.Error(err),
		)
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to process expense")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, ProcessResponse{Result: res, Summary: summary})
}

// Summary handles GET /summary
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	s := h.proc.Summary()
	h.mu.Unlock()

	middleware.WriteJSON(w, http.StatusOK, s)
}

// Logs handles GET /logs
func (h *Handler) Logs(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	events := h.proc.Logs()
	h.mu.Unlock()

	middleware.WriteJSON(w, http.StatusOK, map[string]any{
		"logs":  events,
		"count": len(events),
	})
}
