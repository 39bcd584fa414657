package vetting

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed index.html
var indexHTML []byte

type AnalyzeRequest struct {
	URL string `json:"url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler exposes an Analyzer over HTTP.
type Handler struct {
	Analyzer *Analyzer
}

func NewHandler(a *Analyzer) *Handler {
	return &Handler{Analyzer: a}
}

// Routes mounts the UI, the analysis endpoint and a health check.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", IndexHandler)
	r.Get("/healthz", HealthHandler)
	r.Post("/analyze", h.AnalyzeHandler)
	return r
}

func (h *Handler) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	// Analyze fails only with ErrNoURL.
	report, err := h.Analyzer.Analyze(r.Context(), req.URL)
	if err != nil {
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "No URL provided"})
		return
	}

	WriteJSON(w, http.StatusOK, report)
}

func IndexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
