package ai

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"url-risk-checker/vetting"
)

type ExplainResponse struct {
	Report  vetting.RiskReport `json:"report"`
	Summary string             `json:"summary"`
	Error   string             `json:"error,omitempty"`
}

// ExplainHandler scores a URL and asks Gemini to describe the result.
type ExplainHandler struct {
	Analyzer *vetting.Analyzer
	Client   *GeminiClient
}

func NewExplainHandler(a *vetting.Analyzer, c *GeminiClient) *ExplainHandler {
	return &ExplainHandler{Analyzer: a, Client: c}
}

func (h *ExplainHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Client == nil {
		vetting.WriteJSON(w, http.StatusServiceUnavailable, vetting.ErrorResponse{Error: "AI explanations are not configured"})
		return
	}

	var req vetting.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		vetting.WriteJSON(w, http.StatusBadRequest, vetting.ErrorResponse{Error: "invalid request body"})
		return
	}

	// Analyze fails only with ErrNoURL.
	report, err := h.Analyzer.Analyze(r.Context(), req.URL)
	if err != nil {
		vetting.WriteJSON(w, http.StatusBadRequest, vetting.ErrorResponse{Error: "No URL provided"})
		return
	}

	resp := ExplainResponse{Report: report}
	summary, err := h.Client.Generate(r.Context(), ExplainPrompt(strings.TrimSpace(req.URL), report), SystemPrompt)
	if err != nil {
		log.Printf("[AI] Explanation failed: %v", err)
		resp.Error = "explanation unavailable"
	} else {
		resp.Summary = strings.TrimSpace(summary)
	}

	vetting.WriteJSON(w, http.StatusOK, resp)
}
