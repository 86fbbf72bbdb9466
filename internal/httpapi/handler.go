// Package httpapi exposes normalisation, validation and domain
// suggestion over a small JSON API. Every call is stateless; the
// handler holds only configuration and the optional suggester.
package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"mailgroom/internal/normalize"
	"mailgroom/internal/rules"
	"mailgroom/internal/validate"
)

// Handler serves the JSON API. Base holds the server-wide option
// defaults (config file plus rules document); per-request options are
// layered on top.
type Handler struct {
	Base      normalize.Options
	Suggester normalize.Suggester
}

func NewHandler(base normalize.Options, suggester normalize.Suggester) *Handler {
	return &Handler{Base: base, Suggester: suggester}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/normalize", h.handleNormalize)
	mux.HandleFunc("/v1/validate", h.handleValidate)
	mux.HandleFunc("/v1/suggest", h.handleSuggest)
	mux.HandleFunc("/healthz", h.handleHealth)
}

// optionsPayload carries per-request option overrides. Pointer fields
// distinguish "absent" from zero so defaults survive partial documents.
type optionsPayload struct {
	FixDomains map[string]string  `json:"fix_domains"`
	FixTlds    map[string]string  `json:"fix_tlds"`
	Blocklist  *rules.BlockConfig `json:"blocklist"`
	ASCIIOnly  *bool              `json:"ascii_only"`
	Fuzzy      *fuzzyPayload      `json:"fuzzy"`
}

type fuzzyPayload struct {
	Enabled       bool     `json:"enabled"`
	Candidates    []string `json:"candidates"`
	MaxDistance   *int     `json:"max_distance"`
	MinConfidence *float64 `json:"min_confidence"`
}

func (h *Handler) options(p *optionsPayload) normalize.Options {
	opts := h.Base
	if p == nil {
		return opts
	}
	if p.FixDomains != nil {
		opts.FixDomains = p.FixDomains
	}
	if p.FixTlds != nil {
		opts.FixTlds = p.FixTlds
	}
	if p.Blocklist != nil {
		opts.Blocklist = p.Blocklist
	}
	if p.ASCIIOnly != nil {
		opts.ASCIIOnly = *p.ASCIIOnly
	}
	if p.Fuzzy != nil {
		opts.Fuzzy.Enabled = p.Fuzzy.Enabled
		if len(p.Fuzzy.Candidates) > 0 {
			opts.Fuzzy.Candidates = append(opts.Fuzzy.Candidates, p.Fuzzy.Candidates...)
		}
		if p.Fuzzy.MaxDistance != nil {
			opts.Fuzzy.MaxDistance = *p.Fuzzy.MaxDistance
		}
		if p.Fuzzy.MinConfidence != nil {
			opts.Fuzzy.MinConfidence = *p.Fuzzy.MinConfidence
		}
	}
	return opts
}

func (h *Handler) handleNormalize(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(w)
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Email   string          `json:"email"`
		Options *optionsPayload `json:"options"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	res := normalize.NormalizeWithSuggestion(r.Context(), req.Email, h.options(req.Options), h.Suggester)
	if !res.Valid {
		log.Printf("normalize request %s: invalid result codes=%v", reqID, res.ChangeCodes)
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	requestID(w)
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Email   string          `json:"email"`
		Options *optionsPayload `json:"options"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	base := h.options(req.Options)
	findings := validate.Validate(req.Email, validate.Options{
		FixDomains: base.FixDomains,
		FixTlds:    base.FixTlds,
		Blocklist:  base.Blocklist,
		ASCIIOnly:  base.ASCIIOnly,
		Fuzzy:      base.Fuzzy,
	})
	writeJSON(w, http.StatusOK, map[string]any{"findings": findings})
}

func (h *Handler) handleSuggest(w http.ResponseWriter, r *http.Request) {
	requestID(w)
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if h.Suggester == nil {
		http.Error(w, "suggestions not configured", http.StatusNotImplemented)
		return
	}
	var req struct {
		Domain string `json:"domain"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	sug, err := h.Suggester.Suggest(r.Context(), req.Domain)
	if err != nil {
		http.Error(w, "suggestion unavailable", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"suggestion": sug})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func requestID(w http.ResponseWriter) string {
	id := uuid.NewString()
	w.Header().Set("X-Request-Id", id)
	return id
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
