package normalize

import (
	"context"

	"mailgroom/internal/rules"
)

// Suggestion is an AI-sourced domain correction for an address the
// pipeline could not repair.
type Suggestion struct {
	Domain     string  `json:"domain"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// Suggester produces a domain suggestion, or nil when there is no
// confident match. It may block on network or model inference; callers
// control timeout and cancellation through ctx.
type Suggester interface {
	Suggest(ctx context.Context, domain string) (*Suggestion, error)
}

// AIResult extends Result with an optional suggestion.
type AIResult struct {
	Result
	AI *Suggestion `json:"ai,omitempty"`
}

// NormalizeWithSuggestion runs Normalize and, when the result is
// invalid, asks the suggester about the domain of the original raw
// input. Suggester failures are swallowed: a broken suggestion service
// must never change the normalisation outcome. A suggested domain that
// is itself blocklisted is discarded.
func NormalizeWithSuggestion(ctx context.Context, raw string, opts Options, suggester Suggester) AIResult {
	base := Normalize(raw, opts)
	if base.Valid || suggester == nil {
		return AIResult{Result: base}
	}

	domain := rules.Domain(raw)
	if domain == "" {
		return AIResult{Result: base}
	}

	sug, err := suggester.Suggest(ctx, domain)
	if err != nil || sug == nil {
		return AIResult{Result: base}
	}
	if rules.Blocklisted("@"+sug.Domain, blockConfig(opts)) {
		return AIResult{Result: base}
	}
	return AIResult{Result: base, AI: sug}
}
