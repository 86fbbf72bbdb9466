// Package validate inspects an email address without mutating it: each
// check runs independently and every failure is reported as a finding.
package validate

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"mailgroom/internal/match"
	"mailgroom/internal/normalize"
	"mailgroom/internal/rules"
)

// Code is a machine-readable tag for a validation outcome.
type Code string

const (
	CodeValid              Code = "VALID"
	CodeEmpty              Code = "EMPTY"
	CodeInvalidFormat      Code = "INVALID_FORMAT"
	CodeBlocklisted        Code = "BLOCKLISTED"
	CodeInvalidDomain      Code = "INVALID_DOMAIN"
	CodeInvalidTLD         Code = "INVALID_TLD"
	CodeNonASCIICharacters Code = "NON_ASCII_CHARACTERS"
	CodeDomainSuggestion   Code = "DOMAIN_SUGGESTION"
)

// DomainSuggestion is a "did you mean" hint attached to a
// DOMAIN_SUGGESTION finding.
type DomainSuggestion struct {
	OriginalDomain  string  `json:"original_domain"`
	SuggestedDomain string  `json:"suggested_domain"`
	Confidence      float64 `json:"confidence"`
}

// Finding is one validation outcome. A call returns either a list of
// failures or a single synthetic VALID finding, never both.
type Finding struct {
	IsValid    bool              `json:"is_valid"`
	Code       Code              `json:"validation_code"`
	Message    string            `json:"validation_message"`
	Suggestion *DomainSuggestion `json:"suggestion,omitempty"`
}

// Options configures a validation run; start from DefaultOptions.
type Options struct {
	// FixDomains and FixTlds extend the built-in typo tables used for
	// the known-typo membership checks.
	FixDomains map[string]string
	FixTlds    map[string]string
	// Blocklist replaces the built-in config wholesale when non-nil.
	Blocklist *rules.BlockConfig
	ASCIIOnly bool
	Fuzzy     normalize.FuzzyOptions
}

// DefaultOptions mirrors the normaliser defaults: ASCII check on, fuzzy
// suggestions off.
func DefaultOptions() Options {
	return Options{
		ASCIIOnly: true,
		Fuzzy: normalize.FuzzyOptions{
			MaxDistance:   5,
			MinConfidence: 0.8,
		},
	}
}

// Validate runs every check against email and reports all failures.
// Unlike normalisation it never corrects anything; the address is only
// read. Zero failures collapse into one synthetic VALID finding.
func Validate(email string, opts Options) []Finding {
	var findings []Finding
	fail := func(code Code, msg string) {
		findings = append(findings, Finding{Code: code, Message: msg})
	}

	if strings.TrimSpace(email) == "" {
		fail(CodeEmpty, "Email address is empty")
	}

	if !normalize.LooksLikeEmail(email) {
		fail(CodeInvalidFormat, "Email address is not correctly formatted")
	}

	domain := rules.Domain(email)

	fixDomains := rules.MergeFixDomains(opts.FixDomains)
	if _, known := fixDomains[domain]; domain != "" && known {
		fail(CodeInvalidDomain, fmt.Sprintf("Domain %q is a known misspelling", domain))
	}

	if domain != "" {
		if bad := matchTldTypo(domain, rules.MergeFixTlds(opts.FixTlds)); bad != "" {
			fail(CodeInvalidTLD, fmt.Sprintf("Domain ends in known TLD misspelling %q", bad))
		}
	}

	if rules.Blocklisted(email, blockConfig(opts)) {
		fail(CodeBlocklisted, "Domain is on the blocklist")
	}

	if opts.ASCIIOnly && !isASCII(email) {
		fail(CodeNonASCIICharacters, "Email address contains non-ASCII characters")
	}

	if opts.Fuzzy.Enabled && domain != "" {
		if sug := fuzzySuggestion(domain, opts.Fuzzy); sug != nil {
			findings = append(findings, Finding{
				Code:       CodeDomainSuggestion,
				Message:    fmt.Sprintf("Domain may be a misspelling of %q", sug.SuggestedDomain),
				Suggestion: sug,
			})
		}
	}

	if len(findings) == 0 {
		return []Finding{{IsValid: true, Code: CodeValid, Message: "Email address is valid"}}
	}
	return findings
}

func blockConfig(opts Options) rules.BlockConfig {
	if opts.Blocklist != nil {
		return *opts.Blocklist
	}
	return rules.DefaultBlockConfig
}

func matchTldTypo(domain string, fixTlds map[string]string) string {
	suffixes := make([]string, 0, len(fixTlds))
	for bad := range fixTlds {
		suffixes = append(suffixes, bad)
	}
	sort.Strings(suffixes)
	for _, bad := range suffixes {
		if strings.HasSuffix(domain, bad) {
			return bad
		}
	}
	return ""
}

func fuzzySuggestion(domain string, opts normalize.FuzzyOptions) *DomainSuggestion {
	res := match.Closest(domain, match.Options{
		Candidates:  opts.Candidates,
		MaxDistance: opts.MaxDistance,
		Normalize:   true,
	})
	if res.Candidate == "" || res.Distance <= 0 || res.Score < opts.MinConfidence {
		return nil
	}
	if strings.EqualFold(res.Candidate, domain) {
		return nil
	}
	return &DomainSuggestion{
		OriginalDomain:  domain,
		SuggestedDomain: res.Candidate,
		Confidence:      res.Score,
	}
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
