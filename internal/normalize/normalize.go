// Package normalize repairs and canonicalises raw email address
// strings: unicode look-alikes, display-name wrappers, obfuscated
// at/dot markers, stray punctuation, known domain and TLD typos and
// near-miss domains, then gates the result through a blocklist and a
// structural shape check.
package normalize

import (
	"log"
	"strings"

	"mailgroom/internal/rules"
)

// FuzzyOptions tunes nearest-candidate domain correction.
type FuzzyOptions struct {
	Enabled bool
	// Candidates extend the built-in pool; they never replace it.
	Candidates    []string
	MaxDistance   int
	MinConfidence float64
}

// Options configures a normalisation run. Zero values are not useful
// defaults; start from DefaultOptions and adjust.
type Options struct {
	// FixDomains and FixTlds are merged on top of the built-in tables.
	FixDomains map[string]string
	FixTlds    map[string]string
	// Blocklist replaces the built-in config wholesale when non-nil.
	Blocklist *rules.BlockConfig
	ASCIIOnly bool
	Fuzzy     FuzzyOptions
}

// DefaultOptions returns the standard settings: ASCII conversion on,
// fuzzy correction off with a distance cap of 5 and a confidence floor
// of 0.8 once enabled.
func DefaultOptions() Options {
	return Options{
		ASCIIOnly: true,
		Fuzzy: FuzzyOptions{
			MaxDistance:   5,
			MinConfidence: 0.8,
		},
	}
}

// Result is the outcome of one normalisation run. Email carries the
// best-effort transformed string even when Valid is false, so callers
// can show what was attempted; ChangeCodes lists which stages fired in
// pipeline order and Changes is its human-readable projection.
type Result struct {
	Email       string       `json:"email"`
	Valid       bool         `json:"valid"`
	Changes     []string     `json:"changes"`
	ChangeCodes []ChangeCode `json:"change_codes"`
}

type trail struct {
	codes []ChangeCode
}

func (t *trail) record(code ChangeCode, fired bool) {
	if fired {
		t.codes = append(t.codes, code)
	}
}

func (t *trail) result(email string, valid bool) Result {
	// Both slices stay non-nil so the JSON shape is always an array,
	// never null.
	res := Result{
		Email:       email,
		Valid:       valid,
		Changes:     make([]string, 0, len(t.codes)),
		ChangeCodes: t.codes,
	}
	if res.ChangeCodes == nil {
		res.ChangeCodes = []ChangeCode{}
	}
	for _, code := range t.codes {
		reason := code.Reason()
		if reason == "" {
			// Codes outside the closed set are dropped from the
			// human-readable projection, never surfaced.
			log.Printf("normalize: unknown change code %q", code)
			continue
		}
		res.Changes = append(res.Changes, reason)
	}
	return res
}

// Normalize runs the transformation stages in their fixed order, then
// the blocklist and shape gates. It never fails: a broken input comes
// back as an invalid Result, not an error.
func Normalize(raw string, opts Options) Result {
	var t trail
	if strings.TrimSpace(raw) == "" {
		return t.result("", false)
	}

	cur := raw

	cur = step(cur, &t, CodeNormalisedUnicodeSymbols, foldUnicodeSymbols)
	cur = step(cur, &t, CodeStrippedDisplayNameAndComments, stripDisplayName)
	cur = step(cur, &t, CodeDeobfuscatedAtAndDot, deobfuscate)
	cur = step(cur, &t, CodeTidiedPunctuationAndSpacing, tidyPunctuation)

	fixDomains := rules.MergeFixDomains(opts.FixDomains)
	fixTlds := rules.MergeFixTlds(opts.FixTlds)
	cur = step(cur, &t, CodeFixedDomainAndTldTypos, func(s string) (string, bool) {
		return applyTypoMaps(s, fixDomains, fixTlds)
	})

	if opts.Fuzzy.Enabled {
		cur = step(cur, &t, CodeFuzzyDomainCorrection, func(s string) (string, bool) {
			return fuzzyCorrectDomain(s, opts.Fuzzy.Candidates, opts.Fuzzy.MaxDistance, opts.Fuzzy.MinConfidence)
		})
	}
	if opts.ASCIIOnly {
		cur = step(cur, &t, CodeConvertedToASCII, toASCII)
	}
	cur = step(cur, &t, CodeLowercasedDomain, lowerDomain)

	// Blocklist before shape: a blocked address reports as blocked even
	// when its shape is also broken.
	if rules.Blocklisted(cur, blockConfig(opts)) {
		t.record(CodeBlockedByList, true)
		return t.result(cur, false)
	}
	if !LooksLikeEmail(cur) {
		t.record(CodeInvalidEmailShape, true)
		return t.result(cur, false)
	}
	return t.result(cur, true)
}

func blockConfig(opts Options) rules.BlockConfig {
	if opts.Blocklist != nil {
		return *opts.Blocklist
	}
	return rules.DefaultBlockConfig
}

func step(s string, t *trail, code ChangeCode, fn func(string) (string, bool)) string {
	out, changed := fn(s)
	t.record(code, changed)
	return out
}
