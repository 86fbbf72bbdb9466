package normalize

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"mailgroom/internal/match"
)

// Each stage takes the current string and reports whether it changed it.
// Stages are idempotent and run in a fixed order; the orchestrator
// records one change code per stage that fired.

var unicodeSymbols = strings.NewReplacer(
	"＠", "@",
	"．", ".",
	"。", ".",
)

func foldUnicodeSymbols(s string) (string, bool) {
	out := unicodeSymbols.Replace(s)
	return out, out != s
}

var (
	angleRE = regexp.MustCompile(`<([^<>]*)>`)
	parenRE = regexp.MustCompile(`\([^()]*\)`)
)

// stripDisplayName extracts the contents of an angle-bracket segment
// ("John Doe <j@x.com>" -> "j@x.com") and removes parenthesised
// comments.
func stripDisplayName(s string) (string, bool) {
	out := s
	if m := angleRE.FindStringSubmatch(out); m != nil {
		out = m[1]
	}
	out = parenRE.ReplaceAllString(out, "")
	return out, out != s
}

var (
	bracketAtRE  = regexp.MustCompile(`(?i)\s*[\[({]\s*at\s*[\])}]\s*`)
	spacedAtRE   = regexp.MustCompile(`(?i)\s+at\s+`)
	bracketDotRE = regexp.MustCompile(`(?i)\s*[\[({]\s*d[o0]t\s*[\])}]\s*`)
	spacedDotRE  = regexp.MustCompile(`(?i)\s+d[o0]t\s+`)
	multiAtRE    = regexp.MustCompile(`@@+`)
)

// deobfuscate rewrites "user [at] host [dot] com" style obfuscation back
// into a plain address, then collapses any run of @ signs down to one.
func deobfuscate(s string) (string, bool) {
	out := bracketAtRE.ReplaceAllString(s, "@")
	out = spacedAtRE.ReplaceAllString(out, "@")
	out = bracketDotRE.ReplaceAllString(out, ".")
	out = spacedDotRE.ReplaceAllString(out, ".")
	out = multiAtRE.ReplaceAllString(out, "@")
	return out, out != s
}

var (
	leadPunctRE  = regexp.MustCompile(`^[;,.]+`)
	trailPunctRE = regexp.MustCompile(`[;,.]+$`)
	aroundAtRE   = regexp.MustCompile(`\s*@\s*`)
	aroundDotRE  = regexp.MustCompile(`\s*\.\s*`)
	atDotRE      = regexp.MustCompile(`@\.+`)
	multiDotRE   = regexp.MustCompile(`\.\.+`)
)

func tidyPunctuation(s string) (string, bool) {
	out := strings.TrimSpace(s)
	out = leadPunctRE.ReplaceAllString(out, "")
	out = trailPunctRE.ReplaceAllString(out, "")
	out = strings.TrimSpace(out)
	out = aroundAtRE.ReplaceAllString(out, "@")
	out = aroundDotRE.ReplaceAllString(out, ".")
	out = atDotRE.ReplaceAllString(out, "@")

	// Commas in the domain portion are almost always meant as dots
	// ("gmail.co,uk").
	if at := strings.LastIndex(out, "@"); at >= 0 {
		out = out[:at+1] + strings.ReplaceAll(out[at+1:], ",", ".")
	}

	out = multiDotRE.ReplaceAllString(out, ".")
	return out, out != s
}

// applyTypoMaps fixes the domain against the merged whole-domain map,
// then rewrites any matching bad TLD suffix on the result, and strips
// surrounding double quotes from the local part. Lowercasing an
// otherwise-identical domain does not count as a change here; the final
// lowering stage owns that.
func applyTypoMaps(s string, fixDomains, fixTlds map[string]string) (string, bool) {
	at := strings.LastIndex(s, "@")
	if at < 0 {
		return s, false
	}
	local, domain := s[:at], s[at+1:]

	newLocal := local
	if len(newLocal) >= 2 && strings.HasPrefix(newLocal, `"`) && strings.HasSuffix(newLocal, `"`) {
		newLocal = newLocal[1 : len(newLocal)-1]
	}

	lower := strings.ToLower(domain)
	fixed := lower
	if repl, ok := fixDomains[lower]; ok {
		fixed = strings.ToLower(repl)
	}

	// Deterministic suffix order; Go map iteration is not.
	suffixes := make([]string, 0, len(fixTlds))
	for bad := range fixTlds {
		suffixes = append(suffixes, bad)
	}
	sort.Strings(suffixes)
	for _, bad := range suffixes {
		if strings.HasSuffix(fixed, bad) {
			fixed = strings.TrimSuffix(fixed, bad) + strings.ToLower(fixTlds[bad])
		}
	}

	changed := newLocal != local || fixed != lower
	if fixed == lower {
		// Keep the original casing when nothing but case would differ.
		fixed = domain
	}
	return newLocal + "@" + fixed, changed
}

// fuzzyCorrectDomain swaps the domain for the nearest known candidate,
// gated on the string already looking like an email and the match
// clearing the confidence threshold.
func fuzzyCorrectDomain(s string, candidates []string, maxDistance int, minConfidence float64) (string, bool) {
	if !LooksLikeEmail(s) {
		return s, false
	}
	at := strings.LastIndex(s, "@")
	local, domain := s[:at], s[at+1:]

	res := match.Closest(domain, match.Options{
		Candidates:  candidates,
		MaxDistance: maxDistance,
		Normalize:   true,
	})
	if res.Candidate == "" || res.Distance <= 0 || res.Score < minConfidence {
		return s, false
	}
	if strings.EqualFold(res.Candidate, domain) {
		return s, false
	}
	return local + "@" + res.Candidate, true
}

// Diacritics that do not decompose to base letter + combining mark.
var translit = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"ø", "o", "Ø", "O",
	"œ", "oe", "Œ", "OE",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "TH",
	"ł", "l", "Ł", "L",
	"ı", "i", "İ", "I",
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// toASCII transliterates common Latin diacritics, folds combining marks
// away and drops anything left outside printable ASCII.
func toASCII(s string) (string, bool) {
	out := translit.Replace(s)
	if folded, _, err := transform.String(stripMarks, out); err == nil {
		out = folded
	}

	var sb strings.Builder
	sb.Grow(len(out))
	for _, r := range out {
		if r >= 0x20 && r <= 0x7e {
			sb.WriteRune(r)
		}
	}
	out = sb.String()
	return out, out != s
}

func lowerDomain(s string) (string, bool) {
	at := strings.LastIndex(s, "@")
	if at < 0 {
		return s, false
	}
	out := s[:at+1] + strings.ToLower(s[at+1:])
	return out, out != s
}
