// Package match finds the nearest known domain to an input string by
// bounded edit distance. It backs both automatic correction during
// normalisation and "did you mean" suggestions during validation.
package match

import (
	"strings"
	"unicode/utf8"

	"mailgroom/internal/editdist"
	"mailgroom/internal/rules"
)

// Options tunes a nearest-candidate search.
type Options struct {
	// Candidates are appended to the built-in pool; they never replace it.
	Candidates []string
	// MaxDistance caps how far a match may be; negative means unbounded.
	MaxDistance int
	// Normalize trims and lowercases both sides before comparing.
	Normalize bool
}

// DefaultOptions returns the matcher defaults: unbounded distance,
// normalisation on.
func DefaultOptions() Options {
	return Options{MaxDistance: -1, Normalize: true}
}

// Result describes the best candidate found. A Candidate of "" with
// Index -1 means nothing was within MaxDistance; Input always preserves
// the caller's raw argument.
type Result struct {
	Input     string  `json:"input"`
	Candidate string  `json:"candidate"`
	Distance  int     `json:"distance"`
	Score     float64 `json:"score"`
	Index     int     `json:"index"`
}

// Closest searches the built-in candidates plus opts.Candidates and
// returns the single lowest-distance match. Ties go to the earliest
// candidate in pool order, and an exact match stops the scan since
// nothing can beat distance zero.
func Closest(input string, opts Options) Result {
	pool := make([]string, 0, len(rules.DefaultCandidates)+len(opts.Candidates))
	pool = append(pool, rules.DefaultCandidates...)
	pool = append(pool, opts.Candidates...)

	needle := input
	if opts.Normalize {
		needle = strings.ToLower(strings.TrimSpace(needle))
	}

	best := Result{Input: input, Candidate: "", Distance: -1, Index: -1}
	for i, raw := range pool {
		cand := raw
		if opts.Normalize {
			cand = strings.ToLower(strings.TrimSpace(cand))
		}
		d := editdist.Bounded(needle, cand, opts.MaxDistance)
		if best.Index < 0 || d < best.Distance {
			best.Candidate = cand
			best.Distance = d
			best.Index = i
		}
		if best.Distance == 0 {
			break
		}
	}

	if best.Index < 0 || (opts.MaxDistance >= 0 && best.Distance > opts.MaxDistance) {
		return Result{Input: input, Candidate: "", Distance: best.Distance, Score: 0, Index: -1}
	}

	best.Score = score(needle, best.Candidate, best.Distance)
	return best
}

// score maps a distance to a [0,1] similarity relative to the longer of
// the two strings; two empty strings count as a perfect match.
func score(input, candidate string, distance int) float64 {
	n := utf8.RuneCountInString(input)
	if c := utf8.RuneCountInString(candidate); c > n {
		n = c
	}
	if n == 0 {
		return 1
	}
	s := 1 - float64(distance)/float64(n)
	if s < 0 {
		return 0
	}
	return s
}
