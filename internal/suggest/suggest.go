// Package suggest proposes domain corrections by embedding similarity,
// gated by edit distance so the model cannot suggest a domain that is
// textually unrelated to what the user typed.
package suggest

import (
	"context"
	"fmt"
	"math"
	"strings"

	"mailgroom/internal/editdist"
	"mailgroom/internal/embed"
	"mailgroom/internal/normalize"
	"mailgroom/internal/rules"
)

const (
	defaultThreshold = 0.72
	defaultMaxEdits  = 4
)

// Options tunes a Suggester.
type Options struct {
	// Candidates extend the built-in pool; they never replace it.
	Candidates []string
	// Threshold is the cosine-similarity floor; 0 means the default.
	Threshold float64
	// MaxEdits caps the edit distance between input and suggestion;
	// 0 means the default.
	MaxEdits int
}

// Suggester implements normalize.Suggester on top of an embedding
// provider and a cache with caller-controlled lifetime.
type Suggester struct {
	provider  embed.Provider
	cache     Cache
	pool      []string
	threshold float64
	maxEdits  int
}

func New(provider embed.Provider, cache Cache, opts Options) *Suggester {
	if cache == nil {
		cache = NewMemoryCache()
	}
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = defaultThreshold
	}
	maxEdits := opts.MaxEdits
	if maxEdits <= 0 {
		maxEdits = defaultMaxEdits
	}
	pool := make([]string, 0, len(rules.DefaultCandidates)+len(opts.Candidates))
	pool = append(pool, rules.DefaultCandidates...)
	pool = append(pool, opts.Candidates...)
	return &Suggester{
		provider:  provider,
		cache:     cache,
		pool:      pool,
		threshold: threshold,
		maxEdits:  maxEdits,
	}
}

// Suggest returns the most similar candidate domain, or nil when no
// candidate clears both the similarity threshold and the edit-distance
// cap. An unusable provider surfaces as an error; callers treat it the
// same as no suggestion.
func (s *Suggester) Suggest(ctx context.Context, domain string) (*normalize.Suggestion, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return nil, nil
	}

	vec, err := s.embedOne(ctx, domain)
	if err != nil {
		return nil, err
	}

	bestSim := -1.0
	bestIdx := -1
	for i, cand := range s.pool {
		cv, err := s.embedOne(ctx, cand)
		if err != nil {
			return nil, err
		}
		sim := cosine(vec, cv)
		if sim > bestSim {
			bestSim = sim
			bestIdx = i
		}
	}
	if bestIdx < 0 || bestSim < s.threshold {
		return nil, nil
	}

	best := s.pool[bestIdx]
	if best == domain {
		return nil, nil
	}
	if editdist.Bounded(domain, best, s.maxEdits) > s.maxEdits {
		return nil, nil
	}

	return &normalize.Suggestion{
		Domain:     best,
		Confidence: bestSim,
		Reason:     "embedding_similarity",
	}, nil
}

func (s *Suggester) embedOne(ctx context.Context, text string) ([]float32, error) {
	if vec, ok := s.cache.Get(ctx, text); ok {
		return vec, nil
	}
	vecs, err := s.provider.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("provider %s returned %d vectors for one text", s.provider.Name(), len(vecs))
	}
	s.cache.Put(ctx, text, vecs[0])
	return vecs[0], nil
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
