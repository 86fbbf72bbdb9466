package embed

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNoopDeterministic(t *testing.T) {
	p := NewNoop(64)
	a, err := p.Embed(context.Background(), []string{"gmail.com"})
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	b, err := p.Embed(context.Background(), []string{"gmail.com"})
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	for i := range a[0] {
		if a[0][i] != b[0][i] {
			t.Fatalf("noop vectors must be deterministic")
		}
	}
}

func TestNoopUnitNorm(t *testing.T) {
	p := NewNoop(64)
	vecs, err := p.Embed(context.Background(), []string{"gmail.com", "yahoo.com"})
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	for _, vec := range vecs {
		var sum float64
		for _, v := range vec {
			sum += float64(v) * float64(v)
		}
		if math.Abs(math.Sqrt(sum)-1) > 1e-3 {
			t.Fatalf("vector norm = %v, want 1", math.Sqrt(sum))
		}
	}
}

func TestOpenAIRequestsConfiguredDimensions(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float32{0.1, 0.2}}},
		})
	}))
	defer srv.Close()

	p := NewOpenAI("test-key", "text-embedding-3-small", 2)
	p.BaseURL = srv.URL
	vecs, err := p.Embed(context.Background(), []string{"gmail.com"})
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	if len(vecs) != 1 || len(vecs[0]) != 2 {
		t.Fatalf("got %v, want one 2-dim vector", vecs)
	}
	if dims, ok := got["dimensions"].(float64); !ok || int(dims) != p.Dim() {
		t.Fatalf("request dimensions = %v, want %d", got["dimensions"], p.Dim())
	}
}

func TestOpenAIErrorCarriesResponseDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := NewOpenAI("bad-key", "text-embedding-3-small", 8)
	p.BaseURL = srv.URL
	_, err := p.Embed(context.Background(), []string{"gmail.com"})
	if err == nil {
		t.Fatalf("expected error on 401")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "invalid api key") {
		t.Fatalf("error must carry status and body, got %v", err)
	}
}

func TestOpenAIEmbeddingCountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{}})
	}))
	defer srv.Close()

	p := NewOpenAI("test-key", "text-embedding-3-small", 8)
	p.BaseURL = srv.URL
	if _, err := p.Embed(context.Background(), []string{"gmail.com"}); err == nil {
		t.Fatalf("expected error on count mismatch")
	}
}

func TestDisabledErrors(t *testing.T) {
	if _, err := (Disabled{}).Embed(context.Background(), []string{"x"}); err == nil {
		t.Fatalf("disabled provider must error")
	}
}
