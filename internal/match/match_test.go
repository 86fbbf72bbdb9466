package match

import (
	"math"
	"testing"
)

func TestClosestExactMatch(t *testing.T) {
	res := Closest("  GMAIL.COM ", DefaultOptions())
	if res.Candidate != "gmail.com" {
		t.Fatalf("candidate = %q, want gmail.com", res.Candidate)
	}
	if res.Distance != 0 {
		t.Fatalf("distance = %d, want 0", res.Distance)
	}
	if res.Score != 1 {
		t.Fatalf("score = %v, want 1", res.Score)
	}
	if res.Input != "  GMAIL.COM " {
		t.Fatalf("input must preserve the raw argument, got %q", res.Input)
	}
}

func TestClosestNearMatch(t *testing.T) {
	res := Closest("gmai.com", DefaultOptions())
	if res.Candidate != "gmail.com" {
		t.Fatalf("candidate = %q, want gmail.com", res.Candidate)
	}
	if res.Distance != 1 {
		t.Fatalf("distance = %d, want 1", res.Distance)
	}
	want := 1 - 1.0/9.0
	if math.Abs(res.Score-want) > 1e-9 {
		t.Fatalf("score = %v, want %v", res.Score, want)
	}
}

func TestClosestThresholdExclusion(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxDistance = 1
	res := Closest("zzzzzzzz.zz", opts)
	if res.Candidate != "" || res.Index != -1 {
		t.Fatalf("expected no acceptable match, got %+v", res)
	}
	if res.Score != 0 {
		t.Fatalf("score = %v, want 0", res.Score)
	}
}

func TestClosestCallerCandidatesAppend(t *testing.T) {
	opts := DefaultOptions()
	opts.Candidates = []string{"corp-mail.example-company.io"}
	res := Closest("corp-mail.example-company.oi", opts)
	if res.Candidate != "corp-mail.example-company.io" {
		t.Fatalf("caller candidate not searched, got %q", res.Candidate)
	}
	// Caller candidates are appended after the built-in pool.
	if res.Index != 30 {
		t.Fatalf("index = %d, want 30", res.Index)
	}

	// Defaults stay in the pool even with caller candidates supplied.
	res = Closest("gmai.com", opts)
	if res.Candidate != "gmail.com" {
		t.Fatalf("default candidates must remain searchable, got %q", res.Candidate)
	}
}

func TestClosestTieBreakFirstOccurrence(t *testing.T) {
	opts := Options{Normalize: true, MaxDistance: -1, Candidates: []string{"abcx", "abcy"}}
	res := Closest("abcz", opts)
	if res.Candidate != "abcx" {
		t.Fatalf("tie must go to the earlier candidate, got %q", res.Candidate)
	}
}
