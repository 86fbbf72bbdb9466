package rules

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRulesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	doc := []byte(`
blocklist:
  block:
    exact: ["bad.example.org"]
  allow:
    exact: ["good.example.org"]
fix_domains:
  gmaail.com: gmail.com
fix_tlds:
  ".kom": ".com"
candidates:
  - Corp-Mail.io
  - ""
  - "not a hostname"
  - mycorp.co.uk
`)
	if err := os.WriteFile(path, doc, 0o600); err != nil {
		t.Fatal(err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if r.Blocklist == nil || len(r.Blocklist.Block.Exact) != 1 {
		t.Fatalf("blocklist not decoded: %+v", r.Blocklist)
	}
	if r.FixDomains["gmaail.com"] != "gmail.com" {
		t.Fatalf("fix_domains not decoded")
	}
	if r.FixTlds[".kom"] != ".com" {
		t.Fatalf("fix_tlds not decoded")
	}
	want := []string{"corp-mail.io", "mycorp.co.uk"}
	if len(r.Candidates) != len(want) {
		t.Fatalf("candidates = %v, want %v", r.Candidates, want)
	}
	for i := range want {
		if r.Candidates[i] != want[i] {
			t.Fatalf("candidates = %v, want %v", r.Candidates, want)
		}
	}
}

func TestLoadMissingPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if _, err := Load("/nonexistent/rules.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
