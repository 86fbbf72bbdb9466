package rules

import "testing"

func TestBlocklistedPrecedence(t *testing.T) {
	cfg := BlockConfig{
		Block: BlockRules{Exact: []string{"corp.example.org"}},
		Allow: AllowRules{Exact: []string{"corp.example.org"}},
	}
	if Blocklisted("user@corp.example.org", cfg) {
		t.Fatalf("allow.exact must override block.exact")
	}
}

func TestBlocklisted(t *testing.T) {
	cfg := BlockConfig{
		Block: BlockRules{
			Exact:    []string{"Spam.com"},
			Suffix:   []string{".internal"},
			Wildcard: []string{"mail?.throwaway-*.net", ""},
			TLDs:     []string{".zz"},
		},
	}

	tests := []struct {
		email string
		want  bool
	}{
		{email: "user@spam.com", want: true},
		{email: "user@SPAM.COM", want: true},
		{email: "user@notspam.com", want: false},
		{email: "user@host.internal", want: true},
		{email: "user@mail1.throwaway-junk.net", want: true},
		{email: "user@mail12.throwaway-junk.net", want: false},
		{email: "user@host.zz", want: true},
		{email: "user@example.com", want: true},
		{email: "user@test.org", want: true},
		{email: "user@contest.org", want: false},
		{email: "no-at-sign", want: false},
		{email: "user@gmail.com", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.email, func(t *testing.T) {
			if got := Blocklisted(tc.email, cfg); got != tc.want {
				t.Fatalf("Blocklisted(%q) = %v, want %v", tc.email, got, tc.want)
			}
		})
	}
}

func TestDefaultBlockConfigCoversDisposables(t *testing.T) {
	for _, email := range []string{
		"a@mailinator.com",
		"a@sub.mailinator.com",
		"a@tempmail4u.net",
		"a@host.invalid",
	} {
		if !Blocklisted(email, DefaultBlockConfig) {
			t.Fatalf("expected default config to block %q", email)
		}
	}
}

func TestMergeFixDomains(t *testing.T) {
	merged := MergeFixDomains(map[string]string{
		"Gamil.com":  "corp-mail.com",
		"typo.local": "real.local",
	})
	if merged["gamil.com"] != "corp-mail.com" {
		t.Fatalf("caller key must override default, got %q", merged["gamil.com"])
	}
	if merged["typo.local"] != "real.local" {
		t.Fatalf("caller key missing")
	}
	if merged["hotmial.com"] != "hotmail.com" {
		t.Fatalf("default keys must survive the merge")
	}
}

func TestDomain(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{email: "user@Example.COM", want: "example.com"},
		{email: `"a@b"@real.org`, want: "real.org"},
		{email: "nodomain", want: ""},
		{email: "user@", want: ""},
	}
	for _, tc := range tests {
		if got := Domain(tc.email); got != tc.want {
			t.Fatalf("Domain(%q) = %q, want %q", tc.email, got, tc.want)
		}
	}
}

func TestParseJSON(t *testing.T) {
	good := []byte(`{"fix_domains": {"gmaail.com": "gmail.com"}, "candidates": ["corp.io"]}`)
	r, err := ParseJSON(good)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.FixDomains["gmaail.com"] != "gmail.com" {
		t.Fatalf("fix_domains not decoded")
	}
	if len(r.Candidates) != 1 || r.Candidates[0] != "corp.io" {
		t.Fatalf("candidates not decoded")
	}

	bad := []byte(`{"fix_domains": {"gmaail.com": 5}}`)
	if _, err := ParseJSON(bad); err == nil {
		t.Fatalf("expected schema violation")
	}

	unknown := []byte(`{"blockllist": {}}`)
	if _, err := ParseJSON(unknown); err == nil {
		t.Fatalf("expected unknown-field rejection")
	}
}
