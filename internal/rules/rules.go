// Package rules holds the data side of email grooming: typo-fix tables,
// fuzzy-match candidate pools and the domain blocklist, plus loaders for
// caller-supplied rule documents.
package rules

import (
	"regexp"
	"strings"
)

// BlockRules lists domains to reject, matched against the lowercased
// domain portion of an address.
type BlockRules struct {
	Exact    []string `yaml:"exact" json:"exact"`
	Suffix   []string `yaml:"suffix" json:"suffix"`
	Wildcard []string `yaml:"wildcard" json:"wildcard"`
	TLDs     []string `yaml:"tlds" json:"tlds"`
}

// AllowRules lists domains that are never blocked, overriding every
// block rule.
type AllowRules struct {
	Exact []string `yaml:"exact" json:"exact"`
}

// BlockConfig is a full blocklist/allowlist rule set.
type BlockConfig struct {
	Block BlockRules `yaml:"block" json:"block"`
	Allow AllowRules `yaml:"allow" json:"allow"`
}

// Blocklisted reports whether the domain portion of email is rejected by
// cfg. Precedence is fixed: an allow.exact hit short-circuits everything,
// then block.exact, block.tlds, block.suffix, block.wildcard, and finally
// a built-in catch-all for example./test. domains. Addresses without an
// @ are never blocklisted.
func Blocklisted(email string, cfg BlockConfig) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	if domain == "" {
		return false
	}

	for _, allowed := range cfg.Allow.Exact {
		if domain == strings.ToLower(strings.TrimSpace(allowed)) {
			return false
		}
	}
	for _, blocked := range cfg.Block.Exact {
		if domain == strings.ToLower(strings.TrimSpace(blocked)) {
			return true
		}
	}
	for _, tld := range cfg.Block.TLDs {
		if suffixMatch(domain, tld) {
			return true
		}
	}
	for _, suffix := range cfg.Block.Suffix {
		if suffixMatch(domain, suffix) {
			return true
		}
	}
	for _, pattern := range cfg.Block.Wildcard {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if wildcardMatch(domain, pattern) {
			return true
		}
	}

	// Reserved-looking domains are rejected regardless of configuration.
	if strings.HasPrefix(domain, "example.") || strings.HasPrefix(domain, "test.") {
		return true
	}
	return false
}

func suffixMatch(domain, suffix string) bool {
	suffix = strings.ToLower(strings.TrimSpace(suffix))
	if suffix == "" {
		return false
	}
	if !strings.HasPrefix(suffix, ".") {
		suffix = "." + suffix
	}
	return strings.HasSuffix(domain, suffix) || domain == suffix[1:]
}

func wildcardMatch(domain, pattern string) bool {
	re, err := compileWildcard(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(domain)
}

// compileWildcard turns a glob pattern into an anchored case-insensitive
// regexp: * matches any run of characters, ? exactly one, everything
// else is literal.
func compileWildcard(pattern string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString("(?i)^")
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	return regexp.Compile(sb.String())
}

// Domain returns the lowercased domain portion of an address (after the
// last @), or "" when there is none.
func Domain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// MergeFixDomains layers caller corrections on top of the defaults;
// conflicting keys take the caller's value.
func MergeFixDomains(extra map[string]string) map[string]string {
	return mergeMaps(DefaultFixDomains, extra)
}

// MergeFixTlds layers caller TLD corrections on top of the defaults.
func MergeFixTlds(extra map[string]string) map[string]string {
	return mergeMaps(DefaultFixTlds, extra)
}

func mergeMaps(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[strings.ToLower(k)] = v
	}
	for k, v := range extra {
		out[strings.ToLower(k)] = v
	}
	return out
}
