package normalize

import "strings"

const (
	localDeny  = " \"<>;,()[]{}"
	domainDeny = " ;,(){}<>_+[]"
)

// LooksLikeEmail is a cheap structural gate, deliberately looser than
// the RFC grammar: it accepts unusual but plausible addresses while
// rejecting obviously broken shapes.
func LooksLikeEmail(s string) bool {
	if s == "" {
		return false
	}
	if strings.Contains(s, "..") {
		return false
	}
	if strings.Count(s, "@") != 1 {
		return false
	}

	at := strings.Index(s, "@")
	local, domain := s[:at], s[at+1:]

	if local == "" || strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	if strings.ContainsAny(local, localDeny) {
		return false
	}

	if domain == "" || strings.ContainsAny(domain, domainDeny) {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, "-") || strings.HasSuffix(domain, "-") {
		return false
	}

	tld := domain[strings.LastIndex(domain, ".")+1:]
	if len(tld) < 2 {
		return false
	}
	for _, r := range tld {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
