package fetch

import (
	"net/url"
	"strings"
)

// Plan is the ordered list of URLs one logical request attempts. It is
// built per call and never stored.
type Plan struct {
	Matched  string   // base URL the request was addressed to
	Attempts []string // original, same-route retry, then each alternate base
}

// BuildPlan matches target against bases. It returns false when target is
// empty, unparseable or not under any known base; such requests are made
// exactly once.
func BuildPlan(target string, bases []string) (Plan, bool) {
	if target == "" {
		return Plan{}, false
	}
	if _, err := url.Parse(target); err != nil {
		return Plan{}, false
	}

	matched := ""
	for _, base := range bases {
		if hasBasePrefix(target, base) {
			matched = base
			break
		}
	}
	if matched == "" {
		return Plan{}, false
	}

	suffix := strings.TrimPrefix(target, matched)
	attempts := []string{target, target}
	for _, base := range bases {
		if base == matched {
			continue
		}
		attempts = append(attempts, base+suffix)
	}

	return Plan{Matched: matched, Attempts: attempts}, true
}

// hasBasePrefix reports whether target starts with base on a URL boundary,
// so https://a.test does not match https://a.testing.com.
func hasBasePrefix(target, base string) bool {
	if base == "" || !strings.HasPrefix(target, base) {
		return false
	}
	rest := target[len(base):]
	return rest == "" || rest[0] == '/' || rest[0] == '?' || rest[0] == '#'
}
