package decoder

import "strings"

// Policy decides whether decoded text is acceptable content
type Policy interface {
	Allow(text string) bool
}

// PolicyFunc adapts a predicate to Policy
type PolicyFunc func(text string) bool

// Allow calls f
func (f PolicyFunc) Allow(text string) bool {
	return f(text)
}

// AllowAll accepts everything
var AllowAll Policy = PolicyFunc(func(string) bool { return true })

// DenyList rejects text containing any of words, ignoring case. Blank
// words are ignored.
func DenyList(words ...string) Policy {
	lowered := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			lowered = append(lowered, w)
		}
	}

	return PolicyFunc(func(text string) bool {
		text = strings.ToLower(text)
		for _, w := range lowered {
			if strings.Contains(text, w) {
				return false
			}
		}
		return true
	})
}
