package treediff

import (
	"fmt"
	"strings"
)

// ParsePointer decomposes an RFC 6901 pointer string into its unescaped
// reference tokens. The empty string is the root pointer and decomposes to a
// nil token sequence; any other pointer must begin with "/".
func ParsePointer(pointer string) ([]string, error) {
	if pointer == "" {
		return nil, nil
	}
	if pointer[0] != '/' {
		return nil, fmt.Errorf("%w: %q does not begin with %q", ErrMalformedPointer, pointer, "/")
	}
	tokens := strings.Split(pointer[1:], "/")
	for i, t := range tokens {
		tokens[i] = UnescapeToken(t)
	}
	return tokens, nil
}

// FormatPointer composes unescaped tokens back into a pointer string.
// FormatPointer(ParsePointer(p)) == p for every valid pointer p.
func FormatPointer(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	escaped := make([]string, len(tokens))
	for i, t := range tokens {
		escaped[i] = EscapeToken(t)
	}
	return "/" + strings.Join(escaped, "/")
}

// EscapeToken escapes a reference token for embedding in a pointer:
// "~" becomes "~0", then "/" becomes "~1".
func EscapeToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

// UnescapeToken reverses EscapeToken. "~1" is restored before "~0"; the
// other order turns the escaped form of "~1" ("~01") into "/" instead of
// "~1".
func UnescapeToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}
