package treediff

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePointer(t *testing.T) {
	cases := []struct {
		description string
		pointer     string
		expect      []string
	}{
		{"root", "", nil},
		{"single token", "/a", []string{"a"}},
		{"nested tokens", "/a/b/c", []string{"a", "b", "c"}},
		{"numeric tokens", "/0/10", []string{"0", "10"}},
		{"empty token", "/", []string{""}},
		{"escaped slash", "/a~1b", []string{"a/b"}},
		{"escaped tilde", "/m~0n", []string{"m~n"}},
		{"tilde then digit one", "/x~01", []string{"x~1"}},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			tokens, err := ParsePointer(c.pointer)
			if err != nil {
				t.Fatalf("ParsePointer error: %s", err)
			}
			if diff := cmp.Diff(c.expect, tokens); diff != "" {
				t.Errorf("token mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParsePointerMalformed(t *testing.T) {
	for _, p := range []string{"a", "a/b", "~1"} {
		if _, err := ParsePointer(p); !errors.Is(err, ErrMalformedPointer) {
			t.Errorf("ParsePointer(%q) error = %v, want ErrMalformedPointer", p, err)
		}
	}
}

func TestPointerRoundTrip(t *testing.T) {
	pointers := []string{
		"",
		"/a",
		"/a/b/c",
		"/a~1b",
		"/m~0n",
		"/x~01",
		"/~0~1/~1~0",
		"/0/-",
	}

	for _, p := range pointers {
		tokens, err := ParsePointer(p)
		if err != nil {
			t.Fatalf("ParsePointer(%q) error: %s", p, err)
		}
		if got := FormatPointer(tokens); got != p {
			t.Errorf("FormatPointer(ParsePointer(%q)) = %q", p, got)
		}
	}
}

func TestEscapeToken(t *testing.T) {
	cases := []struct {
		raw, escaped string
	}{
		{"a", "a"},
		{"a/b", "a~1b"},
		{"m~n", "m~0n"},
		{"~1", "~01"},
		{"~/", "~0~1"},
	}

	for _, c := range cases {
		if got := EscapeToken(c.raw); got != c.escaped {
			t.Errorf("EscapeToken(%q) = %q, want %q", c.raw, got, c.escaped)
		}
		if got := UnescapeToken(c.escaped); got != c.raw {
			t.Errorf("UnescapeToken(%q) = %q, want %q", c.escaped, got, c.raw)
		}
	}
}
