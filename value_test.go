package treediff

import (
	"encoding/json"
	"testing"
)

func TestIsAssociative(t *testing.T) {
	cases := []struct {
		description string
		value       string // json
		expect      bool
	}{
		{"scalar", `1`, false},
		{"null", `null`, false},
		{"empty array", `[]`, false},
		{"empty object", `{}`, false},
		{"array", `[1,2]`, false},
		{"string keys", `{"a":1}`, true},
		{"contiguous index keys", `{"0":1,"1":2}`, false},
		{"single zero key", `{"0":1}`, false},
		{"gap in index keys", `{"0":1,"2":2}`, true},
		{"index key at length", `{"0":1,"1":2,"3":3}`, true},
		{"leading zero key", `{"00":1}`, true},
		{"negative key", `{"-1":1}`, true},
		{"mixed keys", `{"0":1,"a":2}`, true},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			var v interface{}
			if err := json.Unmarshal([]byte(c.value), &v); err != nil {
				t.Fatal(err)
			}
			if got := isAssociative(v); got != c.expect {
				t.Errorf("isAssociative(%s) = %t, want %t", c.value, got, c.expect)
			}
		})
	}
}

func TestParseIndex(t *testing.T) {
	cases := []struct {
		token  string
		index  int
		wantOK bool
	}{
		{"0", 0, true},
		{"1", 1, true},
		{"42", 42, true},
		{"", 0, false},
		{"01", 0, false},
		{"00", 0, false},
		{"-1", 0, false},
		{"1a", 0, false},
		{"a", 0, false},
	}

	for _, c := range cases {
		i, ok := parseIndex(c.token)
		if ok != c.wantOK || (ok && i != c.index) {
			t.Errorf("parseIndex(%q) = (%d, %t), want (%d, %t)", c.token, i, ok, c.index, c.wantOK)
		}
	}
}

func TestIsEmptyValue(t *testing.T) {
	empty := []interface{}{
		nil, false, "", float64(0), 0, int64(0), json.Number("0"),
		[]interface{}{}, map[string]interface{}{},
	}
	for _, v := range empty {
		if !isEmptyValue(v) {
			t.Errorf("isEmptyValue(%#v) = false, want true", v)
		}
	}

	nonEmpty := []interface{}{
		true, "x", float64(1), json.Number("0.5"),
		[]interface{}{nil}, map[string]interface{}{"a": nil},
	}
	for _, v := range nonEmpty {
		if isEmptyValue(v) {
			t.Errorf("isEmptyValue(%#v) = true, want false", v)
		}
	}
}
