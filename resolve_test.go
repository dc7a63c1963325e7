package treediff

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGet(t *testing.T) {
	cases := []struct {
		description string
		doc         string
		pointer     string
		compat      bool
		expect      interface{}
	}{
		{"root", `{"a":1}`, "", false, map[string]interface{}{"a": float64(1)}},
		{"object key", `{"a":1}`, "/a", false, float64(1)},
		{"nested key", `{"a":{"b":"x"}}`, "/a/b", false, "x"},
		{"array index", `[10,20,30]`, "/1", false, float64(20)},
		{"mixed path", `{"a":[{"b":true}]}`, "/a/0/b", false, true},
		{"escaped slash", `{"a/b":1}`, "/a~1b", false, float64(1)},
		{"escaped tilde", `{"m~n":1}`, "/m~0n", false, float64(1)},
		{"index-keyed object", `{"a":{"0":"x","1":"y"}}`, "/a/1", false, "y"},
		{"compat scalar as one-element sequence", `{"foo":"x"}`, "/foo/0", true, "x"},
		{"compat nested scalar", `{"a":{"b":1}}`, "/a/b/0", true, float64(1)},
		{"compat object leaf promoted", `{"a":{"b":1}}`, "/a/0/b", true, float64(1)},
		{"compat real sequence untouched", `{"a":[10,20]}`, "/a/0", true, float64(10)},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			var doc interface{}
			if err := json.Unmarshal([]byte(c.doc), &doc); err != nil {
				t.Fatal(err)
			}
			got, err := Get(doc, c.pointer, c.compat)
			if err != nil {
				t.Fatalf("Get error: %s", err)
			}
			if diff := cmp.Diff(c.expect, got); diff != "" {
				t.Errorf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetErrors(t *testing.T) {
	cases := []struct {
		description string
		doc         string
		pointer     string
		compat      bool
		wantErr     error
	}{
		{"missing key", `{"a":1}`, "/b", false, ErrPathNotFound},
		{"index out of range", `[1,2]`, "/2", false, ErrPathNotFound},
		{"leading zero index", `[1,2]`, "/01", false, ErrPathNotFound},
		{"descend into scalar", `{"a":1}`, "/a/b", false, ErrPathNotFound},
		{"scalar leaf without compat", `{"foo":"x"}`, "/foo/0", false, ErrPathNotFound},
		{"malformed pointer", `{"a":1}`, "a", false, ErrMalformedPointer},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			var doc interface{}
			if err := json.Unmarshal([]byte(c.doc), &doc); err != nil {
				t.Fatal(err)
			}
			if _, err := Get(doc, c.pointer, c.compat); !errors.Is(err, c.wantErr) {
				t.Errorf("Get error = %v, want %v", err, c.wantErr)
			}
		})
	}
}

func TestGetDeeplyNested(t *testing.T) {
	doc := interface{}("leaf")
	pointer := ""
	for i := 0; i < maxDepth+10; i++ {
		doc = []interface{}{doc}
		pointer += "/0"
	}
	if _, err := Get(doc, pointer, false); !errors.Is(err, ErrTooDeep) {
		t.Errorf("Get error = %v, want ErrTooDeep", err)
	}
}
