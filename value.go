package treediff

import (
	"encoding/json"
	"sort"
	"strconv"
)

// maxDepth bounds recursion over documents and pointers. Deeply nested
// adversarial input fails with ErrTooDeep instead of exhausting the stack.
const maxDepth = 10000

// isCollection reports whether v is one of the two compound value types.
func isCollection(v interface{}) bool {
	switch v.(type) {
	case []interface{}, map[string]interface{}:
		return true
	}
	return false
}

// isAssociative reports whether a collection currently behaves as an object.
// It is false for non-collections and for empty collections (an empty
// sequence and an empty mapping are indistinguishable, and both classify as
// sequence-like). A map is associative if any key is a non-numeric string, or
// if its integer keys are not exactly the contiguous range 0..len-1.
//
// The classifier is the single source of truth for array-vs-object shape
// everywhere in the engine. Shape can change between operations, so it is
// recomputed on every access and never cached.
func isAssociative(v interface{}) bool {
	switch x := v.(type) {
	case []interface{}:
		return false
	case map[string]interface{}:
		if len(x) == 0 {
			return false
		}
		for k := range x {
			i, ok := parseIndex(k)
			if !ok || i >= len(x) {
				return true
			}
		}
		// every key is a distinct canonical index below len, so the key set
		// is exactly 0..len-1
		return false
	}
	return false
}

// collectionLen returns the element count of a collection, 0 otherwise.
func collectionLen(v interface{}) int {
	switch x := v.(type) {
	case []interface{}:
		return len(x)
	case map[string]interface{}:
		return len(x)
	}
	return 0
}

// isEmptyValue reports whether v is empty or falsy in the unified value
// model: nil, false, zero numbers, the empty string, and empty collections.
func isEmptyValue(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case float64:
		return x == 0
	case int:
		return x == 0
	case int64:
		return x == 0
	case uint64:
		return x == 0
	case json.Number:
		f, err := x.Float64()
		return err == nil && f == 0
	case []interface{}:
		return len(x) == 0
	case map[string]interface{}:
		return len(x) == 0
	}
	return false
}

// parseIndex parses a canonical non-negative decimal index: digits only, no
// sign, no superfluous leading zero.
func parseIndex(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}

// seqElems returns a fresh ordered element slice for a sequence-like
// collection, reading map elements by their index keys.
func seqElems(v interface{}) []interface{} {
	switch x := v.(type) {
	case []interface{}:
		out := make([]interface{}, len(x))
		copy(out, x)
		return out
	case map[string]interface{}:
		out := make([]interface{}, len(x))
		for i := range out {
			out[i] = x[strconv.Itoa(i)]
		}
		return out
	}
	return nil
}

// sortedKeys returns a collection's keys in lexicographic order: map keys
// sorted as strings, sequence indexes as their decimal strings. Non-numeric
// map keys sort deterministically alongside numeric-looking ones because
// both are compared as strings.
func sortedKeys(v interface{}) []string {
	switch x := v.(type) {
	case []interface{}:
		keys := make([]string, len(x))
		for i := range x {
			keys[i] = strconv.Itoa(i)
		}
		return keys
	case map[string]interface{}:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys
	}
	return nil
}

// assocGet looks up a child by string key, treating sequence indexes as keys.
func assocGet(v interface{}, key string) (interface{}, bool) {
	switch x := v.(type) {
	case map[string]interface{}:
		child, ok := x[key]
		return child, ok
	case []interface{}:
		i, ok := parseIndex(key)
		if !ok || i >= len(x) {
			return nil, false
		}
		return x[i], true
	}
	return nil, false
}

// mapCopy returns a shallow map copy of an object-like (or empty) collection.
func mapCopy(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	out := make(map[string]interface{}, len(m))
	for k, val := range m {
		out[k] = val
	}
	return out
}
