// Package treediff is a hierarchical diff & patch engine for JSON-like tree
// values, implementing the operation semantics of RFC 6902 (JSON Patch) and
// the pointer addressing of RFC 6901 (JSON Pointer), plus a non-standard
// "append" operation and an optional compatibility mode for trees produced by
// naive XML-to-tree converters.
//
// Instead of operating on JSON text, treediff operates on document trees
// consisting of the go types created by unmarshaling from JSON, which are two
// compound types:
//
//	map[string]interface{}
//	[]interface{}
//
// and the scalar types string, float64, int, int64, json.Number, bool, nil.
// By operating on decoded values treediff can process documents that arrived
// in other encodings, for example decoded YAML or CBOR.
//
// Whether a compound value behaves as an array or as an object is not a fixed
// property of its go type: it is derived from its current key layout every
// time it is inspected. An empty collection is sequence-like, and a map whose
// keys are exactly the contiguous decimal strings "0".."n-1" is sequence-like
// too, so map[string]interface{}{"0": v} and []interface{}{v} are
// interchangeable throughout the engine. This mirrors the unified
// array/object value model of the dynamic runtimes this package exchanges
// patches with.
//
// Diff produces an ordered operation list transforming one tree into another;
// Apply replays an operation list against a tree, building the result with
// copy-on-write so the input document is never modified. See the fixture
// subpackage for a record-driven conformance harness and cmd/treediff for a
// command line interface.
package treediff
