package treediff

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Op identifies the kind of a patch operation.
type Op string

const (
	// OpAdd inserts a value at a path (RFC 6902 "add").
	OpAdd = Op("add")
	// OpRemove deletes the value at a path (RFC 6902 "remove").
	OpRemove = Op("remove")
	// OpReplace swaps the value at a path (RFC 6902 "replace").
	OpReplace = Op("replace")
	// OpMove relocates a value from one path to another (RFC 6902 "move").
	OpMove = Op("move")
	// OpCopy duplicates a value from one path to another (RFC 6902 "copy").
	OpCopy = Op("copy")
	// OpTest asserts the value at a path without mutating (RFC 6902 "test").
	OpTest = Op("test")
	// OpAppend splices the elements of a list value individually at a
	// sequence position, where OpAdd would insert the list as one element.
	// Non-standard extension.
	OpAppend = Op("append")
)

// Operation is a single patch operation. Operations are immutable once
// constructed and are consumed strictly in list order by Apply.
//
// Prev optionally carries the value an operation displaced; Diff populates it
// on remove and replace operations so the resulting patch can be inverted.
type Operation struct {
	Op    Op
	Path  string
	From  string
	Value interface{}
	Prev  interface{}

	// wire-form field presence, tracked so that an explicit null member is
	// distinguishable from an absent one
	wire     bool
	hasPath  bool
	hasFrom  bool
	hasValue bool
	hasPrev  bool
}

// Patch is an ordered list of operations.
type Patch []Operation

// NewAdd returns an add operation.
func NewAdd(path string, value interface{}) Operation {
	return Operation{Op: OpAdd, Path: path, Value: value, hasPath: true, hasValue: true}
}

// NewRemove returns a remove operation.
func NewRemove(path string) Operation {
	return Operation{Op: OpRemove, Path: path, hasPath: true}
}

// NewReplace returns a replace operation.
func NewReplace(path string, value interface{}) Operation {
	return Operation{Op: OpReplace, Path: path, Value: value, hasPath: true, hasValue: true}
}

// NewMove returns a move operation.
func NewMove(from, path string) Operation {
	return Operation{Op: OpMove, Path: path, From: from, hasPath: true, hasFrom: true}
}

// NewCopy returns a copy operation.
func NewCopy(from, path string) Operation {
	return Operation{Op: OpCopy, Path: path, From: from, hasPath: true, hasFrom: true}
}

// NewTest returns a test operation.
func NewTest(path string, value interface{}) Operation {
	return Operation{Op: OpTest, Path: path, Value: value, hasPath: true, hasValue: true}
}

// NewAppend returns an append operation.
func NewAppend(path string, value interface{}) Operation {
	return Operation{Op: OpAppend, Path: path, Value: value, hasPath: true, hasValue: true}
}

func (o Op) needsValue() bool {
	switch o {
	case OpAdd, OpReplace, OpTest, OpAppend:
		return true
	}
	return false
}

func (o Op) needsFrom() bool {
	return o == OpMove || o == OpCopy
}

// validate checks the operation's kind and required fields before execution.
func (o Operation) validate() error {
	switch o.Op {
	case OpAdd, OpRemove, OpReplace, OpMove, OpCopy, OpTest, OpAppend:
	default:
		return fmt.Errorf("%w: %q", ErrUnrecognizedOp, string(o.Op))
	}
	if o.wire && !o.hasPath {
		return fmt.Errorf("%w: path", ErrMissingField)
	}
	if o.Op.needsValue() && !o.hasValue && o.Value == nil {
		return fmt.Errorf("%w: value", ErrMissingField)
	}
	if o.Op.needsFrom() && !o.hasFrom && o.From == "" {
		return fmt.Errorf("%w: from", ErrMissingField)
	}
	return nil
}

// MarshalJSON emits the RFC 6902 wire form, including the value member only
// when the operation carries one.
func (o Operation) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, 4)
	m["op"] = string(o.Op)
	m["path"] = o.Path
	if o.Op.needsFrom() {
		m["from"] = o.From
	}
	if o.Op.needsValue() && (o.hasValue || o.Value != nil) {
		m["value"] = o.Value
	}
	if o.hasPrev {
		m["prev"] = o.Prev
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes the wire form, recording which members were present
// so a literal null value is not mistaken for a missing one.
func (o *Operation) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = Operation{wire: true}
	if r, ok := raw["op"]; ok {
		if err := json.Unmarshal(r, (*string)(&o.Op)); err != nil {
			return err
		}
	}
	if r, ok := raw["path"]; ok {
		o.hasPath = true
		if err := json.Unmarshal(r, &o.Path); err != nil {
			return err
		}
	}
	if r, ok := raw["from"]; ok {
		o.hasFrom = true
		if err := json.Unmarshal(r, &o.From); err != nil {
			return err
		}
	}
	if r, ok := raw["value"]; ok {
		o.hasValue = true
		if err := json.Unmarshal(r, &o.Value); err != nil {
			return err
		}
	}
	if r, ok := raw["prev"]; ok {
		o.hasPrev = true
		if err := json.Unmarshal(r, &o.Prev); err != nil {
			return err
		}
	}
	return nil
}

// ParsePatch decodes patch text. Callers may submit either an operation
// array or a single bare operation object; the latter is normalized into a
// one-element list.
func ParsePatch(data []byte) (Patch, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var op Operation
		if err := json.Unmarshal(trimmed, &op); err != nil {
			return nil, fmt.Errorf("parsing operation: %w", err)
		}
		return Patch{op}, nil
	}

	var p Patch
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing patch: %w", err)
	}
	return p, nil
}
