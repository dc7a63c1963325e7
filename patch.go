package treediff

import "fmt"

// Apply replays an operation list against a document, in list order, and
// returns the resulting document. The input document is never mutated:
// every operation rebuilds the parent chain from the modification point up
// to the root and shares untouched sibling subtrees with the original. If
// any operation fails the whole call fails and no result is produced, so
// the caller's document stays valid.
//
// With compat enabled, pointer traversal promotes scalar leaves to
// one-element sequences on demand, and after the full list succeeds a
// single post-pass collapses every one-element sequence back to its
// element.
func Apply(doc interface{}, patch Patch, compat bool) (interface{}, error) {
	out := doc
	for i, op := range patch {
		var err error
		out, err = applyOp(out, op, compat)
		if err != nil {
			return nil, fmt.Errorf("op %d (%s %s): %w", i, op.Op, op.Path, err)
		}
	}
	if compat {
		out = collapseSingletons(out, 0)
	}
	return out, nil
}

// ApplyOne applies a single operation, without the compat collapse pass.
func ApplyOne(doc interface{}, op Operation, compat bool) (interface{}, error) {
	return applyOp(doc, op, compat)
}

func applyOp(doc interface{}, op Operation, compat bool) (interface{}, error) {
	if err := op.validate(); err != nil {
		return nil, err
	}
	tokens, err := ParsePointer(op.Path)
	if err != nil {
		return nil, err
	}

	switch op.Op {
	case OpAdd, OpRemove, OpReplace, OpAppend:
		return doOp(doc, op.Op, tokens, op.Value, compat, 0)

	case OpMove, OpCopy:
		fromTokens, err := ParsePointer(op.From)
		if err != nil {
			return nil, err
		}
		val, err := resolve(doc, fromTokens, compat, 0)
		if err != nil {
			return nil, err
		}
		if op.Op == OpMove {
			// remove happens first, so a same-array destination index sees
			// the already-shifted document
			doc, err = doOp(doc, OpRemove, fromTokens, nil, compat, 0)
			if err != nil {
				return nil, err
			}
		}
		return doOp(doc, OpAdd, tokens, val, compat, 0)

	case OpTest:
		found, err := resolve(doc, tokens, compat, 0)
		if err != nil {
			return nil, err
		}
		if !ConsideredEqual(found, op.Value) {
			return nil, fmt.Errorf("%w: value at %q does not match", ErrTestFailed, op.Path)
		}
		return doc, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnrecognizedOp, string(op.Op))
}

// doOp descends to the operation's target and rebuilds the parent chain
// around the edit. Only Add, Remove, Replace, and Append reach doOp; Move,
// Copy, and Test are expressed in terms of them by applyOp.
func doOp(doc interface{}, kind Op, tokens []string, value interface{}, compat bool, depth int) (interface{}, error) {
	if depth > maxDepth {
		return nil, ErrTooDeep
	}

	if len(tokens) == 0 {
		switch kind {
		case OpAdd, OpReplace:
			return value, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoot, kind)
	}

	tok := tokens[0]
	if !isCollection(doc) {
		return nil, fmt.Errorf("%w: cannot descend into non-collection at %q", ErrPathNotFound, tok)
	}

	if len(tokens) > 1 {
		child, ok := assocGet(doc, tok)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrPathNotFound, tok)
		}
		// compat promotion mirrors the resolver, widened to any token that
		// looks like a sequence position
		if compat && arrayPosition(tokens[1]) && isAssociative(doc) &&
			!(isCollection(child) && !isAssociative(child)) {
			child = []interface{}{child}
		}
		updated, err := doOp(child, kind, tokens[1:], value, compat, depth+1)
		if err != nil {
			return nil, err
		}
		return withChild(doc, tok, updated), nil
	}

	// final token
	switch {
	case collectionLen(doc) == 0:
		return applyToEmpty(kind, tok, value)
	case isAssociative(doc):
		return applyToObject(doc, kind, tok, value)
	default:
		return applyToArray(doc, kind, tok, value)
	}
}

func arrayPosition(tok string) bool {
	return tok == "0" || tok == "1" || tok == "-"
}

// applyToEmpty edits an empty collection, which classifies as neither
// array-like nor object-like. Keys are set object-style; a first-element
// position produces a sequence, since the two spellings are equivalent
// under the classifier and the sequence form serializes cleaner.
func applyToEmpty(kind Op, tok string, value interface{}) (interface{}, error) {
	switch kind {
	case OpAdd, OpAppend:
		if tok == "0" || tok == "-" {
			if kind == OpAppend {
				return spliceElems(value), nil
			}
			return []interface{}{value}, nil
		}
		return map[string]interface{}{tok: value}, nil
	case OpReplace, OpRemove:
		return nil, fmt.Errorf("%w: %q", ErrPathNotFound, tok)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnrecognizedOp, string(kind))
}

func applyToObject(doc interface{}, kind Op, tok string, value interface{}) (interface{}, error) {
	out := mapCopy(doc)
	switch kind {
	case OpAdd, OpAppend:
		out[tok] = value
	case OpReplace:
		if _, ok := out[tok]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrPathNotFound, tok)
		}
		out[tok] = value
	case OpRemove:
		if _, ok := out[tok]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrPathNotFound, tok)
		}
		delete(out, tok)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedOp, string(kind))
	}
	return out, nil
}

func applyToArray(doc interface{}, kind Op, tok string, value interface{}) (interface{}, error) {
	elems := seqElems(doc)
	n := len(elems)

	idx := n
	if tok != "-" {
		i, ok := parseIndex(tok)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a sequence index", ErrInvalidKey, tok)
		}
		idx = i
	}

	switch kind {
	case OpAdd:
		if idx > n {
			return nil, fmt.Errorf("%w: index %d exceeds length %d", ErrOutOfBounds, idx, n)
		}
		return splice(elems, idx, 0, []interface{}{value}), nil
	case OpAppend:
		if idx > n {
			return nil, fmt.Errorf("%w: index %d exceeds length %d", ErrOutOfBounds, idx, n)
		}
		return splice(elems, idx, 0, spliceElems(value)), nil
	case OpReplace:
		if idx > n {
			return nil, fmt.Errorf("%w: index %d exceeds length %d", ErrOutOfBounds, idx, n)
		}
		return splice(elems, idx, 1, []interface{}{value}), nil
	case OpRemove:
		if idx >= n {
			return nil, fmt.Errorf("%w: index %d exceeds length %d", ErrOutOfBounds, idx, n)
		}
		return splice(elems, idx, 1, nil), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnrecognizedOp, string(kind))
}

// splice removes del elements at idx and inserts ins in their place,
// shifting subsequent indices.
func splice(elems []interface{}, idx, del int, ins []interface{}) []interface{} {
	end := idx + del
	if end > len(elems) {
		end = len(elems)
	}
	out := make([]interface{}, 0, len(elems)-(end-idx)+len(ins))
	out = append(out, elems[:idx]...)
	out = append(out, ins...)
	out = append(out, elems[end:]...)
	return out
}

// spliceElems is the element list an append operation splices in: the
// elements of a sequence-like value individually, any other value as a
// single element.
func spliceElems(value interface{}) []interface{} {
	if isCollection(value) && !isAssociative(value) {
		return seqElems(value)
	}
	return []interface{}{value}
}

// withChild rebuilds a collection with one child replaced, sharing all
// other children with the original.
func withChild(doc interface{}, tok string, child interface{}) interface{} {
	switch p := doc.(type) {
	case []interface{}:
		out := make([]interface{}, len(p))
		copy(out, p)
		if i, ok := parseIndex(tok); ok && i < len(out) {
			out[i] = child
		}
		return out
	case map[string]interface{}:
		out := mapCopy(p)
		out[tok] = child
		return out
	}
	return doc
}

// collapseSingletons is the compat-mode post-pass: bottom-up, every
// sequence-like collection of exactly one element is replaced by that
// element. It runs once, after the whole operation list.
func collapseSingletons(v interface{}, depth int) interface{} {
	if depth > maxDepth || !isCollection(v) {
		return v
	}
	if !isAssociative(v) {
		elems := seqElems(v)
		for i := range elems {
			elems[i] = collapseSingletons(elems[i], depth+1)
		}
		if len(elems) == 1 {
			return elems[0]
		}
		return elems
	}
	out := make(map[string]interface{}, collectionLen(v))
	for _, k := range sortedKeys(v) {
		child, _ := assocGet(v, k)
		out[k] = collapseSingletons(child, depth+1)
	}
	return out
}
