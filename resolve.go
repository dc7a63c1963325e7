package treediff

import "fmt"

// Get resolves an RFC 6901 pointer against a document and returns the value
// it addresses. The empty pointer addresses the document itself.
//
// With compat enabled, a scalar leaf held under an object key may be
// addressed through a trailing "0" token as if it were a one-element
// sequence, matching the shape produced by naive XML-to-tree converters.
func Get(doc interface{}, pointer string, compat bool) (interface{}, error) {
	tokens, err := ParsePointer(pointer)
	if err != nil {
		return nil, err
	}
	return resolve(doc, tokens, compat, 0)
}

func resolve(doc interface{}, tokens []string, compat bool, depth int) (interface{}, error) {
	if depth > maxDepth {
		return nil, ErrTooDeep
	}
	if len(tokens) == 0 {
		return doc, nil
	}

	tok := tokens[0]
	if !isCollection(doc) {
		return nil, fmt.Errorf("%w: cannot descend into non-collection at %q", ErrPathNotFound, tok)
	}
	child, ok := assocGet(doc, tok)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPathNotFound, tok)
	}

	// compat promotion: a next token of "0" may address the child itself,
	// unless the child is already sequence-like
	if compat && len(tokens) > 1 && tokens[1] == "0" &&
		isAssociative(doc) && !(isCollection(child) && !isAssociative(child)) {
		return resolve([]interface{}{child}, tokens[1:], compat, depth+1)
	}

	return resolve(child, tokens[1:], compat, depth+1)
}
