package treediff

import "errors"

var (
	// ErrMalformedPointer indicates a pointer string that is non-empty and
	// does not begin with "/".
	ErrMalformedPointer = errors.New("malformed pointer")
	// ErrMissingField indicates an operation lacking a required member
	// (op, path, value, or from).
	ErrMissingField = errors.New("missing required field")
	// ErrUnrecognizedOp indicates an operation kind outside the seven
	// recognized kinds.
	ErrUnrecognizedOp = errors.New("unrecognized operation")
	// ErrPathNotFound indicates a traversal step referencing an absent key or
	// index, or a replace/remove of a non-existent key.
	ErrPathNotFound = errors.New("path not found")
	// ErrInvalidKey indicates a non-index token used against a sequence-like
	// collection, outside the "-" append-position exception.
	ErrInvalidKey = errors.New("invalid key for container")
	// ErrOutOfBounds indicates a numeric index outside the valid range for
	// the operation.
	ErrOutOfBounds = errors.New("index out of bounds")
	// ErrInvalidRoot indicates a remove, append, move-from, or copy-from
	// attempted directly on the whole document.
	ErrInvalidRoot = errors.New("invalid operation on document root")
	// ErrTestFailed indicates a test operation whose expected value does not
	// canonically equal the value found at its path.
	ErrTestFailed = errors.New("test failed")
	// ErrTooDeep indicates a document or pointer nested beyond the recursion
	// guard.
	ErrTooDeep = errors.New("document exceeds maximum nesting depth")
	// ErrNotInvertible indicates an operation list that cannot be inverted,
	// either because an operation kind has no inverse or because a remove or
	// replace does not carry its prior value.
	ErrNotInvertible = errors.New("patch is not invertible")
)
