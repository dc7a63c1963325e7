package treediff

import (
	"fmt"
	"reflect"
	"strconv"
)

// Diff computes an ordered operation list transforming src into dst. It is
// total: any two values produce a list, and Apply(src, Diff(src, dst),
// false) yields a value ConsideredEqual to dst. Remove and replace
// operations carry the value they displace, so the list can be inverted
// with Invert.
//
// The list is deterministic but not formally minimal. Mapping keys are
// visited in sorted order.
func Diff(src, dst interface{}) Patch {
	d := &differ{}
	d.diffValues("", src, dst, 0)

	// ops are accumulated child-edits-first; the replay order is the reverse
	out := make(Patch, len(d.ops))
	for i, op := range d.ops {
		out[len(d.ops)-1-i] = op
	}
	return out
}

type differ struct {
	ops Patch
}

func (d *differ) emit(op Operation) {
	d.ops = append(d.ops, op)
}

func withPrev(op Operation, prev interface{}) Operation {
	op.Prev = prev
	op.hasPrev = true
	return op
}

func (d *differ) diffValues(path string, a, b interface{}, depth int) {
	if depth > maxDepth {
		// stay total past the recursion cap: swap the whole subtree
		if !reflect.DeepEqual(a, b) {
			d.emit(withPrev(NewReplace(path, b), a))
		}
		return
	}

	switch {
	case (isEmptyValue(a) || isEmptyValue(b)) && (isAssociative(a) || isAssociative(b)),
		isAssociative(a) && isAssociative(b):
		d.diffAssoc(path, a, b, depth)
	case isCollection(a) && !isAssociative(a) && isCollection(b) && !isAssociative(b):
		d.diffArray(path, a, b, depth)
	case !reflect.DeepEqual(a, b):
		d.emit(withPrev(NewReplace(path, b), a))
	}
}

func (d *differ) diffAssoc(path string, src, dst interface{}, depth int) {
	// an empty source grows into dst in one step rather than key by key
	if isEmptyValue(src) && !isEmptyValue(dst) {
		d.emit(withPrev(NewReplace(path, dst), src))
		return
	}
	// a scalar destination cannot be reached by per-key edits
	if !isCollection(dst) {
		if !reflect.DeepEqual(src, dst) {
			d.emit(withPrev(NewReplace(path, dst), src))
		}
		return
	}

	for _, k := range sortedKeys(src) {
		av, _ := assocGet(src, k)
		if bv, ok := assocGet(dst, k); ok {
			d.diffValues(path+"/"+EscapeToken(k), av, bv, depth+1)
		} else {
			d.emit(withPrev(NewRemove(path+"/"+EscapeToken(k)), av))
		}
	}
	for _, k := range sortedKeys(dst) {
		if _, ok := assocGet(src, k); !ok {
			bv, _ := assocGet(dst, k)
			d.emit(NewAdd(path+"/"+EscapeToken(k), bv))
		}
	}
}

func (d *differ) diffArray(path string, src, dst interface{}, depth int) {
	as, bs := seqElems(src), seqElems(dst)

	// trailing removes are emitted ascending so that after the final
	// reversal they replay highest index first, keeping every remove in
	// bounds against the shrinking sequence
	for i := len(bs); i < len(as); i++ {
		d.emit(withPrev(NewRemove(path+"/"+strconv.Itoa(i)), as[i]))
	}

	top := len(as)
	if len(bs) > top {
		top = len(bs)
	}
	for i := top - 1; i >= 0; i-- {
		switch {
		case i < len(as) && i < len(bs):
			d.diffValues(path+"/"+strconv.Itoa(i), as[i], bs[i], depth+1)
		case i >= len(as):
			// reversal replays trailing adds lowest index first
			d.emit(NewAdd(path+"/"+strconv.Itoa(i), bs[i]))
		}
	}
}

// Invert returns the operation list that undoes p: reversed, with each step
// inverted. Removes and replaces invert through the prior value Diff
// records; a patch whose removes or replaces lack one, or that contains a
// copy or append, fails with ErrNotInvertible.
func Invert(p Patch) (Patch, error) {
	out := make(Patch, 0, len(p))
	for i := len(p) - 1; i >= 0; i-- {
		op := p[i]
		switch op.Op {
		case OpAdd:
			out = append(out, withPrev(NewRemove(op.Path), op.Value))
		case OpRemove:
			if !op.hasPrev {
				return nil, fmt.Errorf("%w: remove %s carries no prior value", ErrNotInvertible, op.Path)
			}
			out = append(out, NewAdd(op.Path, op.Prev))
		case OpReplace:
			if !op.hasPrev {
				return nil, fmt.Errorf("%w: replace %s carries no prior value", ErrNotInvertible, op.Path)
			}
			out = append(out, withPrev(NewReplace(op.Path, op.Prev), op.Value))
		case OpMove:
			out = append(out, NewMove(op.Path, op.From))
		case OpTest:
			out = append(out, op)
		default:
			return nil, fmt.Errorf("%w: %s %s", ErrNotInvertible, op.Op, op.Path)
		}
	}
	return out, nil
}
