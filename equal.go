package treediff

import "encoding/json"

// ConsideredEqual reports canonical structural equality between two values:
// mapping key order is ignored (RFC 6902 section 4.6), sequence order is
// significant, and shape flows through the associativity classifier, so an
// empty mapping equals an empty sequence and {"0": v} equals [v]. Numbers
// compare by numeric value across int, int64, uint64, float64, and
// json.Number.
func ConsideredEqual(a, b interface{}) bool {
	return consideredEqual(a, b, 0)
}

func consideredEqual(a, b interface{}, depth int) bool {
	if depth > maxDepth {
		// values nested beyond the guard are never considered equal
		return false
	}

	aColl, bColl := isCollection(a), isCollection(b)
	if aColl != bColl {
		return false
	}
	if !aColl {
		return scalarEqual(a, b)
	}
	if collectionLen(a) != collectionLen(b) {
		return false
	}

	aAssoc, bAssoc := isAssociative(a), isAssociative(b)
	if aAssoc != bAssoc {
		return false
	}
	if !aAssoc {
		as, bs := seqElems(a), seqElems(b)
		for i := range as {
			if !consideredEqual(as[i], bs[i], depth+1) {
				return false
			}
		}
		return true
	}

	aks, bks := sortedKeys(a), sortedKeys(b)
	for i := range aks {
		if aks[i] != bks[i] {
			return false
		}
	}
	for _, k := range aks {
		av, _ := assocGet(a, k)
		bv, _ := assocGet(b, k)
		if !consideredEqual(av, bv, depth+1) {
			return false
		}
	}
	return true
}

func scalarEqual(a, b interface{}) bool {
	if af, ok := numericValue(a); ok {
		bf, ok := numericValue(b)
		return ok && af == bf
	}

	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	}
	return false
}

func numericValue(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}
	return 0, false
}
