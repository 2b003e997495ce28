package svg

import "errors"

// ErrTooFewOperands is returned when a selection does not yield the
// two elements a path operation needs.
var ErrTooFewOperands = errors.New("need at least two operable elements")

// DocumentOrder returns the members of ids ordered by their preorder
// position in the document. Ids not present in the document are
// dropped. The traversal stops as soon as every requested id has been
// seen, so selections near the top of a large document stay cheap.
func DocumentOrder(root *Element, ids []string) []string {
	pending := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		pending[id] = struct{}{}
	}

	ordered := make([]string, 0, len(ids))
	walk(root, func(e *Element) bool {
		id := e.ID()
		if _, ok := pending[id]; ok {
			ordered = append(ordered, id)
			delete(pending, id)
		}
		return len(pending) > 0
	})
	return ordered
}

// SplitTop orders ids by document position and splits off the last
// (top-most in z-order) element as the operation's reference shape.
// The remaining operands keep document order.
func SplitTop(root *Element, ids []string) (top string, operands []string, err error) {
	ordered := DocumentOrder(root, ids)
	if len(ordered) < 2 {
		return "", nil, ErrTooFewOperands
	}
	top = ordered[len(ordered)-1]
	operands = ordered[:len(ordered)-1]
	return top, operands, nil
}
