package llrb

import "cmp"

// NodeView is a read-only snapshot of one node, sufficient for
// external diagnostics such as tree renderers. Child handles are nil
// (Handle.Nil) when the child is absent.
type NodeView[T cmp.Ordered] struct {
	Elem  T
	Red   bool
	Left  Handle
	Right Handle
}

// Root returns the handle of the tree's root, or the nil handle when
// the tree is empty.
func (t *Tree[T]) Root() Handle {
	return t.root
}

// At returns a read-only view of the node named by h. Passing a handle
// that does not name a live node of this tree is an invariant
// violation and panics.
func (t *Tree[T]) At(h Handle) NodeView[T] {
	n := t.alloc.at(h)

	return NodeView[T]{
		Elem:  n.elem,
		Red:   n.red,
		Left:  n.left,
		Right: n.right,
	}
}
