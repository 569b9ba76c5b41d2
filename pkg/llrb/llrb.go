// Package llrb implements an ordered set of comparable elements backed
// by a left-leaning red-black tree. Membership tests, insertion (with
// overwrite on duplicates) and removal of the minimum element all run
// in O(log N) time.
//
// Nodes live in an arena [Allocator] and reference each other through
// opaque integer handles instead of pointers; freed slots are recycled
// through a LIFO free list. The set is not safe for concurrent use -
// callers needing that must serialize access externally.
package llrb

import "cmp"

// Tree is an ordered set of elements. The zero value is not usable;
// construct trees with New or Singleton.
type Tree[T cmp.Ordered] struct {
	alloc *Allocator[T]
	root  Handle
}

// New creates an empty set.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{alloc: NewAllocator[T]()}
}

// Singleton creates a set holding exactly one element.
func Singleton[T cmp.Ordered](elem T) *Tree[T] {
	t := New[T]()
	t.root = t.alloc.malloc(elem, false)

	return t
}

// Allocator returns the arena owning the tree's nodes, for stats and
// hibernation. Handles obtained elsewhere must not be fed back into a
// different tree.
func (t *Tree[T]) Allocator() *Allocator[T] {
	return t.alloc
}

// Len returns the number of elements in the set.
func (t *Tree[T]) Len() int {
	return t.alloc.Used()
}

// IsEmpty reports whether the set holds no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t.root.Nil()
}

// Clear discards all elements and resets the arena to its empty state.
func (t *Tree[T]) Clear() {
	t.alloc.reset()
	t.root = 0
}

// Member reports whether elem is in the set.
func (t *Tree[T]) Member(elem T) bool {
	h := t.root

	for !h.Nil() {
		n := t.alloc.at(h)

		switch cmp.Compare(n.elem, elem) {
		case -1:
			h = n.right
		case 1:
			h = n.left
		default:
			return true
		}
	}

	return false
}

// Insert adds elem to the set. Inserting an element already present
// overwrites the stored element in place and leaves Len unchanged.
func (t *Tree[T]) Insert(elem T) {
	t.root = t.insertAt(t.root, elem)
	// The root link is always black; a color flip at the top of the
	// recursion may have left it red.
	t.alloc.at(t.root).red = false
}

// insertAt descends to the insertion point and repairs balance on the
// way back up, returning the possibly new subtree root for the caller
// to re-link.
func (t *Tree[T]) insertAt(h Handle, elem T) Handle {
	if h.Nil() {
		return t.alloc.malloc(elem, true)
	}

	// Re-fetch the node after every recursive call: an allocation
	// below may grow the arena and move the backing storage.
	switch n := t.alloc.at(h); cmp.Compare(n.elem, elem) {
	case -1:
		right := t.insertAt(n.right, elem)
		t.alloc.at(h).right = right
	case 1:
		left := t.insertAt(n.left, elem)
		t.alloc.at(h).left = left
	default:
		n.elem = elem
	}

	return t.fixup(h)
}

// TakeMin removes and returns the minimum element. The second return
// is false when the set is empty, in which case nothing is mutated.
func (t *Tree[T]) TakeMin() (T, bool) {
	if t.root.Nil() {
		var zero T

		return zero, false
	}

	if n := t.alloc.at(t.root); n.left.Nil() {
		// The root is the minimum and, red links leaning left, has no
		// right child either: the tree drains. Resetting the whole
		// arena gives future insertions dense low indices again.
		doAssert(n.right.Nil())

		elem := t.alloc.release(t.root)
		t.Clear()

		return elem, true
	}

	elem, h := t.takeMinAt(t.root)
	t.root = h

	if !t.root.Nil() {
		t.alloc.at(t.root).red = false
	}

	return elem, true
}

// takeMinAt removes the minimum of the subtree rooted at h, pushing a
// red link ahead of the leftward descent so the deletion never lands
// on a 2-node, and repairs balance while unwinding. It returns the
// removed element and the new subtree root.
func (t *Tree[T]) takeMinAt(h Handle) (T, Handle) {
	n := t.alloc.at(h)

	if n.left.Nil() {
		return t.alloc.release(h), 0
	}

	if !t.isRed(n.left) && !t.isRed(t.alloc.at(n.left).left) {
		h = t.moveRedLeft(h)
		n = t.alloc.at(h)
	}

	elem, left := t.takeMinAt(n.left)
	t.alloc.at(h).left = left

	return elem, t.fixup(h)
}

// isRed reports whether h names a red node. Nil links are black.
func (t *Tree[T]) isRed(h Handle) bool {
	return !h.Nil() && t.alloc.at(h).red
}

// rotateLeft makes h's right child the subtree root, keeping the
// in-order sequence. The right child must exist.
func (t *Tree[T]) rotateLeft(h Handle) Handle {
	n := t.alloc.at(h)
	doAssert(!n.right.Nil())

	x := n.right
	xn := t.alloc.at(x)

	n.right = xn.left
	xn.left = h
	xn.red = n.red
	n.red = true

	return x
}

// rotateRight is the mirror image of rotateLeft.
func (t *Tree[T]) rotateRight(h Handle) Handle {
	n := t.alloc.at(h)
	doAssert(!n.left.Nil())

	x := n.left
	xn := t.alloc.at(x)

	n.left = xn.right
	xn.right = h
	xn.red = n.red
	n.red = true

	return x
}

// flipColors toggles the color of h and of both its children. The same
// toggle pushes a red link down ahead of a deletion and collapses a
// 4-node during unwind; the caller's context decides which.
func (t *Tree[T]) flipColors(h Handle) {
	n := t.alloc.at(h)
	doAssert(!n.left.Nil() && !n.right.Nil())

	n.red = !n.red

	l := t.alloc.at(n.left)
	l.red = !l.red

	r := t.alloc.at(n.right)
	r.red = !r.red
}

// fixup restores the left-leaning red-black invariants locally, given
// they held one level down. Applied once per stack frame on every
// unwind, in fixed order: lean left, straighten a double red, collapse
// a 4-node.
func (t *Tree[T]) fixup(h Handle) Handle {
	n := t.alloc.at(h)

	if t.isRed(n.right) && !t.isRed(n.left) {
		h = t.rotateLeft(h)
		n = t.alloc.at(h)
	}

	if t.isRed(n.left) && t.isRed(t.alloc.at(n.left).left) {
		h = t.rotateRight(h)
		n = t.alloc.at(h)
	}

	if t.isRed(n.left) && t.isRed(n.right) {
		t.flipColors(h)
	}

	return h
}

// moveRedLeft pushes a red link into h's left subtree so the coming
// delete-minimum never removes from a 2-node.
func (t *Tree[T]) moveRedLeft(h Handle) Handle {
	t.flipColors(h)

	n := t.alloc.at(h)

	if !n.right.Nil() && t.isRed(t.alloc.at(n.right).left) {
		n.right = t.rotateRight(n.right)
		h = t.rotateLeft(h)
		t.flipColors(h)
	}

	return h
}
