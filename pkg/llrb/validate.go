package llrb

import (
	"errors"
	"fmt"
)

// Red-black rule violations, from Sedgewick's left-leaning variant.
var (
	errRedRoot      = errors.New("root is red")
	errRedRight     = errors.New("red right link")
	errDoubleRed    = errors.New("consecutive red links")
	errBlackBalance = errors.New("unbalanced black link counts")
	errSortOrder    = errors.New("in-order sequence not strictly ascending")
	errCount        = errors.New("element count disagrees with arena occupancy")
)

// Validate walks the whole tree and checks every structural invariant:
// strict BST ordering, no red right links, no consecutive red links,
// equal black link counts on every root-to-nil path, a black root, and
// agreement between Len and arena occupancy. It returns nil when the
// tree is well formed. Intended for tests and diagnostics; it visits
// every node.
func (t *Tree[T]) Validate() error {
	if t.root.Nil() {
		if used := t.alloc.Used(); used != 0 {
			return fmt.Errorf("empty tree: %w: %d live slots", errCount, used)
		}

		return nil
	}

	if t.isRed(t.root) {
		return errRedRoot
	}

	count, _, err := t.checkSubtree(t.root)
	if err != nil {
		return err
	}

	if used := t.alloc.Used(); count != used {
		return fmt.Errorf("%w: walked %d, arena holds %d", errCount, count, used)
	}

	var last T

	var seen bool

	return t.checkAscending(t.root, &last, &seen)
}

// checkAscending verifies that the in-order sequence of the subtree at
// h is strictly ascending, continuing from *last.
func (t *Tree[T]) checkAscending(h Handle, last *T, seen *bool) error {
	if h.Nil() {
		return nil
	}

	n := t.alloc.at(h)

	if err := t.checkAscending(n.left, last, seen); err != nil {
		return err
	}

	if *seen && n.elem <= *last {
		return fmt.Errorf("%w: %v after %v", errSortOrder, n.elem, *last)
	}

	*last = n.elem
	*seen = true

	return t.checkAscending(n.right, last, seen)
}

// checkSubtree returns the node count and black link count of the
// subtree at h, or the first violation found.
func (t *Tree[T]) checkSubtree(h Handle) (count, blacks int, err error) {
	if h.Nil() {
		return 0, 0, nil
	}

	n := t.alloc.at(h)

	if t.isRed(n.right) {
		return 0, 0, fmt.Errorf("%w under %v", errRedRight, n.elem)
	}

	if t.isRed(h) && t.isRed(n.left) {
		return 0, 0, fmt.Errorf("%w under %v", errDoubleRed, n.elem)
	}

	if !n.left.Nil() && t.alloc.at(n.left).elem >= n.elem {
		return 0, 0, fmt.Errorf("%w: left child of %v", errSortOrder, n.elem)
	}

	if !n.right.Nil() && t.alloc.at(n.right).elem <= n.elem {
		return 0, 0, fmt.Errorf("%w: right child of %v", errSortOrder, n.elem)
	}

	lcount, lblacks, err := t.checkSubtree(n.left)
	if err != nil {
		return 0, 0, err
	}

	rcount, rblacks, err := t.checkSubtree(n.right)
	if err != nil {
		return 0, 0, err
	}

	if lblacks != rblacks {
		return 0, 0, fmt.Errorf("%w at %v: {%d,%d}", errBlackBalance, n.elem, lblacks, rblacks)
	}

	blacks = lblacks
	if !t.isRed(h) {
		blacks++
	}

	return lcount + rcount + 1, blacks, nil
}
