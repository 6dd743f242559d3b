// Copyright 2026 The bst Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bst implements a generic in-memory binary search tree.
//
// bst stores values of any ordered type and provides membership queries,
// extremal lookups, ordered traversals, insertion and removal. It is not
// meant for persistent storage solutions and performs no rebalancing after
// Insert or Delete: an adversarial insertion order can degrade the tree to
// a chain. Build constructs a height-balanced tree up front by midpoint
// selection over the sorted input, which is the recommended entry point for
// bulk data.
//
// There are two constructor families; those suffixed with 'Func' take a
// passed-in "less" function to define their ordering and are usable for any
// type. Those without the suffix are specific to types satisfying
// cmp.Ordered, use the '<' operator, and additionally reject values that do
// not compare equal to themselves (such as floating-point NaN), since one
// such value silently breaks the ordering of the whole tree.
//
// Write operations are not safe for concurrent use; callers needing
// concurrent mutation must provide their own synchronization.
package bst

import (
	"cmp"
	"errors"
	"slices"
)

var (
	// ErrEmpty is returned by Build and BuildFunc for an empty input
	// collection, which cannot produce a tree.
	ErrEmpty = errors.New("bst: empty collection")

	// ErrIncomparable is returned when a value does not compare equal to
	// itself (e.g. NaN) and therefore has no position in the ordering.
	ErrIncomparable = errors.New("bst: value is not comparable to itself")
)

// LessFunc[T] determines how to order a type 'T'. It should implement a
// strict weak ordering; if neither less(a, b) nor less(b, a), a and b are
// treated as equal.
type LessFunc[T any] func(a, b T) bool

// ItemIterator allows callers of Ascend/Descend to iterate in order over the
// tree. When this function returns false, iteration stops and the associated
// traversal immediately returns.
type ItemIterator[T any] func(item T) bool

// Less[T] returns a default LessFunc that uses the '<' operator for types
// that support it.
func Less[T cmp.Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

// selfEqual rejects values with no consistent position under '<', which for
// cmp.Ordered types is exactly the values that differ from themselves (NaN).
func selfEqual[T cmp.Ordered](v T) error {
	if v != v {
		return ErrIncomparable
	}
	return nil
}

// node is one element of the tree. Each node exclusively owns its children;
// a nil child is an absent subtree and a node with two nil children is a
// leaf.
type node[T any] struct {
	val         T
	left, right *node[T]
}

// Tree is a binary search tree over values of type T. For every node, the
// left subtree holds values strictly less than the node's value and the
// right subtree holds values greater than or equal to it (equal values are
// placed right on Insert). The zero value is not usable; construct trees
// with New, NewFunc, Build or BuildFunc.
type Tree[T any] struct {
	root   *node[T]
	less   LessFunc[T]
	check  func(T) error
	length int
}

// New creates a single-node tree holding v, ordered by the '<' operator.
// It returns ErrIncomparable if v is not equal to itself.
func New[T cmp.Ordered](v T) (*Tree[T], error) {
	if err := selfEqual(v); err != nil {
		return nil, err
	}
	t := NewFunc(v, Less[T]())
	t.check = selfEqual[T]
	return t, nil
}

// NewFunc creates a single-node tree holding v.
//
// The passed-in LessFunc determines how objects of type T are ordered.
func NewFunc[T any](v T, less LessFunc[T]) *Tree[T] {
	return &Tree[T]{
		root:   &node[T]{val: v},
		less:   less,
		length: 1,
	}
}

// Build creates a height-balanced tree from items, ordered by the '<'
// operator. It returns ErrEmpty if items is empty and ErrIncomparable if
// any value is not equal to itself. The input slice is not modified.
func Build[T cmp.Ordered](items []T) (*Tree[T], error) {
	for _, v := range items {
		if err := selfEqual(v); err != nil {
			return nil, err
		}
	}
	t, err := BuildFunc(items, Less[T]())
	if err != nil {
		return nil, err
	}
	t.check = selfEqual[T]
	return t, nil
}

// BuildFunc creates a height-balanced tree from items under the passed-in
// ordering: the items are sorted ascending, then the midpoint of each
// sub-slice becomes the root of the corresponding subtree. The resulting
// height is exactly ⌈log2(n+1)⌉ for n items. It returns ErrEmpty if items
// is empty. The input slice is not modified.
func BuildFunc[T any](items []T, less LessFunc[T]) (*Tree[T], error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	})
	return &Tree[T]{
		root:   buildRange(sorted, 0, len(sorted)-1),
		less:   less,
		length: len(sorted),
	}, nil
}

// buildRange builds the subtree for sorted[start:end+1]. The floor midpoint
// (start+end)/2 is chosen as the subtree root, so an even-length range roots
// at its lower-middle element.
func buildRange[T any](sorted []T, start, end int) *node[T] {
	if start > end {
		return nil
	}
	mid := (start + end) / 2
	return &node[T]{
		val:   sorted[mid],
		left:  buildRange(sorted, start, mid-1),
		right: buildRange(sorted, mid+1, end),
	}
}

// Insert adds v to the tree. Values equal to an existing value are placed in
// its right subtree, so duplicates are kept and remain findable by Has. The
// tree is not rebalanced. For trees built by the cmp.Ordered constructors,
// Insert returns ErrIncomparable (leaving the tree unchanged) if v is not
// equal to itself.
func (t *Tree[T]) Insert(v T) error {
	if t.check != nil {
		if err := t.check(v); err != nil {
			return err
		}
	}
	insertNode(&t.root, v, t.less)
	t.length++
	return nil
}

func insertNode[T any](slot **node[T], v T, less LessFunc[T]) {
	for n := *slot; n != nil; n = *slot {
		if less(v, n.val) {
			slot = &n.left
		} else {
			slot = &n.right
		}
	}
	*slot = &node[T]{val: v}
}

// Delete removes one occurrence of v from the tree and reports whether a
// value was removed; deleting an absent value is a no-op. For trees built by
// the cmp.Ordered constructors, Delete returns ErrIncomparable if v is not
// equal to itself. The tree is never mutated on a false or error return.
func (t *Tree[T]) Delete(v T) (bool, error) {
	if t.check != nil {
		if err := t.check(v); err != nil {
			return false, err
		}
	}
	if !deleteNode(&t.root, v, t.less) {
		return false, nil
	}
	t.length--
	return true, nil
}

// deleteNode descends to the node holding v and removes it through the slot
// that owns it: a leaf empties the slot, a node with one child is replaced
// by that child, and a node with two children takes the value of its
// in-order successor (the minimum of the right subtree), whose own slot is
// then spliced to its right child. The successor's slot is carried from the
// minimum descent directly, so no second search by value is needed.
func deleteNode[T any](slot **node[T], v T, less LessFunc[T]) bool {
	for {
		n := *slot
		if n == nil {
			return false
		}
		switch {
		case less(v, n.val):
			slot = &n.left
			continue
		case less(n.val, v):
			slot = &n.right
			continue
		}
		switch {
		case n.left == nil:
			*slot = n.right
		case n.right == nil:
			*slot = n.left
		default:
			succ := &n.right
			for (*succ).left != nil {
				succ = &(*succ).left
			}
			n.val = (*succ).val
			*succ = (*succ).right
		}
		return true
	}
}

// Has reports whether a value equal to v is stored in the tree. For trees
// built by the cmp.Ordered constructors, Has returns ErrIncomparable if v is
// not equal to itself.
func (t *Tree[T]) Has(v T) (bool, error) {
	if t.check != nil {
		if err := t.check(v); err != nil {
			return false, err
		}
	}
	for n := t.root; n != nil; {
		switch {
		case t.less(v, n.val):
			n = n.left
		case t.less(n.val, v):
			n = n.right
		default:
			return true, nil
		}
	}
	return false, nil
}

// Min returns the smallest value in the tree, or (zeroValue, false) if the
// tree is empty. A tree returned by a constructor is never empty; only
// Delete or Drain can empty it.
func (t *Tree[T]) Min() (_ T, _ bool) {
	n := t.root
	if n == nil {
		return
	}
	for n.left != nil {
		n = n.left
	}
	return n.val, true
}

// Max returns the largest value in the tree, or (zeroValue, false) if the
// tree is empty.
func (t *Tree[T]) Max() (_ T, _ bool) {
	n := t.root
	if n == nil {
		return
	}
	for n.right != nil {
		n = n.right
	}
	return n.val, true
}

// Len returns the number of values currently in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Height returns the number of nodes on the longest root-to-leaf path. A
// single-node tree has height 1; an empty tree has height 0.
func (t *Tree[T]) Height() int {
	return t.root.height()
}

func (n *node[T]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// Ascend calls the iterator for every value in the tree in ascending order
// until iterator returns false.
func (t *Tree[T]) Ascend(iterator ItemIterator[T]) {
	t.root.ascend(iterator)
}

func (n *node[T]) ascend(iterator ItemIterator[T]) bool {
	if n == nil {
		return true
	}
	if !n.left.ascend(iterator) {
		return false
	}
	if !iterator(n.val) {
		return false
	}
	return n.right.ascend(iterator)
}

// Descend calls the iterator for every value in the tree in descending
// order until iterator returns false.
func (t *Tree[T]) Descend(iterator ItemIterator[T]) {
	t.root.descend(iterator)
}

func (n *node[T]) descend(iterator ItemIterator[T]) bool {
	if n == nil {
		return true
	}
	if !n.right.descend(iterator) {
		return false
	}
	if !iterator(n.val) {
		return false
	}
	return n.left.descend(iterator)
}

// InOrder returns all values in ascending order.
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.length)
	t.Ascend(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// PreOrder returns all values in pre-order: each node before its left
// subtree, and the left subtree before the right.
func (t *Tree[T]) PreOrder() []T {
	out := make([]T, 0, t.length)
	t.root.preorder(&out)
	return out
}

func (n *node[T]) preorder(out *[]T) {
	if n == nil {
		return
	}
	*out = append(*out, n.val)
	n.left.preorder(out)
	n.right.preorder(out)
}
