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

package bst

// Iter is a single-shot cursor over the values of a tree in ascending
// order. It performs a lazy in-order descent with an explicit stack, so it
// holds at most one root-to-leaf path (O(h) memory) at a time rather than a
// copy of the whole tree. Once exhausted it stays exhausted; create a new
// cursor to iterate again.
type Iter[T any] struct {
	stack []*node[T]
}

func newIter[T any](root *node[T]) *Iter[T] {
	it := &Iter[T]{}
	it.pushLeft(root)
	return it
}

// pushLeft records the path from n to its leftmost descendant; the top of
// the stack is always the next value to yield.
func (it *Iter[T]) pushLeft(n *node[T]) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

// Next returns the next value in ascending order, or (zeroValue, false)
// once the cursor is exhausted.
func (it *Iter[T]) Next() (_ T, _ bool) {
	if len(it.stack) == 0 {
		return
	}
	n := it.stack[len(it.stack)-1]
	it.stack[len(it.stack)-1] = nil // clear for GC
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeft(n.right)
	return n.val, true
}

// Iter returns a cursor over the tree's values in ascending order. The
// cursor borrows the tree's nodes: the tree remains usable afterwards, but
// must not be mutated while the cursor is live.
func (t *Tree[T]) Iter() *Iter[T] {
	return newIter(t.root)
}

// Drain empties the tree and returns a cursor over its former values in
// ascending order. Ownership of the nodes moves to the cursor; after Drain
// the tree has Len 0, no minimum or maximum, and empty traversals, though
// it may be refilled with Insert.
func (t *Tree[T]) Drain() *Iter[T] {
	it := newIter(t.root)
	t.root = nil
	t.length = 0
	return it
}
