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

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect[T any](it *Iter[T]) []T {
	var out []T
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

func TestIter(t *testing.T) {
	tr, err := Build([]int{1, 2, 3})
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 3}, collect(tr.Iter()))

	// the borrowing cursor leaves the tree intact
	require.Equal(t, 3, tr.Len())
	require.Equal(t, []int{1, 2, 3}, tr.InOrder())
}

func TestIterSingleShot(t *testing.T) {
	tr, err := Build([]int{1, 2, 3})
	require.NoError(t, err)
	it := tr.Iter()
	collect(it)
	for i := 0; i < 3; i++ {
		v, ok := it.Next()
		require.False(t, ok)
		require.Zero(t, v)
	}
	// a fresh cursor starts over
	require.Equal(t, []int{1, 2, 3}, collect(tr.Iter()))
}

func TestIterMatchesInOrder(t *testing.T) {
	const treeSize = 1000
	tr, err := Build(rand.Perm(treeSize))
	if err != nil {
		t.Fatal(err)
	}
	got := collect(tr.Iter())
	if want := tr.InOrder(); !reflect.DeepEqual(got, want) {
		t.Fatalf("cursor mismatch:\n got: %v\nwant: %v", got, want)
	}
	if got, want := len(got), treeSize; got != want {
		t.Fatalf("yielded %d values, want %d", got, want)
	}
}

func TestDrain(t *testing.T) {
	tr, err := Build([]int{1, 2, 3})
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 3}, collect(tr.Drain()))

	// draining empties the tree
	require.Equal(t, 0, tr.Len())
	_, ok := tr.Min()
	require.False(t, ok)
	_, ok = tr.Max()
	require.False(t, ok)
	require.Empty(t, tr.InOrder())
	_, ok = tr.Iter().Next()
	require.False(t, ok)

	// but it can be refilled
	require.NoError(t, tr.Insert(42))
	require.Equal(t, []int{42}, tr.InOrder())
	require.Equal(t, 1, tr.Len())
}

func TestDrainCustomOrder(t *testing.T) {
	desc := func(a, b int) bool { return a > b }
	tr, err := BuildFunc([]int{2, 9, 4}, desc)
	require.NoError(t, err)
	require.Equal(t, []int{9, 4, 2}, collect(tr.Drain()))
	require.Equal(t, 0, tr.Len())
}

func TestIterOnChain(t *testing.T) {
	// worst-case shape: every node only has a right child
	tr, err := New(0)
	require.NoError(t, err)
	for v := 1; v < 100; v++ {
		require.NoError(t, tr.Insert(v))
	}
	require.Equal(t, 100, tr.Height())
	require.Equal(t, intRange(100, false), collect(tr.Iter()))
}
