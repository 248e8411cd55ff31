// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/avl"
	"github.com/stretchr/testify/assert"
)

type record struct {
	name string
}

func recordCompare(a, b *avl.Node[*record]) int {
	return strings.Compare(a.Value().name, b.Value().name)
}

func newRecordTree() *avl.Tree[*record] {
	tree := avl.New[*record]()
	tree.SetCmp(recordCompare)
	return tree
}

func walkNames(tree *avl.Tree[*record]) []string {
	names := []string{}
	tree.Walk(avl.ForwardOrder, func(node *avl.Node[*record]) {
		names = append(names, node.Value().name)
	})
	return names
}

// the allocate hook chooses the payload itself; the argument to
// NewNode only feeds the fallback
func TestAllocHook(t *testing.T) {
	tree := newIntTree()

	allocs := 0
	tree.SetAlloc(func() *avl.Node[int] {
		allocs += 1
		return avl.NewNode(100 * allocs)
	})

	node := tree.NewNode(7)
	assert.NotNil(t, node, "no node from alloc hook")
	assert.Equal(t, 100, node.Value(), "alloc hook payload ignored")
	assert.Equal(t, 1, allocs, "alloc hook not called once")

	tree.SetAlloc(nil)
	node = tree.NewNode(7)
	assert.Equal(t, 7, node.Value(), "fallback payload wrong")
	assert.Equal(t, 1, node.Height(), "fallback height wrong")
}

func TestFreeHook(t *testing.T) {
	tree := newIntTree()

	freed := []int{}
	tree.SetFree(func(node *avl.Node[int]) {
		freed = append(freed, node.Value())
	})

	values := []int{10, 20, 30, 40, 50, 25, 49, 16, 26, 32}
	insertAll(t, tree, values)

	assert.True(t, tree.Delete(avl.NewNode(30)), "delete failed")
	assert.Equal(t, []int{30}, freed, "free hook did not see the deleted payload")

	tree.Destroy()
	assert.True(t, tree.IsEmpty(), "destroy left nodes")
	assert.Equal(t, 0, tree.Count(), "destroy left count")
	assert.Equal(t, 0, tree.Height(), "destroy left height")

	sort.Ints(freed)
	expected := append([]int{}, values...)
	sort.Ints(expected)
	assert.Equal(t, expected, freed, "free hook missed nodes during destroy")
}

// the fallback release clears the node structure but never the tree
func TestFreeFallback(t *testing.T) {
	tree := newIntTree()

	n30 := tree.NewNode(30)
	insertAll(t, tree, []int{20, 10})
	assert.True(t, tree.Insert(n30), "insert failed")

	// 30 is a leaf, so the removed allocation is n30 itself
	assert.True(t, tree.Delete(avl.NewNode(30)), "delete failed")
	assert.Equal(t, 0, n30.Height(), "freed node keeps height")
	assert.Nil(t, n30.Left(), "freed node keeps left child")
	assert.Nil(t, n30.Right(), "freed node keeps right child")
	assert.Equal(t, 0, n30.Value(), "freed node keeps payload")

	assert.Equal(t, 2, tree.Count(), "count wrong after delete")
	assert.True(t, tree.Check(), "inconsistent tree")
}

// without a duplicate hook the copy aliases the payload pointers
func TestDupShallow(t *testing.T) {
	tree := newRecordTree()
	originals := []*record{{"delta"}, {"alpha"}, {"echo"}, {"bravo"}}
	for _, r := range originals {
		assert.True(t, tree.Insert(tree.NewNode(r)), "insert failed")
	}

	copyTree := tree.Dup()
	assert.NotNil(t, copyTree, "no tree from dup")
	assert.Equal(t, []string{"alpha", "bravo", "delta", "echo"}, walkNames(copyTree), "copy order wrong")
	assert.Equal(t, tree.Count(), copyTree.Count(), "copy count wrong")
	assert.True(t, copyTree.Check(), "inconsistent copy")

	for _, r := range originals {
		node := copyTree.Find(avl.NewNode(r))
		assert.NotNil(t, node, "missing in copy: %s", r.name)
		assert.True(t, r == node.Value(), "payload not aliased: %s", r.name)
	}
}

// a deep-copy duplicate hook gives the copy its own payloads
func TestDupDeep(t *testing.T) {
	tree := newRecordTree()
	tree.SetDup(func(node *avl.Node[*record]) *avl.Node[*record] {
		clone := *node.Value()
		return avl.NewNode(&clone)
	})

	original := &record{"alpha"}
	assert.True(t, tree.Insert(tree.NewNode(original)), "insert failed")

	copyTree := tree.Dup()
	node := copyTree.Find(avl.NewNode(&record{"alpha"}))
	assert.NotNil(t, node, "missing in copy")
	assert.False(t, original == node.Value(), "payload aliased despite deep copy")
	assert.Equal(t, "alpha", node.Value().name, "payload content wrong")
}

func TestDupIndependence(t *testing.T) {
	tree := newIntTree()
	insertAll(t, tree, []int{10, 20, 30, 40, 50, 25, 49, 16, 26, 32})
	before := collect(tree, avl.ForwardOrder)

	copyTree := tree.Dup()
	assert.Equal(t, before, collect(copyTree, avl.ForwardOrder), "copy walk differs")
	assert.Equal(t, tree.Height(), copyTree.Height(), "copy height differs")

	// mutating the copy never touches the original
	assert.True(t, copyTree.Delete(avl.NewNode(20)), "delete on copy failed")
	assert.True(t, copyTree.Insert(copyTree.NewNode(99)), "insert on copy failed")
	assert.True(t, copyTree.Check(), "inconsistent copy")

	assert.Equal(t, before, collect(tree, avl.ForwardOrder), "original changed")
	assert.Equal(t, 10, tree.Count(), "original count changed")
	assert.NotNil(t, tree.Find(avl.NewNode(20)), "original lost a key")
	assert.Nil(t, tree.Find(avl.NewNode(99)), "original gained a key")

	assert.Nil(t, (*avl.Tree[int])(nil).Dup(), "dup of nil tree")
}

func TestCompareDispatch(t *testing.T) {
	tree := newIntTree()

	a := avl.NewNode(1)
	b := avl.NewNode(2)
	assert.Equal(t, -1, tree.Compare(a, b), "compare a<b")
	assert.Equal(t, +1, tree.Compare(b, a), "compare b>a")
	assert.Equal(t, 0, tree.Compare(a, a), "compare a==a")
	assert.Equal(t, 0, tree.Compare(nil, b), "compare nil node")

	tree.SetCmp(nil)
	assert.Equal(t, 0, tree.Compare(a, b), "compare without comparator")
}
