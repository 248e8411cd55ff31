// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
//
// The height of the root and the node count are cached and kept
// current by Insert and Delete.
type Tree[T any] struct {
	root   *Node[T]
	height int
	count  int
	alloc  AllocFunc[T]
	dup    DupFunc[T]
	free   FreeFunc[T]
	cmp    CmpFunc[T]
}

// New - create an initially empty tree with all hooks unset
func New[T any]() *Tree[T] {
	return &Tree[T]{
		root:   nil,
		height: 0,
	}
}

// SetAlloc - set the node allocation hook
func (tree *Tree[T]) SetAlloc(alloc AllocFunc[T]) {
	if nil != tree {
		tree.alloc = alloc
	}
}

// SetDup - set the node duplication hook
func (tree *Tree[T]) SetDup(dup DupFunc[T]) {
	if nil != tree {
		tree.dup = dup
	}
}

// SetFree - set the node release hook
func (tree *Tree[T]) SetFree(free FreeFunc[T]) {
	if nil != tree {
		tree.free = free
	}
}

// SetCmp - set the node comparator
func (tree *Tree[T]) SetCmp(cmp CmpFunc[T]) {
	if nil != tree {
		tree.cmp = cmp
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree || nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	if nil == tree {
		return 0
	}
	return tree.count
}

// Height - cached height of the whole tree, 0 if empty
func (tree *Tree[T]) Height() int {
	if nil == tree {
		return 0
	}
	return tree.height
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	if nil == tree {
		return nil
	}
	return tree.root
}

// Destroy - remove and free every node
//
// Each removal goes through the delete primitive, so the tree is
// rebalanced all the way down; the free hook sees every node.
func (tree *Tree[T]) Destroy() {
	if nil == tree {
		return
	}
	for nil != tree.root {
		tree.Delete(tree.root)
	}
}
