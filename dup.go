// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Dup - create a structurally independent copy of the tree
//
// The hook set is carried over, then every source node passes through
// the duplicate hook in key order and is re-inserted.  Whether the
// two trees share payloads depends entirely on whether that hook
// copies the payload or aliases it; the fallback aliases.
func (tree *Tree[T]) Dup() *Tree[T] {
	if nil == tree {
		return nil
	}

	newTree := &Tree[T]{
		alloc: tree.alloc,
		dup:   tree.dup,
		free:  tree.free,
		cmp:   tree.cmp,
	}
	dupTree(tree, newTree, tree.root)
	newTree.height = height(newTree.root)

	return newTree
}

// internal: in-order copy, driving the insert primitive directly as
// the duplicated nodes are known to be well formed
func dupTree[T any](tree, newTree *Tree[T], oldRoot *Node[T]) {
	if nil == oldRoot {
		return
	}

	dupTree(tree, newTree, oldRoot.left)

	node := tree.DupNode(oldRoot)
	if nil != node {
		added := false
		newTree.root, added = insert(node, newTree.root, newTree.cmp)
		if added {
			newTree.count += 1
		}
	}

	dupTree(tree, newTree, oldRoot.right)
}
