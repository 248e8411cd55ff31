// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - locate the node matching target
//
// Returns the node held by the tree, not a copy, or nil if there is
// no match or an argument is nil.
func (tree *Tree[T]) Find(target *Node[T]) *Node[T] {
	if nil == tree || nil == target {
		return nil
	}
	return find(target, tree.root, tree.cmp)
}

// internal routine for find
func find[T any](target, root *Node[T], cmp CmpFunc[T]) *Node[T] {
	if nil == root {
		return nil
	}

	switch pos := compare(cmp, target, root); {
	case pos < 0:
		return find(target, root.left, cmp)
	case pos > 0:
		return find(target, root.right, cmp)
	default:
		return root
	}
}
