// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a node into the tree
//
// Returns false only on a nil tree or item.  Inserting a key that is
// already present is a silent no-op reported as success: the existing
// node stays, item is neither linked nor freed and remains the
// caller's to dispose of.  Count changes only when a node is actually
// linked.
func (tree *Tree[T]) Insert(item *Node[T]) bool {
	if nil == tree || nil == item {
		return false
	}
	added := false
	tree.root, added = insert(item, tree.root, tree.cmp)
	if added {
		tree.height = height(tree.root)
		tree.count += 1
	}
	return true
}

// internal routine for insert
// returns the possibly updated sub-tree root
func insert[T any](item, p *Node[T], cmp CmpFunc[T]) (*Node[T], bool) {
	if nil == p {
		return item, true
	}

	added := false
	switch pos := compare(cmp, item, p); {
	case pos < 0:
		p.left, added = insert(item, p.left, cmp)
	case pos > 0:
		p.right, added = insert(item, p.right, cmp)
	default: // key already present, reject
		return p, false
	}
	if !added { // rejected deeper down, nothing changed
		return p, false
	}

	p.height = 1 + max(height(p.left), height(p.right))

	balance := getBalance(p)

	// four rebalance cases, the direction the new item took below
	// the unbalanced node picks the rotation

	// left-left
	if balance > 1 && compare(cmp, item, p.left) < 0 {
		return rotateRight(p), true
	}

	// right-right
	if balance < -1 && compare(cmp, item, p.right) > 0 {
		return rotateLeft(p), true
	}

	// left-right
	if balance > 1 && compare(cmp, item, p.left) > 0 {
		p.left = rotateLeft(p.left)
		return rotateRight(p), true
	}

	// right-left
	if balance < -1 && compare(cmp, item, p.right) < 0 {
		p.right = rotateRight(p.right)
		return rotateLeft(p), true
	}

	return p, true
}
