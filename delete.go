// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - remove the node matching target from the tree
//
// Returns false on a nil tree or target and also when no node matches;
// the two failures are not distinguished.  The removed node is handed
// to the free hook, after which it must not be referenced again.
func (tree *Tree[T]) Delete(target *Node[T]) bool {
	if nil == tree || nil == target {
		return false
	}
	removed := false
	tree.root, removed = del(target, tree.root, tree.cmp, tree.FreeNode)
	if removed {
		tree.height = height(tree.root)
		tree.count -= 1
	}
	return removed
}

// internal routine for delete
// returns the possibly updated sub-tree root, nil if it became empty,
// and whether a node was removed
func del[T any](target, root *Node[T], cmp CmpFunc[T], free func(*Node[T])) (*Node[T], bool) {
	if nil == root {
		return nil, false
	}

	removed := false
	switch pos := compare(cmp, target, root); {
	case pos < 0:
		root.left, removed = del(target, root.left, cmp, free)
	case pos > 0:
		root.right, removed = del(target, root.right, cmp, free)
	default:
		removed = true
		if nil == root.left || nil == root.right {
			// zero or one child: promote the survivor and
			// discard the matched node
			child := root.left
			if nil == child {
				child = root.right
			}
			free(root)
			root = child
		} else {
			// two children: swap payloads with the in-order
			// successor, then remove that node; after the swap
			// it is the one carrying the doomed payload and the
			// one the comparator will match
			successor := minimumNode(root.right)
			root.value, successor.value = successor.value, root.value
			root.right, _ = del(successor, root.right, cmp, free)
		}
	}

	if nil == root {
		return nil, removed
	}
	if !removed { // no match below, nothing changed
		return root, false
	}

	root.height = 1 + max(height(root.left), height(root.right))

	balance := getBalance(root)

	// four rebalance cases; no inserted item exists here, so the
	// child's own balance picks the rotation

	// left-left
	if balance > 1 && getBalance(root.left) >= 0 {
		return rotateRight(root), true
	}

	// left-right
	if balance > 1 {
		root.left = rotateLeft(root.left)
		return rotateRight(root), true
	}

	// right-right
	if balance < -1 && getBalance(root.right) <= 0 {
		return rotateLeft(root), true
	}

	// right-left
	if balance < -1 {
		root.right = rotateRight(root.right)
		return rotateLeft(root), true
	}

	return root, true
}

// internal: lowest node in a non-empty sub-tree
func minimumNode[T any](n *Node[T]) *Node[T] {
	for nil != n.left {
		n = n.left
	}
	return n
}
