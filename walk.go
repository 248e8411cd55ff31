// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Order - traversal order for Walk
type Order int

const (
	ForwardOrder Order = iota // in-order: left, node, right
	ReverseOrder              // right, node, left
	PreOrder                  // node, left, right
	PostOrder                 // left, right, node
	TreeOrder                 // grouped by cached height, see Walk
)

// Walk - call action once per node, in the requested order
//
// Traversal is synchronous in the caller's goroutine and cannot be
// stopped early.  Mutating the tree from inside action is
// unsupported.
//
// TreeOrder is height indexed, not conventional level order: for each
// level from the tree's overall height down to 1 the whole tree is
// walked and action runs on every node whose cached sub-tree height
// equals that level.  Cached height grows toward the root, so the
// root is visited first and the leaves last, with nodes grouped by
// height rather than by depth.
func (tree *Tree[T]) Walk(order Order, action func(node *Node[T])) {
	if nil == tree || nil == action {
		return
	}
	walk(tree.root, order, action)
}

// internal routine for walk
func walk[T any](root *Node[T], order Order, action func(node *Node[T])) {
	if nil == root {
		return
	}

	switch order {
	case ForwardOrder:
		forwardOrder(root, action)
	case ReverseOrder:
		reverseOrder(root, action)
	case PreOrder:
		preOrder(root, action)
	case PostOrder:
		postOrder(root, action)
	case TreeOrder:
		treeOrder(root, action)
	}
}

// left, node, right: ascending key order
func forwardOrder[T any](root *Node[T], action func(node *Node[T])) {
	if nil == root {
		return
	}
	forwardOrder(root.left, action)
	action(root)
	forwardOrder(root.right, action)
}

// right, node, left: descending key order
func reverseOrder[T any](root *Node[T], action func(node *Node[T])) {
	if nil == root {
		return
	}
	reverseOrder(root.right, action)
	action(root)
	reverseOrder(root.left, action)
}

func preOrder[T any](root *Node[T], action func(node *Node[T])) {
	if nil == root {
		return
	}
	action(root)
	preOrder(root.left, action)
	preOrder(root.right, action)
}

func postOrder[T any](root *Node[T], action func(node *Node[T])) {
	if nil == root {
		return
	}
	postOrder(root.left, action)
	postOrder(root.right, action)
	action(root)
}

// one full pass per height level, so O(n·height) overall
func treeOrder[T any](root *Node[T], action func(node *Node[T])) {
	for level := root.height; level >= 1; level -= 1 {
		treeLevel(root, action, level)
	}
}

// recursive helper for treeOrder
func treeLevel[T any](root *Node[T], action func(node *Node[T]), level int) {
	if nil == root {
		return
	}

	if root.height == level {
		action(root)
	}

	treeLevel(root.left, action, level)
	treeLevel(root.right, action, level)
}
