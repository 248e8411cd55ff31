// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// AllocFunc - create a node for a tree, payload chosen by the hook
type AllocFunc[T any] func() *Node[T]

// DupFunc - create a copy of an existing node
type DupFunc[T any] func(node *Node[T]) *Node[T]

// FreeFunc - release a node removed from a tree
type FreeFunc[T any] func(node *Node[T])

// CmpFunc - total order over two nodes: negative, zero or positive
type CmpFunc[T any] func(a, b *Node[T]) int

// Node - a single tree vertex
//
// A node exclusively owns its children.  The cached height is 1 for a
// leaf and is kept up to date through every structural change.
type Node[T any] struct {
	left   *Node[T] // left (lesser) sub-tree
	right  *Node[T] // right (greater) sub-tree
	height int
	value  T // opaque payload
}

// NewNode - bare node allocation with the given payload
//
// This is also the fallback used by a tree with no allocate hook, so
// hook implementations can build their nodes with it.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{
		value:  value,
		height: 1,
	}
}

// Value - read the payload from a node
func (p *Node[T]) Value() T {
	return p.value
}

// SetValue - overwrite the payload of a node
func (p *Node[T]) SetValue(value T) {
	p.value = value
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[T]) Height() int {
	if nil == p {
		return 0
	}
	return p.height
}

// Left - left child of a node, nil if none
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - right child of a node, nil if none
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// NewNode - create a node through the tree's allocate hook
//
// With no hook set the node is a bare allocation holding value; a
// hook receives no arguments and chooses the payload itself.
// Returns nil on a nil tree.
func (tree *Tree[T]) NewNode(value T) *Node[T] {
	if nil == tree {
		return nil
	}
	if nil != tree.alloc {
		return tree.alloc()
	}
	return NewNode(value)
}

// DupNode - copy a node through the tree's duplicate hook
//
// The fallback is a shallow copy: the new node carries the same
// payload value as the source, so a pointer payload is aliased.
// Returns nil on nil arguments.
func (tree *Tree[T]) DupNode(node *Node[T]) *Node[T] {
	if nil == tree || nil == node {
		return nil
	}
	if nil != tree.dup {
		return tree.dup(node)
	}
	return NewNode(node.value)
}

// FreeNode - release a node through the tree's free hook
//
// The fallback clears the node structure only; it never touches the
// payload.
func (tree *Tree[T]) FreeNode(node *Node[T]) {
	if nil == tree || nil == node {
		return
	}
	if nil != tree.free {
		tree.free(node)
		return
	}
	node.left = nil
	node.right = nil
	node.height = 0
	var zero T
	node.value = zero
}

// Compare - order two nodes using the tree's comparator
//
// Returns zero on nil arguments or when no comparator is set.
func (tree *Tree[T]) Compare(a, b *Node[T]) int {
	if nil == tree || nil == a || nil == b {
		return 0
	}
	return compare(tree.cmp, a, b)
}

// internal: a missing comparator makes every pair compare equal
func compare[T any](cmp CmpFunc[T], a, b *Node[T]) int {
	if nil == cmp {
		return 0
	}
	return cmp(a, b)
}
