// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly missing sub-tree
func height[T any](n *Node[T]) int {
	if nil == n {
		return 0
	}
	return n.height
}

// balance factor: left height minus right height
func getBalance[T any](n *Node[T]) int {
	if nil == n {
		return 0
	}
	return height(n.left) - height(n.right)
}

// rotate the sub-tree rooted at y to the right
//
//	    y            x
//	   / \          / \
//	  x   C   ->   A   y
//	 / \              / \
//	A   B            B   C
func rotateRight[T any](y *Node[T]) *Node[T] {
	x := y.left
	t := x.right

	x.right = y
	y.left = t

	y.height = 1 + max(height(y.left), height(y.right))
	x.height = 1 + max(height(x.left), height(x.right))

	return x
}

// rotate the sub-tree rooted at x to the left, mirror of rotateRight
func rotateLeft[T any](x *Node[T]) *Node[T] {
	y := x.right
	t := y.left

	y.left = x
	x.right = t

	x.height = 1 + max(height(x.left), height(x.right))
	y.height = 1 + max(height(y.left), height(y.right))

	return y
}
