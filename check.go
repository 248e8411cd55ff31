// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// Check - verify the height cache, the balance bound and the key order
func (tree *Tree[T]) Check() bool {
	if nil == tree {
		return false
	}
	h, ok := checkNode(tree.root, tree.cmp)
	if !ok {
		return false
	}
	if h != tree.height {
		fmt.Printf("tree height fail: actual: %d  cached: %d\n", h, tree.height)
		return false
	}
	return true
}

// internal: consistency checker, returns the recomputed height
func checkNode[T any](p *Node[T], cmp CmpFunc[T]) (int, bool) {
	if nil == p {
		return 0, true
	}

	hl, ok := checkNode(p.left, cmp)
	if !ok {
		return 0, false
	}
	hr, ok := checkNode(p.right, cmp)
	if !ok {
		return 0, false
	}

	if p.height != 1+max(hl, hr) {
		fmt.Printf("height fail at node: %v  cached: %d  left: %d  right: %d\n", p.value, p.height, hl, hr)
		return 0, false
	}
	if hl-hr > 1 || hl-hr < -1 {
		fmt.Printf("balance fail at node: %v  left: %d  right: %d\n", p.value, hl, hr)
		return 0, false
	}
	if nil != p.left && compare(cmp, p.left, p) >= 0 {
		fmt.Printf("order fail at node: %v  left: %v\n", p.value, p.left.value)
		return 0, false
	}
	if nil != p.right && compare(cmp, p.right, p) <= 0 {
		fmt.Printf("order fail at node: %v  right: %v\n", p.value, p.right.value)
		return 0, false
	}

	return p.height, true
}
