// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// to control the print routine
type branch int

const (
	atRoot branch = iota
	atLeft
	atRight
)

// Print - display an ASCII graphic representation of the tree
//
// Returns the maximum depth of the tree.  With printData set every
// node also shows its cached height and balance factor.
func (tree *Tree[T]) Print(printData bool) int {
	if nil == tree {
		return 0
	}
	return printTree(tree.root, "", atRoot, printData)
}

// internal print - returns the maximum depth of the tree
func printTree[T any](tree *Node[T], prefix string, br branch, printData bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if atLeft == br {
			t = "|      "
		}
		rd = printTree(tree.right, prefix+t, atRight, printData)
	}
	switch br {
	case atRoot:
		fmt.Printf("%s|------+ ", prefix)
	case atLeft:
		fmt.Printf("%s\\------+ ", prefix)
	case atRight:
		fmt.Printf("%s/------+ ", prefix)
	}
	if printData {
		fmt.Printf("%v ^%d %+d\n", tree.value, tree.height, getBalance(tree))
	} else {
		fmt.Printf("%v\n", tree.value)
	}
	if nil != tree.left {
		t := "       "
		if atRight == br {
			t = "|      "
		}
		ld = printTree(tree.left, prefix+t, atLeft, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
