// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height balanced binary search tree holding opaque
// payloads under a caller supplied ordering
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Node allocation, duplication, release and comparison are pluggable
// per tree instance.  Each behaviour has a defined fallback when
// unset: bare allocation, shallow copy, structure-only release.
// Comparison has no fallback; without a comparator every key compares
// equal, so the tree cannot grow past a single node.
//
// Payload lifetime is entirely the caller's responsibility: the tree
// never inspects a payload and only the free hook, if one is set, can
// dispose of it.
package avl
