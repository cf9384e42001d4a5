// Package priority implements a binary heap whose ordering is supplied by the
// caller as three predicates instead of a single comparison.
//
// Splitting the ordering lets callers write exactly the comparison each step
// needs, which matters when elements are compared through nested fields or
// the comparison itself is expensive:
//
//   - insert(child, parent) reports whether a new element keeps rising.
//   - remove(node, left, right) reports whether a node must keep sinking. It
//     is only called when the left child exists; right.OK is false when the
//     right child is missing.
//   - greater(a, b) picks the child to swap with when both exist.
//
// The predicates must agree on one strict weak ordering. Equal elements may
// leave the queue in any order.
//
// Basic usage:
//
//	// A max-heap over ints, written out by hand
//	pq := priority.New(
//	    func(child, parent int) bool { return child > parent },
//	    func(node, left int, right priority.Child[int]) bool {
//	        return node < left || (right.OK && node < right.Value)
//	    },
//	    func(a, b int) bool { return a > b },
//	)
//
//	pq.Insert(5)
//	pq.Insert(8)
//	v, ok := pq.Remove() // 8, true
//
// NewMax, NewMin and NewFunc build the three predicates from a single
// ordering for the common cases, and Merge drains several queues into one
// ordered sequence.
package priority
