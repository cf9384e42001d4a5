// Package loser implements a tournament tree (also known as a loser tree) for
// merging several ordered sequences into one. It is based on the work by Bryan
// Boreham (https://github.com/bboreham/go-loser).
//
// A loser tree is a binary tree where each internal node remembers the loser
// of the game played between its children and the root remembers the overall
// winner. Advancing the winning sequence only replays the games on the path
// from its leaf to the root, so each merged element costs O(log m)
// comparisons for m sequences.
//
// Ordering is given by a prefer function: prefer(a, b) reports whether a must
// be emitted before b. Exhausted sequences lose every game, so no sentinel
// "maximum" value is needed.
//
// Basic usage:
//
//	tree := loser.New(
//	    []loser.Sequence[int]{
//	        loser.SequenceFunc[int](slices.Values([]int{1, 3, 5})),
//	        loser.SequenceFunc[int](slices.Values([]int{2, 4, 6})),
//	    },
//	    func(a, b int) bool { return a < b },
//	)
//
//	for v := range tree.All() {
//	    fmt.Println(v) // 1 2 3 4 5 6
//	}
//
// Layout: for node N its children are 2N and 2N+1. Leaves for the m sequences
// sit at positions m..2m-1, internal nodes at 1..m-1, and node 0 holds the
// current winner.
package loser
