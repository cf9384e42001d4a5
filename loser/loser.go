package loser

import (
	"iter"
)

// Sequence is an ordered source of elements.
type Sequence[E any] interface {
	All() iter.Seq[E]
}

// SequenceFunc adapts an iterator to a Sequence.
type SequenceFunc[E any] iter.Seq[E]

// All returns f as an iterator.
func (f SequenceFunc[E]) All() iter.Seq[E] {
	return iter.Seq[E](f)
}

// New returns a tree merging sequences. Each sequence must already be ordered
// by prefer.
func New[E any](sequences []Sequence[E], prefer func(a, b E) bool) *Tree[E] {
	return &Tree[E]{
		nodes:     make([]node[E], len(sequences)*2),
		sequences: sequences,
		prefer:    prefer,
	}
}

// Tree is a loser tree laid out such that nodes N and N+1 have parent N/2.
type Tree[E any] struct {
	nodes     []node[E]
	sequences []Sequence[E]
	prefer    func(a, b E) bool
}

type node[E any] struct {
	index int              // Leaf position of the loser, or of the winner for node 0.
	value E                // Head of the sequence. Only populated for leaf nodes.
	done  bool             // Sequence exhausted. Only populated for leaf nodes.
	next  func() (E, bool) // Only populated for leaf nodes.
}

func (t *Tree[E]) moveNext(index int) {
	n := &t.nodes[index]
	if v, ok := n.next(); ok {
		n.value = v
		return
	}
	var zero E
	n.value = zero
	n.done = true
}

// beats reports whether leaf a wins its game against leaf b.
func (t *Tree[E]) beats(a, b int) bool {
	na, nb := &t.nodes[a], &t.nodes[b]
	if na.done {
		return false
	}
	if nb.done {
		return true
	}
	return t.prefer(na.value, nb.value)
}

// All yields the merged elements. It pulls from the sequences, so a tree
// should be iterated once.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(t.nodes) == 0 {
			return
		}
		m := len(t.sequences)
		for i, s := range t.sequences {
			next, stop := iter.Pull(s.All())
			t.nodes[i+m].next = next
			//nolint:gocritic // is not a leak.
			defer stop()
			t.moveNext(i + m) // Fetch the first value of each sequence.
		}
		t.nodes[0].index = t.playGame(1)
		for {
			winner := &t.nodes[t.nodes[0].index]
			if winner.done || !yield(winner.value) {
				return
			}
			t.moveNext(t.nodes[0].index)
			t.replayGames(t.nodes[0].index)
		}
	}
}

// Find the winner at position pos; if it is a non-leaf node, store the loser.
// pos must be >= 1 and < len(t.nodes).
func (t *Tree[E]) playGame(pos int) int {
	if pos >= len(t.nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	loser, winner := left, right
	if t.beats(left, right) {
		loser, winner = right, left
	}
	t.nodes[pos].index = loser
	return winner
}

// Starting at pos, which is a winner, re-consider all games up to the root.
func (t *Tree[E]) replayGames(pos int) {
	for n := parent(pos); n != 0; n = parent(n) {
		node := &t.nodes[n]
		if t.beats(node.index, pos) {
			// Record pos as the loser here, and the old loser is the new winner.
			node.index, pos = pos, node.index
		}
	}
	t.nodes[0].index = pos
}

func parent(i int) int { return i >> 1 }
