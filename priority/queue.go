package priority

import (
	"cmp"
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/davidvella/orbit/internal/logging"
	"github.com/davidvella/orbit/loser"
	"github.com/sirupsen/logrus"
)

// Child is a child slot handed to a RemoveFunc. OK is false when the slot is
// past the end of the heap.
type Child[E any] struct {
	Value E
	OK    bool
}

// InsertFunc reports whether child must be sifted above parent.
type InsertFunc[E any] func(child, parent E) bool

// RemoveFunc reports whether node is out of order against at least one of
// its children. It is only called when the left child exists.
type RemoveFunc[E any] func(node, left E, right Child[E]) bool

// GreaterFunc reports whether a is preferred over b when picking the child
// to swap with. It is only called when both children exist.
type GreaterFunc[E any] func(a, b E) bool

// Queue is a binary heap ordered by three caller predicates.
//
// The heap is stored 1-indexed: the root is at 1 and the children of i are
// at 2i and 2i+1. Slot 0 is unused.
//
// A Queue is not safe for concurrent use.
type Queue[E any] struct {
	heap    []E
	insert  InsertFunc[E]
	remove  RemoveFunc[E]
	greater GreaterFunc[E]
	logger  *logrus.Entry
}

// New creates a queue bound to the given predicates for its whole lifetime.
// The predicates must describe a consistent strict ordering; the heap shape
// is undefined otherwise.
func New[E any](insert InsertFunc[E], remove RemoveFunc[E], greater GreaterFunc[E], opts ...Option) *Queue[E] {
	if insert == nil || remove == nil || greater == nil {
		panic(errors.AssertionFailedf("priority: all three predicates are required"))
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Queue[E]{
		heap:    make([]E, 1, o.capacity+1),
		insert:  insert,
		remove:  remove,
		greater: greater,
		logger:  logging.Component(o.logger, "priority"),
	}
}

// NewFunc creates a queue whose three predicates are derived from prefer,
// which reports whether a must leave the queue before b.
func NewFunc[E any](prefer func(a, b E) bool, opts ...Option) *Queue[E] {
	return New(
		InsertFunc[E](prefer),
		func(node, left E, right Child[E]) bool {
			return prefer(left, node) || (right.OK && prefer(right.Value, node))
		},
		GreaterFunc[E](prefer),
		opts...,
	)
}

// NewMax creates a queue that removes the largest element first.
func NewMax[E cmp.Ordered](opts ...Option) *Queue[E] {
	return NewFunc(func(a, b E) bool { return a > b }, opts...)
}

// NewMin creates a queue that removes the smallest element first.
func NewMin[E cmp.Ordered](opts ...Option) *Queue[E] {
	return NewFunc(func(a, b E) bool { return a < b }, opts...)
}

// Len returns the number of elements in the queue.
func (q *Queue[E]) Len() int {
	return len(q.heap) - 1
}

// Empty reports whether the queue holds no elements.
func (q *Queue[E]) Empty() bool {
	return len(q.heap) == 1
}

// Insert appends e to the heap and sifts it up while the insert predicate
// holds against its parent. It always succeeds.
func (q *Queue[E]) Insert(e E) bool {
	q.heap = append(q.heap, e)
	i := len(q.heap) - 1
	depth := 0
	for i > 1 && q.insert(q.heap[i], q.heap[i/2]) {
		q.heap[i], q.heap[i/2] = q.heap[i/2], q.heap[i]
		i /= 2
		depth++
	}
	if logging.Debug(q.logger) {
		q.logger.WithFields(logrus.Fields{"len": q.Len(), "depth": depth}).Debug("sift up")
	}
	return true
}

// Peek returns the root without removing it.
func (q *Queue[E]) Peek() (E, bool) {
	if q.Empty() {
		var zero E
		return zero, false
	}
	return q.heap[1], true
}

// Remove takes the root out of the heap and returns it. The last element
// replaces the root and is sifted down, swapping with the child the greater
// predicate prefers, while the remove predicate holds.
func (q *Queue[E]) Remove() (E, bool) {
	var zero E
	n := len(q.heap) - 1
	switch n {
	case 0:
		return zero, false
	case 1:
		head := q.heap[1]
		q.heap[1] = zero
		q.heap = q.heap[:1]
		return head, true
	}

	head := q.heap[1]
	q.heap[1] = q.heap[n]
	q.heap[n] = zero
	q.heap = q.heap[:n]

	i, depth := 1, 0
	for {
		left := 2 * i
		if left >= len(q.heap) {
			break
		}
		var right Child[E]
		if left+1 < len(q.heap) {
			right = Child[E]{Value: q.heap[left+1], OK: true}
		}
		if !q.remove(q.heap[i], q.heap[left], right) {
			break
		}
		c := left
		if right.OK && !q.greater(q.heap[left], right.Value) {
			c = left + 1
		}
		q.heap[i], q.heap[c] = q.heap[c], q.heap[i]
		i = c
		depth++
	}
	if logging.Debug(q.logger) {
		q.logger.WithFields(logrus.Fields{"len": q.Len(), "depth": depth}).Debug("sift down")
	}
	return head, true
}

// Drain yields elements by repeatedly calling Remove until the queue is
// empty or the consumer stops.
func (q *Queue[E]) Drain() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			e, ok := q.Remove()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

// Merge drains queues into a single sequence ordered by prefer, which must
// agree with the order every queue removes in. The head of each queue is
// removed before it is yielded, so stopping early drops up to one pulled
// element per queue.
func Merge[E any](prefer func(a, b E) bool, queues ...*Queue[E]) iter.Seq[E] {
	sequences := make([]loser.Sequence[E], len(queues))
	for i, q := range queues {
		sequences[i] = loser.SequenceFunc[E](q.Drain())
	}
	return loser.New(sequences, prefer).All()
}

// check verifies that no node would still sift down.
func (q *Queue[E]) check() error {
	for i := 1; 2*i < len(q.heap); i++ {
		left := 2 * i
		var right Child[E]
		if left+1 < len(q.heap) {
			right = Child[E]{Value: q.heap[left+1], OK: true}
		}
		if q.remove(q.heap[i], q.heap[left], right) {
			return errors.AssertionFailedf("node %d is out of order with its children", i)
		}
	}
	return nil
}
