package carousel

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/davidvella/orbit/internal/logging"
	"github.com/sirupsen/logrus"
)

// Carousel stores values by key and visits the keys in a circular order.
// The first key of the order is the current key.
//
// A Carousel is not safe for concurrent use.
type Carousel[K comparable, V any] struct {
	index  map[K]V
	order  ring[K]
	logger *logrus.Entry
}

// New creates an empty carousel.
func New[K comparable, V any](opts ...Option) *Carousel[K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Carousel[K, V]{
		index:  make(map[K]V, o.capacity),
		logger: logging.Component(o.logger, "carousel"),
	}
	c.order.reserve(o.capacity)
	return c
}

// Len returns the number of entries in the carousel.
func (c *Carousel[K, V]) Len() int {
	return c.order.len()
}

// Add stores value at key and returns the value now stored there. A new key
// is appended to the back of the order and becomes current if the carousel
// was empty. An existing key keeps its place; only its value is replaced.
func (c *Carousel[K, V]) Add(key K, value V) V {
	if _, ok := c.index[key]; ok {
		c.logger.WithField("key", key).Debug("overwriting value")
	} else {
		c.order.pushBack(key)
	}
	c.index[key] = value
	return value
}

// Reset removes every entry.
func (c *Carousel[K, V]) Reset() {
	c.logger.WithField("len", c.order.len()).Debug("reset")
	clear(c.index)
	c.order.reset()
}

// DeleteCurrent removes the current entry and returns its value.
func (c *Carousel[K, V]) DeleteCurrent() (V, bool) {
	key, ok := c.CurrentKey()
	if !ok {
		var zero V
		return zero, false
	}
	return c.DeleteKey(key)
}

// DeleteKey removes key and returns its value. When key was current, the
// next key in the order becomes current. It is O(n) in the number of entries.
func (c *Carousel[K, V]) DeleteKey(key K) (V, bool) {
	value, ok := c.index[key]
	if !ok {
		return value, false
	}

	i := c.order.indexOf(key)
	if i == 0 {
		c.logger.WithField("key", key).Debug("deleting current key")
	}
	c.order.removeAt(i)
	delete(c.index, key)
	return value, true
}

// Next moves the current key to the back of the order and returns the value
// of the key that takes its place.
func (c *Carousel[K, V]) Next() (V, bool) {
	c.order.rotateForward()
	return c.Current()
}

// Previous moves the last key to the front of the order, making it current,
// and returns its value.
func (c *Carousel[K, V]) Previous() (V, bool) {
	c.order.rotateBackward()
	return c.Current()
}

// Current returns the value of the current key.
func (c *Carousel[K, V]) Current() (V, bool) {
	key, ok := c.CurrentKey()
	if !ok {
		var zero V
		return zero, false
	}
	return c.index[key], true
}

// CurrentKey returns the current key.
func (c *Carousel[K, V]) CurrentKey() (K, bool) {
	if c.order.len() == 0 {
		var zero K
		return zero, false
	}
	return c.order.at(0), true
}

// Peek returns the key Next would make current. With a single entry that is
// the current key.
func (c *Carousel[K, V]) Peek() (K, bool) {
	if c.order.len() > 1 {
		return c.order.at(1), true
	}
	return c.CurrentKey()
}

// Last returns the key Previous would make current.
func (c *Carousel[K, V]) Last() (K, bool) {
	if c.order.len() == 0 {
		var zero K
		return zero, false
	}
	return c.order.at(c.order.len() - 1), true
}

// SeekTo rotates the carousel until key is current and returns its value.
// If key is absent the carousel is left untouched and the current value is
// returned.
//
// The direction is picked from the position of key in the order: keys in the
// front half are reached with Next, the others with Previous. This keeps the
// rotation count at or below half the carousel, but it is a heuristic and not
// a search for the shortest path.
func (c *Carousel[K, V]) SeekTo(key K) (V, bool) {
	if _, ok := c.index[key]; !ok {
		return c.Current()
	}

	n := c.order.len()
	i := c.order.indexOf(key)
	if 2*i < n {
		c.logger.WithFields(logrus.Fields{"key": key, "direction": "next", "steps": i}).Debug("seek")
		for range i {
			c.order.rotateForward()
		}
	} else {
		c.logger.WithFields(logrus.Fields{"key": key, "direction": "previous", "steps": n - i}).Debug("seek")
		for range n - i {
			c.order.rotateBackward()
		}
	}
	return c.Current()
}

// Contains reports whether key is stored in the carousel.
func (c *Carousel[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Get returns the value stored at key without moving the carousel.
func (c *Carousel[K, V]) Get(key K) (V, bool) {
	v, ok := c.index[key]
	return v, ok
}

// Preview returns keys from the order without rotating. A non-negative amount
// returns the first amount keys starting at the current key; a negative
// amount returns the last -amount keys. The result is capped at the whole
// order.
func (c *Carousel[K, V]) Preview(amount int) []K {
	n := c.order.len()
	start, count := 0, min(amount, n)
	if amount < 0 {
		count = n
		if amount > -n {
			count = -amount
		}
		start = n - count
	}

	keys := make([]K, 0, count)
	for i := start; i < start+count; i++ {
		keys = append(keys, c.order.at(i))
	}
	return keys
}

// Keys yields the keys in visiting order, starting at the current key. The
// carousel must not be modified while iterating.
func (c *Carousel[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := 0; i < c.order.len(); i++ {
			if !yield(c.order.at(i)) {
				return
			}
		}
	}
}

// All yields the entries in visiting order, starting at the current key. The
// carousel must not be modified while iterating.
func (c *Carousel[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < c.order.len(); i++ {
			k := c.order.at(i)
			if !yield(k, c.index[k]) {
				return
			}
		}
	}
}

// check verifies that the index and the order hold the same keys.
func (c *Carousel[K, V]) check() error {
	if len(c.index) != c.order.len() {
		return errors.AssertionFailedf("index holds %d keys, order holds %d", len(c.index), c.order.len())
	}
	seen := make(map[K]struct{}, c.order.len())
	for i := 0; i < c.order.len(); i++ {
		k := c.order.at(i)
		if _, dup := seen[k]; dup {
			return errors.AssertionFailedf("key %v appears twice in order", k)
		}
		seen[k] = struct{}{}
		if _, ok := c.index[k]; !ok {
			return errors.AssertionFailedf("key %v at position %d is missing from index", k, i)
		}
	}
	return nil
}
