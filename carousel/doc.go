// Package carousel implements a keyed collection with a circular visiting
// order and one current position.
//
// A carousel stores values by key, like a map, and additionally keeps its keys
// in a ring. The key at the front of the ring is the current key. Next moves
// the ring forward so the following key becomes current; Previous moves it
// backward. Moving past the last key wraps to the first and vice versa.
//
// Key features:
//   - Generic over any comparable key type and any value type
//   - O(1) Add, Contains and Get
//   - O(1) amortized Next and Previous
//   - SeekTo rotates to a key in whichever direction its position suggests
//   - Preview reads upcoming or trailing keys without rotating
//
// Basic usage:
//
//	c := carousel.New[string, int]()
//	c.Add("a", 1)
//	c.Add("b", 2)
//	c.Add("c", 3)
//
//	v, _ := c.Next()        // 2, order is now b c a
//	c.Previous()            // back to a
//	c.SeekTo("c")           // c a b
//	keys := c.Preview(2)    // [c a]
//
// Deleting a key is O(n) since the key has to be found in the ring. Adding a
// key that is already present replaces its value and leaves the order alone.
package carousel
