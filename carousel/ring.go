package carousel

// ring is a deque of keys maintained over a ring buffer. Position 0 is the
// front of the deque, which the carousel treats as its current key.
type ring[K comparable] struct {
	buf  []K
	head int // index of the front of the deque in buf
	n    int // number of live keys
}

func (r *ring[K]) len() int { return r.n }

// pos maps a deque position to an index in buf.
func (r *ring[K]) pos(i int) int {
	return (r.head + i) % len(r.buf)
}

func (r *ring[K]) at(i int) K {
	return r.buf[r.pos(i)]
}

// reserve grows the backing buffer to hold at least n keys.
func (r *ring[K]) reserve(n int) {
	if n > len(r.buf) {
		r.grow(n)
	}
}

func (r *ring[K]) grow(n int) {
	buf := make([]K, n)
	for i := 0; i < r.n; i++ {
		buf[i] = r.at(i)
	}
	r.buf = buf
	r.head = 0
}

func (r *ring[K]) pushBack(k K) {
	if r.n == len(r.buf) {
		r.grow(max(1, 2*len(r.buf)))
	}
	r.buf[r.pos(r.n)] = k
	r.n++
}

// rotateForward moves the front key to the back.
func (r *ring[K]) rotateForward() {
	if r.n == 0 {
		return
	}
	var zero K
	front := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.buf[r.pos(r.n-1)] = front
}

// rotateBackward moves the back key to the front.
func (r *ring[K]) rotateBackward() {
	if r.n == 0 {
		return
	}
	var zero K
	last := r.pos(r.n - 1)
	back := r.buf[last]
	r.buf[last] = zero
	r.head = (r.head - 1 + len(r.buf)) % len(r.buf)
	r.buf[r.head] = back
}

// indexOf returns the deque position of k, or -1.
func (r *ring[K]) indexOf(k K) int {
	for i := 0; i < r.n; i++ {
		if r.at(i) == k {
			return i
		}
	}
	return -1
}

// removeAt deletes the key at position i, closing the gap by shifting the
// keys behind it one step towards the front.
func (r *ring[K]) removeAt(i int) {
	for j := i; j < r.n-1; j++ {
		r.buf[r.pos(j)] = r.at(j + 1)
	}
	var zero K
	r.buf[r.pos(r.n-1)] = zero
	r.n--
	if r.n == 0 {
		r.head = 0
	}
}

// reset empties the deque but keeps its memory for reuse.
func (r *ring[K]) reset() {
	clear(r.buf)
	r.head = 0
	r.n = 0
}
