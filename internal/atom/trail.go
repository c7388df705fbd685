package atom

// Point is a screen position in pixels.
type Point struct {
	X, Y float64
}

// Trail is a bounded FIFO of recent electron positions. Once full, each
// Push evicts the oldest point.
type Trail struct {
	buffer    []Point
	nextIndex int
	size      int
}

func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{buffer: make([]Point, capacity)}
}

func (t *Trail) Push(p Point) {
	t.buffer[t.nextIndex] = p
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.size < len(t.buffer) {
		t.size++
	}
}

func (t *Trail) Len() int { return t.size }
func (t *Trail) Cap() int { return len(t.buffer) }

// Recent returns up to the last n points, oldest first.
func (t *Trail) Recent(n int) []Point {
	if n > t.size {
		n = t.size
	}
	if n <= 0 {
		return nil
	}
	out := make([]Point, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}
