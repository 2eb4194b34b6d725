package forecast

// window is a fixed-capacity sliding buffer used by the future
// extrapolation loops. Pushing onto a full window drops the oldest value.
type window struct {
	vals []float64
	size int
}

// newWindow creates a window of the given capacity seeded with the tail
// of init (at most size values, oldest first).
func newWindow(size int, init []float64) *window {
	w := &window{vals: make([]float64, 0, size), size: size}
	start := 0
	if len(init) > size {
		start = len(init) - size
	}
	w.vals = append(w.vals, init[start:]...)
	return w
}

func (w *window) push(v float64) {
	if len(w.vals) == w.size {
		copy(w.vals, w.vals[1:])
		w.vals[len(w.vals)-1] = v
		return
	}
	w.vals = append(w.vals, v)
}

func (w *window) len() int { return len(w.vals) }

func (w *window) sum() float64 {
	var s float64
	for _, v := range w.vals {
		s += v
	}
	return s
}

func (w *window) mean() float64 {
	if len(w.vals) == 0 {
		return 0
	}
	return w.sum() / float64(len(w.vals))
}
