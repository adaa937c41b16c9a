package state

// ScrollEvent is one viewport scroll observation reported by the browser.
// AboutBottom is the about heading's bottom edge relative to the viewport
// top, in CSS pixels; it is only meaningful when AboutPresent is true.
type ScrollEvent struct {
	AboutPresent bool
	AboutBottom  float64
}

// ScrollListeners is the page's set of scroll observers. Views register on
// mount and must call the returned remove func on unmount.
type ScrollListeners struct {
	next      int
	listeners map[int]func(ScrollEvent)
}

// NewScrollListeners returns an empty registry.
func NewScrollListeners() *ScrollListeners {
	return &ScrollListeners{listeners: make(map[int]func(ScrollEvent))}
}

// Add registers fn and returns a func that removes it. Calling remove more
// than once is harmless.
func (l *ScrollListeners) Add(fn func(ScrollEvent)) (remove func()) {
	id := l.next
	l.next++
	l.listeners[id] = fn
	return func() {
		delete(l.listeners, id)
	}
}

// Dispatch delivers ev to every registered listener.
func (l *ScrollListeners) Dispatch(ev ScrollEvent) {
	for _, fn := range l.listeners {
		fn(ev)
	}
}

// Len returns the number of registered listeners.
func (l *ScrollListeners) Len() int {
	return len(l.listeners)
}
