package modal

import "sync"

// Document is the page-level resource the contact overlay locks while it is
// mounted. The rendered <body> gets the overflow-hidden class iff the
// document is locked.
type Document struct {
	mu    sync.Mutex
	locks int
}

func NewDocument() *Document {
	return &Document{}
}

// AcquireScrollLock disables page scroll and returns the func that gives the
// lock back. The release func is safe to call more than once.
func (d *Document) AcquireScrollLock() (release func()) {
	d.mu.Lock()
	d.locks++
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			d.locks--
			d.mu.Unlock()
		})
	}
}

// ScrollLocked reports whether any holder currently has scroll disabled
func (d *Document) ScrollLocked() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.locks > 0
}

// BodyClass is the class attribute value for <body>
func (d *Document) BodyClass() string {
	if d.ScrollLocked() {
		return "overflow-hidden"
	}
	return ""
}
