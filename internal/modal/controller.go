// Package modal owns the visibility of the contact overlay for one page render.
package modal

// Session is one open-to-close lifecycle of the contact overlay
type Session struct {
	IsOpen              bool
	PreselectedCategory string
}

// OpenListener is notified each time the overlay opens
type OpenListener func(category string)

// Controller is the single source of truth for whether the contact overlay is
// mounted and which category opened it. Every trigger on the page goes through
// Open; the close button, overlay and a successful submit go through Close.
type Controller struct {
	doc     *Document
	session Session
	release func()
	onOpen  OpenListener
}

func NewController(doc *Document) *Controller {
	return &Controller{doc: doc}
}

// OnOpen registers a listener called on every Open
func (c *Controller) OnOpen(fn OpenListener) {
	c.onOpen = fn
}

// Open mounts the overlay with the given category (empty for none). Calling it
// while already open only overwrites the category.
func (c *Controller) Open(category string) {
	c.session.PreselectedCategory = category
	c.session.IsOpen = true
	if c.release == nil {
		c.release = c.doc.AcquireScrollLock()
	}
	if c.onOpen != nil {
		c.onOpen(category)
	}
}

// Close unmounts the overlay and gives the scroll lock back
func (c *Controller) Close() {
	c.session.IsOpen = false
	c.releaseLock()
}

// Teardown releases the scroll lock without touching the session. Callers
// defer it so no exit path leaves the page unscrollable.
func (c *Controller) Teardown() {
	c.releaseLock()
}

func (c *Controller) releaseLock() {
	if c.release != nil {
		c.release()
		c.release = nil
	}
}

func (c *Controller) IsOpen() bool {
	return c.session.IsOpen
}

func (c *Controller) PreselectedCategory() string {
	return c.session.PreselectedCategory
}

// Session returns a copy of the current state for the overlay to consume
func (c *Controller) Session() Session {
	return c.session
}
