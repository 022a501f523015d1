package app

import (
	"sync"

	"github.com/alakhsir/studium/internal/session"
)

var _ session.NavStack = (*Router)(nil)

// entryKind distinguishes real pages from the playback sentinel.
type entryKind int

const (
	entryPage entryKind = iota
	entryMarker
)

type entry struct {
	kind entryKind
	page Page
}

// Router is the page history stack. It doubles as the back-navigation
// capability injected into the session controller: the sentinel marker the
// controller pushes lives on the same stack as the pages, so a back step
// consumes whichever is on top, exactly like a browser history.
//
// Methods are safe for concurrent use; the controller calls PushMarker and
// PopMarker from its own goroutines.
type Router struct {
	mu      sync.Mutex
	entries []entry
	handler func()
}

// NewRouter creates a router with the given root page.
func NewRouter(root Page) *Router {
	return &Router{entries: []entry{{kind: entryPage, page: root}}}
}

// Current returns the topmost page, skipping any marker above it.
func (r *Router) Current() Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].kind == entryPage {
			return r.entries[i].page
		}
	}
	return PageLogin
}

// Push navigates forward to a page.
func (r *Router) Push(p Page) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry{kind: entryPage, page: p})
}

// Replace resets the whole history to a single root page. Markers are
// discarded; the caller is responsible for closing any active session first.
func (r *Router) Replace(root Page) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = []entry{{kind: entryPage, page: root}}
}

// Back performs one user-initiated back step. If the top entry is the
// sentinel it is consumed and the registered handler fires instead of a
// page change. Returns false when already at the root with nothing to pop.
func (r *Router) Back() bool {
	r.mu.Lock()
	if len(r.entries) <= 1 {
		r.mu.Unlock()
		return false
	}
	top := r.entries[len(r.entries)-1]
	r.entries = r.entries[:len(r.entries)-1]
	handler := r.handler
	r.mu.Unlock()

	if top.kind == entryMarker && handler != nil {
		handler()
	}
	return true
}

// Depth returns the current number of stack entries.
func (r *Router) Depth() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// HasMarker reports whether the sentinel is on the stack.
func (r *Router) HasMarker() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.kind == entryMarker {
			return true
		}
	}
	return false
}

// PushMarker pushes the playback sentinel onto the stack.
func (r *Router) PushMarker() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry{kind: entryMarker})
}

// PopMarker removes the topmost sentinel programmatically. Like a history
// pop on the platform, the back handler fires for the consumed entry.
func (r *Router) PopMarker() {
	r.mu.Lock()
	var handler func()
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].kind == entryMarker {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			handler = r.handler
			break
		}
	}
	r.mu.Unlock()

	if handler != nil {
		handler()
	}
}

// SetBackHandler registers the function invoked whenever a back step
// consumes the sentinel.
func (r *Router) SetBackHandler(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handler = fn
}
