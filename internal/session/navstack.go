package session

// NavStack is the injected back-navigation capability.
//
// The controller uses a single sentinel marker on the stack to make back
// gestures observable: one is pushed when playback starts and removed when
// the session closes. The concrete implementation is the application's page
// router; tests use FakeNavStack.
type NavStack interface {
	// PushMarker pushes the sentinel entry onto the navigation stack.
	PushMarker()

	// PopMarker programmatically removes the sentinel, triggering one
	// back-navigation step. Like a real history stack, the step fires the
	// back handler; the controller suppresses reinterpretation of its own
	// pops through the closing-in-progress flag.
	PopMarker()

	// SetBackHandler registers the function invoked on every back
	// gesture that consumes the marker, user-initiated or programmatic.
	SetBackHandler(fn func())
}

// FakeNavStack is a test double for NavStack that mimics a real history
// stack: PopMarker fires the back handler synchronously, exactly as a
// programmatic back step does on the platform.
type FakeNavStack struct {
	handler func()
	markers int
	pushes  int
	pops    int
}

// NewFakeNavStack creates a fake navigation stack for testing.
func NewFakeNavStack() *FakeNavStack {
	return &FakeNavStack{}
}

func (f *FakeNavStack) PushMarker() {
	f.markers++
	f.pushes++
}

func (f *FakeNavStack) PopMarker() {
	if f.markers == 0 {
		return
	}
	f.markers--
	f.pops++
	if f.handler != nil {
		f.handler()
	}
}

func (f *FakeNavStack) SetBackHandler(fn func()) { f.handler = fn }

// Test helpers

// SimulateBack emulates a user-initiated back gesture: the platform pops
// the marker itself, then notifies the handler.
func (f *FakeNavStack) SimulateBack() {
	if f.markers > 0 {
		f.markers--
	}
	if f.handler != nil {
		f.handler()
	}
}

// Markers returns how many sentinel entries are currently on the stack.
func (f *FakeNavStack) Markers() int { return f.markers }

// Pushes returns the total number of PushMarker calls.
func (f *FakeNavStack) Pushes() int { return f.pushes }

// Pops returns the total number of programmatic PopMarker steps taken.
func (f *FakeNavStack) Pops() int { return f.pops }

// Verify FakeNavStack implements NavStack at compile time.
var _ NavStack = (*FakeNavStack)(nil)
