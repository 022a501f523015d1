package surface

// Display is the injected fullscreen/orientation capability. Every request
// is best effort: a rejection is logged by the caller and never surfaces
// as an application error.
type Display interface {
	RequestFullscreen() error
	ExitFullscreen() error
	Fullscreen() bool
	LockOrientation() error
	UnlockOrientation() error
}

// NopDisplay is a Display for hosts without a fullscreen capability.
type NopDisplay struct{}

func (NopDisplay) RequestFullscreen() error { return nil }
func (NopDisplay) ExitFullscreen() error    { return nil }
func (NopDisplay) Fullscreen() bool         { return false }
func (NopDisplay) LockOrientation() error   { return nil }
func (NopDisplay) UnlockOrientation() error { return nil }

// FakeDisplay is a test double for Display.
type FakeDisplay struct {
	fullscreen   bool
	RequestErr   error
	OrientErr    error
	LockCalls    int
	UnlockCalls  int
	RequestCalls int
	ExitCalls    int
}

func (f *FakeDisplay) RequestFullscreen() error {
	f.RequestCalls++
	if f.RequestErr != nil {
		return f.RequestErr
	}
	f.fullscreen = true
	return nil
}

func (f *FakeDisplay) ExitFullscreen() error {
	f.ExitCalls++
	f.fullscreen = false
	return nil
}

func (f *FakeDisplay) Fullscreen() bool { return f.fullscreen }

func (f *FakeDisplay) LockOrientation() error {
	f.LockCalls++
	return f.OrientErr
}

func (f *FakeDisplay) UnlockOrientation() error {
	f.UnlockCalls++
	return nil
}

var (
	_ Display = NopDisplay{}
	_ Display = (*FakeDisplay)(nil)
)
