package app

import "testing"

func TestRouterPushAndCurrent(t *testing.T) {
	r := NewRouter(PageBatches)

	if got := r.Current(); got != PageBatches {
		t.Errorf("Current() = %v, want PageBatches", got)
	}

	r.Push(PageBatchDetail)
	r.Push(PageChapters)

	if got := r.Current(); got != PageChapters {
		t.Errorf("Current() = %v, want PageChapters", got)
	}
	if got := r.Depth(); got != 3 {
		t.Errorf("Depth() = %d, want 3", got)
	}
}

func TestRouterBack(t *testing.T) {
	r := NewRouter(PageBatches)
	r.Push(PageBatchDetail)

	if !r.Back() {
		t.Fatal("Back() = false, want true")
	}
	if got := r.Current(); got != PageBatches {
		t.Errorf("Current() after back = %v, want PageBatches", got)
	}
}

func TestRouterBackAtRoot(t *testing.T) {
	r := NewRouter(PageBatches)

	if r.Back() {
		t.Error("Back() at root = true, want false")
	}
	if got := r.Depth(); got != 1 {
		t.Errorf("Depth() = %d, want 1", got)
	}
}

func TestRouterCurrentSkipsMarker(t *testing.T) {
	r := NewRouter(PageBatches)
	r.Push(PageContents)
	r.PushMarker()

	if got := r.Current(); got != PageContents {
		t.Errorf("Current() = %v, want PageContents", got)
	}
}

func TestRouterBackConsumesMarker(t *testing.T) {
	r := NewRouter(PageBatches)
	r.Push(PageContents)
	r.PushMarker()

	fired := 0
	r.SetBackHandler(func() { fired++ })

	if !r.Back() {
		t.Fatal("Back() = false, want true")
	}
	if fired != 1 {
		t.Errorf("handler fired %d times, want 1", fired)
	}
	// The marker absorbed the back step, so the page did not change.
	if got := r.Current(); got != PageContents {
		t.Errorf("Current() = %v, want PageContents", got)
	}
	if r.HasMarker() {
		t.Error("HasMarker() = true after consuming back")
	}

	// The next back step is a normal page pop.
	if !r.Back() {
		t.Fatal("second Back() = false, want true")
	}
	if fired != 1 {
		t.Errorf("handler fired %d times after page pop, want 1", fired)
	}
	if got := r.Current(); got != PageBatches {
		t.Errorf("Current() = %v, want PageBatches", got)
	}
}

func TestRouterBackOnPageDoesNotFireHandler(t *testing.T) {
	r := NewRouter(PageBatches)
	r.Push(PageBatchDetail)

	fired := 0
	r.SetBackHandler(func() { fired++ })

	r.Back()
	if fired != 0 {
		t.Errorf("handler fired %d times on a page pop, want 0", fired)
	}
}

func TestRouterPopMarker(t *testing.T) {
	r := NewRouter(PageBatches)
	r.PushMarker()
	r.Push(PageContents)

	fired := 0
	r.SetBackHandler(func() { fired++ })

	r.PopMarker()

	if fired != 1 {
		t.Errorf("handler fired %d times, want 1", fired)
	}
	if r.HasMarker() {
		t.Error("HasMarker() = true after PopMarker")
	}
	// Pages above the marker survive the programmatic pop.
	if got := r.Current(); got != PageContents {
		t.Errorf("Current() = %v, want PageContents", got)
	}
	if got := r.Depth(); got != 2 {
		t.Errorf("Depth() = %d, want 2", got)
	}
}

func TestRouterPopMarkerWithoutMarker(t *testing.T) {
	r := NewRouter(PageBatches)

	fired := 0
	r.SetBackHandler(func() { fired++ })

	r.PopMarker()
	if fired != 0 {
		t.Errorf("handler fired %d times without a marker, want 0", fired)
	}
}

func TestRouterReplaceDiscardsMarker(t *testing.T) {
	r := NewRouter(PageBatches)
	r.Push(PageContents)
	r.PushMarker()

	r.Replace(PageLogin)

	if got := r.Current(); got != PageLogin {
		t.Errorf("Current() = %v, want PageLogin", got)
	}
	if got := r.Depth(); got != 1 {
		t.Errorf("Depth() = %d, want 1", got)
	}
	if r.HasMarker() {
		t.Error("HasMarker() = true after Replace")
	}
}
