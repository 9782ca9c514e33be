package frames

import "testing"

func TestScheduler_RunsOnNextTickOnly(t *testing.T) {
	s := NewScheduler()
	calls := 0
	h := s.Request(func(uint64) { calls++ })

	if !h.Active() {
		t.Fatal("handle should be active before the tick")
	}
	if got := s.Tick(); got != 1 {
		t.Errorf("Tick ran %d callbacks, want 1", got)
	}
	if h.Active() {
		t.Error("handle should be inactive after firing")
	}
	s.Tick()
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
}

func TestScheduler_CancelPreventsRun(t *testing.T) {
	s := NewScheduler()
	ran := false
	h := s.Request(func(uint64) { ran = true })
	h.Cancel()

	if s.Pending() != 0 {
		t.Errorf("Pending = %d after cancel, want 0", s.Pending())
	}
	s.Tick()
	if ran {
		t.Error("cancelled callback ran")
	}

	var nilHandle *Handle
	nilHandle.Cancel()
	if nilHandle.Active() {
		t.Error("nil handle reported active")
	}
}

func TestScheduler_RequestsDuringTickAreDeferred(t *testing.T) {
	s := NewScheduler()
	var frames []uint64
	var loop Callback
	loop = func(frame uint64) {
		frames = append(frames, frame)
		if len(frames) < 3 {
			s.Request(loop)
		}
	}
	s.Request(loop)

	for i := 0; i < 5; i++ {
		if got := s.Tick(); got > 1 {
			t.Fatalf("tick %d ran %d callbacks, want at most 1", i, got)
		}
	}
	want := []uint64{1, 2, 3}
	if len(frames) != len(want) {
		t.Fatalf("frames = %v, want %v", frames, want)
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frames[%d] = %d, want %d", i, frames[i], want[i])
		}
	}
	if s.Frame() != 5 {
		t.Errorf("Frame = %d, want 5", s.Frame())
	}
}
