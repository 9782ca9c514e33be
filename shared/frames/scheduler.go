// Package frames schedules one-shot callbacks for the next display tick,
// the way a browser's animation frame queue does. Callbacks requested while
// a tick is running are deferred to the following tick.
package frames

// Callback runs once on the tick it was scheduled for.
type Callback func(frame uint64)

// Handle is an owned reference to one scheduled callback.
type Handle struct {
	fn        Callback
	cancelled bool
	fired     bool
}

// Cancel prevents the callback from running. Safe on nil and on handles
// that already fired.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.cancelled = true
}

// Active reports whether the callback is still waiting to run.
func (h *Handle) Active() bool {
	return h != nil && !h.cancelled && !h.fired
}

// Scheduler owns the queue of pending callbacks for one world.
type Scheduler struct {
	queue []*Handle
	spare []*Handle
	frame uint64
}

// NewScheduler returns an empty scheduler at frame 0.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Request schedules fn for the next Tick.
func (s *Scheduler) Request(fn Callback) *Handle {
	h := &Handle{fn: fn}
	s.queue = append(s.queue, h)
	return h
}

// Tick advances the frame counter and runs every callback that was
// pending when the tick began. It returns how many callbacks ran.
func (s *Scheduler) Tick() int {
	s.frame++

	// Swap buffers so requests made by callbacks land in the next tick.
	run := s.queue
	s.queue = s.spare[:0]

	ran := 0
	for i, h := range run {
		run[i] = nil
		if h.cancelled {
			continue
		}
		h.fired = true
		h.fn(s.frame)
		ran++
	}
	s.spare = run[:0]
	return ran
}

// Pending returns the number of callbacks waiting for the next tick.
func (s *Scheduler) Pending() int {
	n := 0
	for _, h := range s.queue {
		if !h.cancelled {
			n++
		}
	}
	return n
}

// Frame returns the number of ticks run so far.
func (s *Scheduler) Frame() uint64 {
	return s.frame
}
