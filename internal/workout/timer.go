package workout

import (
	"sync"
	"time"
)

// DefaultRestSeconds is used when the profile has no rest timer preference.
const DefaultRestSeconds = 90

// TimerState is a read-only snapshot of the countdown for display.
type TimerState struct {
	Active        bool `json:"active"`
	ExerciseIndex int  `json:"exerciseIndex"`
	SetIndex      int  `json:"setIndex"`
	Remaining     int  `json:"remaining"` // seconds
	Total         int  `json:"total"`     // seconds, grows with extensions
}

// RestTimer is the single rest countdown owned by an active session. At most
// one location is timed at a time; starting a new countdown supersedes any
// running one. Reaching zero deactivates it. The timer is a display
// affordance only and never blocks editor operations.
type RestTimer struct {
	mu    sync.Mutex
	state TimerState
	stop  chan struct{}

	// tick interval, overridable in tests
	interval time.Duration
}

func NewRestTimer() *RestTimer {
	return &RestTimer{interval: time.Second}
}

// Apply reacts to an editor timer event. seconds is the configured rest
// duration for start events.
func (t *RestTimer) Apply(ev TimerEvent, seconds int) {
	switch ev.Kind {
	case TimerStart:
		t.Start(ev.ExerciseIndex, ev.SetIndex, seconds)
	case TimerStop:
		t.CancelAt(ev.ExerciseIndex, ev.SetIndex)
	}
}

// Start begins a countdown for the given location, abandoning any running
// one.
func (t *RestTimer) Start(exerciseIdx, setIdx, seconds int) {
	if seconds <= 0 {
		seconds = DefaultRestSeconds
	}

	t.mu.Lock()
	t.stopLocked()
	t.state = TimerState{
		Active:        true,
		ExerciseIndex: exerciseIdx,
		SetIndex:      setIdx,
		Remaining:     seconds,
		Total:         seconds,
	}
	stop := make(chan struct{})
	t.stop = stop
	interval := t.interval
	t.mu.Unlock()

	go t.run(stop, interval)
}

func (t *RestTimer) run(stop chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !t.tick() {
				return
			}
		}
	}
}

// tick advances the countdown by one second and reports whether it is still
// running.
func (t *RestTimer) tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.state.Active {
		return false
	}
	t.state.Remaining--
	if t.state.Remaining <= 0 {
		t.state = TimerState{}
		return false
	}
	return true
}

// CancelAt stops the countdown if it is keyed to the given location.
// setIdx -1 matches any set of the exercise.
func (t *RestTimer) CancelAt(exerciseIdx, setIdx int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.state.Active || t.state.ExerciseIndex != exerciseIdx {
		return
	}
	if setIdx != -1 && t.state.SetIndex != setIdx {
		return
	}
	t.stopLocked()
	t.state = TimerState{}
}

// Skip deactivates the countdown immediately, wherever it is keyed.
func (t *RestTimer) Skip() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.state = TimerState{}
}

// Extend adds to both the remaining and total time, keeping the progress
// ratio meaningful.
func (t *RestTimer) Extend(seconds int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.state.Active {
		return
	}
	t.state.Remaining += seconds
	t.state.Total += seconds
}

// State returns a snapshot for display.
func (t *RestTimer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Close tears the timer down; called when the owning session is discarded or
// finished so no countdown goroutine outlives the editor.
func (t *RestTimer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.state = TimerState{}
}

func (t *RestTimer) stopLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}
