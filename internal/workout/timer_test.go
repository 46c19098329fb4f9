package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimerStartAndCancelAt(t *testing.T) {
	rt := NewRestTimer()
	defer rt.Close()

	rt.Start(0, 1, 90)
	st := rt.State()
	assert.True(t, st.Active)
	assert.Equal(t, 0, st.ExerciseIndex)
	assert.Equal(t, 1, st.SetIndex)
	assert.Equal(t, 90, st.Remaining)
	assert.Equal(t, 90, st.Total)

	// Cancelling a different location is ignored.
	rt.CancelAt(0, 2)
	assert.True(t, rt.State().Active)

	// Un-marking the timed set cancels.
	rt.CancelAt(0, 1)
	assert.False(t, rt.State().Active)
}

func TestTimerStartSupersedesPrevious(t *testing.T) {
	rt := NewRestTimer()
	defer rt.Close()

	rt.Start(0, 0, 90)
	rt.Start(1, 2, 60)

	st := rt.State()
	assert.Equal(t, 1, st.ExerciseIndex)
	assert.Equal(t, 2, st.SetIndex)
	assert.Equal(t, 60, st.Remaining)
}

func TestTimerTickCountsDownAndDeactivates(t *testing.T) {
	rt := NewRestTimer()
	defer rt.Close()

	rt.Start(0, 0, 2)
	assert.True(t, rt.tick())
	assert.Equal(t, 1, rt.State().Remaining)
	assert.False(t, rt.tick())
	assert.False(t, rt.State().Active)
}

func TestTimerExtend(t *testing.T) {
	rt := NewRestTimer()
	defer rt.Close()

	rt.Start(0, 0, 90)
	rt.Extend(30)
	st := rt.State()
	assert.Equal(t, 120, st.Remaining)
	assert.Equal(t, 120, st.Total)

	// Extending an inactive timer does nothing.
	rt.Skip()
	rt.Extend(30)
	assert.False(t, rt.State().Active)
	assert.Equal(t, 0, rt.State().Remaining)
}

func TestTimerSkip(t *testing.T) {
	rt := NewRestTimer()
	defer rt.Close()

	rt.Start(2, 1, 90)
	rt.Skip()
	assert.False(t, rt.State().Active)
}

func TestTimerApply(t *testing.T) {
	rt := NewRestTimer()
	defer rt.Close()

	rt.Apply(TimerEvent{Kind: TimerStart, ExerciseIndex: 0, SetIndex: 2}, 45)
	assert.Equal(t, 45, rt.State().Remaining)

	// Stop with SetIndex -1 cancels any set of the exercise.
	rt.Apply(TimerEvent{Kind: TimerStop, ExerciseIndex: 0, SetIndex: -1}, 0)
	assert.False(t, rt.State().Active)
}
