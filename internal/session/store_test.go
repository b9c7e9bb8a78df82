package session

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

func TestStore_UpdateNotifiesSubscribers(t *testing.T) {
	store := NewStore(initialState())

	var received []State
	unsubscribe := store.Subscribe(func(s State) {
		received = append(received, s)
	})

	store.Update(func(s *State) { s.CurrentStep = domain.StepReservationDetails })
	unsubscribe()
	store.Update(func(s *State) { s.CurrentStep = domain.StepSummary })

	require.Len(t, received, 1)
	assert.Equal(t, domain.StepReservationDetails, received[0].CurrentStep)
	assert.Equal(t, domain.StepSummary, store.Snapshot().CurrentStep)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store := NewStore(initialState())
	store.Update(func(s *State) {
		s.Availability = &domain.AvailabilityResult{Date: "2025-03-14", TimeSlots: []string{"18:00"}}
	})

	snapshot := store.Snapshot()
	snapshot.Availability.TimeSlots[0] = "23:00"
	snapshot.Availability.Bookable = true

	current := store.Snapshot()
	assert.Equal(t, []string{"18:00"}, current.Availability.TimeSlots)
	assert.False(t, current.Availability.Bookable)
}

func TestDebouncer_OnlyLastScheduleRuns(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var runs atomic.Int32
	var last atomic.Uint64
	for i := 0; i < 5; i++ {
		d.Schedule(func(generation uint64) {
			runs.Add(1)
			last.Store(generation)
		})
	}

	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
	assert.True(t, d.IsLatest(last.Load()))
}

func TestDebouncer_InvalidateAndStop(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)

	var runs atomic.Int32
	generation := d.Schedule(func(uint64) { runs.Add(1) })
	d.Invalidate()
	assert.False(t, d.IsLatest(generation))

	d.Stop()
	d.Schedule(func(uint64) { runs.Add(1) })

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())
}
