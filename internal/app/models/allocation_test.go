package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoomAllocationActiveOn(t *testing.T) {
	today := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("open-ended allocation is always active", func(t *testing.T) {
		alloc := &RoomAllocation{StartDate: today.AddDate(0, -1, 0)}
		assert.True(t, alloc.ActiveOn(today))
		assert.True(t, alloc.ActiveOn(today.AddDate(1, 0, 0)))
	})

	t.Run("end date in the future keeps the bed occupied", func(t *testing.T) {
		end := today.AddDate(0, 0, 10)
		alloc := &RoomAllocation{StartDate: today.AddDate(0, -1, 0), EndDate: &end}
		assert.True(t, alloc.ActiveOn(today))
	})

	t.Run("end date today still counts", func(t *testing.T) {
		end := today
		alloc := &RoomAllocation{StartDate: today.AddDate(0, -1, 0), EndDate: &end}
		assert.True(t, alloc.ActiveOn(today))
	})

	t.Run("past end date frees the bed", func(t *testing.T) {
		end := today.AddDate(0, 0, -1)
		alloc := &RoomAllocation{StartDate: today.AddDate(0, -1, 0), EndDate: &end}
		assert.False(t, alloc.ActiveOn(today))
	})
}

func TestRoomAllocationIsClosed(t *testing.T) {
	alloc := &RoomAllocation{}
	assert.False(t, alloc.IsClosed())

	end := time.Now()
	alloc.EndDate = &end
	assert.True(t, alloc.IsClosed())
}
