package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    ApplicationStatus
		to      ApplicationStatus
		allowed bool
	}{
		{"pending to approved", ApplicationPending, ApplicationApproved, true},
		{"pending to rejected", ApplicationPending, ApplicationRejected, true},
		{"pending to waitlisted", ApplicationPending, ApplicationWaitlisted, true},
		{"pending to cancelled", ApplicationPending, ApplicationCancelled, true},
		{"waitlisted to approved", ApplicationWaitlisted, ApplicationApproved, true},
		{"waitlisted to rejected", ApplicationWaitlisted, ApplicationRejected, true},
		{"waitlisted to cancelled", ApplicationWaitlisted, ApplicationCancelled, true},
		{"waitlisted to pending", ApplicationWaitlisted, ApplicationPending, false},
		{"waitlisted to waitlisted", ApplicationWaitlisted, ApplicationWaitlisted, false},
		{"approved is terminal", ApplicationApproved, ApplicationRejected, false},
		{"approved cannot be cancelled", ApplicationApproved, ApplicationCancelled, false},
		{"rejected is terminal", ApplicationRejected, ApplicationApproved, false},
		{"cancelled is terminal", ApplicationCancelled, ApplicationPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestApplicationStatusIsOpen(t *testing.T) {
	assert.True(t, ApplicationPending.IsOpen())
	assert.True(t, ApplicationApproved.IsOpen())
	assert.True(t, ApplicationWaitlisted.IsOpen())
	assert.False(t, ApplicationRejected.IsOpen())
	assert.False(t, ApplicationCancelled.IsOpen())
}

func TestApplicationStatusIsTerminal(t *testing.T) {
	assert.False(t, ApplicationPending.IsTerminal())
	assert.False(t, ApplicationWaitlisted.IsTerminal())
	assert.True(t, ApplicationApproved.IsTerminal())
	assert.True(t, ApplicationRejected.IsTerminal())
	assert.True(t, ApplicationCancelled.IsTerminal())
}

func TestApplicationStatusValid(t *testing.T) {
	for _, s := range []ApplicationStatus{
		ApplicationPending, ApplicationApproved, ApplicationRejected,
		ApplicationCancelled, ApplicationWaitlisted,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, ApplicationStatus("archived").Valid())
	assert.False(t, ApplicationStatus("").Valid())
}

func TestPreferredRoomTypeValid(t *testing.T) {
	assert.True(t, PreferSingle.Valid())
	assert.True(t, PreferAny.Valid())
	assert.False(t, PreferredRoomType("dormitory").Valid())
	assert.False(t, PreferredRoomType("").Valid())
}
