package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHostelTypeValid(t *testing.T) {
	assert.True(t, HostelBoys.Valid())
	assert.True(t, HostelGirls.Valid())
	assert.True(t, HostelMixed.Valid())
	assert.False(t, HostelType("coed").Valid())
}

func TestRoomTypeValid(t *testing.T) {
	assert.True(t, RoomSingle.Valid())
	assert.True(t, RoomDormitory.Valid())
	assert.False(t, RoomType("any").Valid())
}

func TestRoomAvailableBeds(t *testing.T) {
	room := &Room{Capacity: 3, CurrentOccupancy: 1}
	assert.Equal(t, 2, room.AvailableBeds())

	room.CurrentOccupancy = 3
	assert.Equal(t, 0, room.AvailableBeds())

	// Occupancy above capacity never reports negative beds
	room.CurrentOccupancy = 4
	assert.Equal(t, 0, room.AvailableBeds())
}

func TestHostelManagerIsActive(t *testing.T) {
	manager := &HostelManager{}
	assert.True(t, manager.IsActive())

	end := time.Now()
	manager.EndDate = &end
	assert.False(t, manager.IsActive())
}

func TestPaymentEnumsValid(t *testing.T) {
	assert.True(t, PaymentRent.Valid())
	assert.True(t, PaymentSecurityDeposit.Valid())
	assert.False(t, PaymentType("fine").Valid())

	assert.True(t, PaymentPaid.Valid())
	assert.True(t, PaymentWaived.Valid())
	assert.False(t, PaymentStatus("partial").Valid())
}
