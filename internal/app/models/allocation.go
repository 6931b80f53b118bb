package models

import "time"

// RoomAllocation defines the assignment of one student to one room for an
// open-ended or bounded interval, based on the 'room_allocations' table.
// Rows are never deleted; closing an allocation sets end_date.
type RoomAllocation struct {
	ID            int64      `json:"id" db:"id"`
	StudentID     int64      `json:"studentId" db:"student_id"`
	RoomID        int64      `json:"roomId" db:"room_id"`
	HostelID      int64      `json:"hostelId" db:"hostel_id"`
	ApplicationID *int64     `json:"applicationId,omitempty" db:"application_id"`
	StartDate     time.Time  `json:"startDate" db:"start_date"`
	EndDate       *time.Time `json:"endDate,omitempty" db:"end_date"` // Null = open-ended
	Notes         *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`

	Student *Student `json:"student,omitempty"`
	Room    *Room    `json:"room,omitempty"`
	Hostel  *Hostel  `json:"hostel,omitempty"`
}

// ActiveOn reports whether the allocation counts against room capacity on the
// given date: open-ended, or closed with an end date that has not yet passed.
func (a *RoomAllocation) ActiveOn(date time.Time) bool {
	if a.EndDate == nil {
		return true
	}
	d := date.Truncate(24 * time.Hour)
	return !a.EndDate.Truncate(24 * time.Hour).Before(d)
}

// IsClosed reports whether the allocation has an end date set.
func (a *RoomAllocation) IsClosed() bool {
	return a.EndDate != nil
}
