package models

import "time"

// Director represents the staff profile owning an institute's administrative data
type Director struct {
	ID                     int64      `json:"id" db:"id"`
	UserID                 int64      `json:"userId" db:"user_id"`
	InstituteID            int64      `json:"instituteId" db:"institute_id"`
	Designation            string     `json:"designation" db:"designation"`
	ContactNumber          *string    `json:"contactNumber,omitempty" db:"contact_number"`
	AlternateContactNumber *string    `json:"alternateContactNumber,omitempty" db:"alternate_contact_number"`
	Address                string     `json:"address" db:"address"`
	City                   string     `json:"city" db:"city"`
	State                  string     `json:"state" db:"state"`
	Pincode                string     `json:"pincode" db:"pincode"`
	StartDate              time.Time  `json:"startDate" db:"start_date"`
	EndDate                *time.Time `json:"endDate,omitempty" db:"end_date"` // Null = active directorship
	User                   *User      `json:"user,omitempty"`
	Institute              *Institute `json:"institute,omitempty"`
}

// IsActive reports whether the directorship is still current.
func (d *Director) IsActive() bool {
	return d.EndDate == nil
}
