package models

import "time"

// HostelType defines the gender policy of a hostel
type HostelType string

const (
	HostelBoys  HostelType = "boys"
	HostelGirls HostelType = "girls"
	HostelMixed HostelType = "mixed"
)

// Valid reports whether the hostel type is known.
func (t HostelType) Valid() bool {
	switch t {
	case HostelBoys, HostelGirls, HostelMixed:
		return true
	}
	return false
}

// Hostel defines the hostel model based on the 'hostels' table
type Hostel struct {
	ID          int64      `json:"id" db:"id"`
	InstituteID int64      `json:"instituteId" db:"institute_id"`
	DirectorID  *int64     `json:"directorId,omitempty" db:"director_id"`
	Name        string     `json:"name" db:"name"` // Unique within the institute
	HostelType  HostelType `json:"hostelType" db:"hostel_type"`

	AddressLine1 string  `json:"addressLine1" db:"address_line1"`
	AddressLine2 *string `json:"addressLine2,omitempty" db:"address_line2"`
	City         string  `json:"city" db:"city"`
	State        string  `json:"state" db:"state"`
	Pincode      string  `json:"pincode" db:"pincode"`

	ContactEmail  *string `json:"contactEmail,omitempty" db:"contact_email"`
	ContactNumber *string `json:"contactNumber,omitempty" db:"contact_number"`

	TotalRooms     int     `json:"totalRooms" db:"total_rooms"`
	AvailableRooms int     `json:"availableRooms" db:"available_rooms"` // Rooms with at least one free bed, maintained by the allocation engine
	RentPerMonth   float64 `json:"rentPerMonth" db:"rent_per_month"`
	SecurityDeposit float64 `json:"securityDeposit" db:"security_deposit"`

	// Facility flags
	Wifi             bool `json:"wifi" db:"wifi"`
	Laundry          bool `json:"laundry" db:"laundry"`
	Mess             bool `json:"mess" db:"mess"`
	Gym              bool `json:"gym" db:"gym"`
	Parking          bool `json:"parking" db:"parking"`
	ACRoomsAvailable bool `json:"acRoomsAvailable" db:"ac_rooms_available"`

	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	Institute *Institute `json:"institute,omitempty"`
	Director  *Director  `json:"director,omitempty"`
}

// RoomType defines the occupancy class of a room
type RoomType string

const (
	RoomSingle    RoomType = "single"
	RoomDouble    RoomType = "double"
	RoomTriple    RoomType = "triple"
	RoomDormitory RoomType = "dormitory"
)

// Valid reports whether the room type is known.
func (t RoomType) Valid() bool {
	switch t {
	case RoomSingle, RoomDouble, RoomTriple, RoomDormitory:
		return true
	}
	return false
}

// Room defines the room model based on the 'rooms' table
type Room struct {
	ID               int64    `json:"id" db:"id"`
	HostelID         int64    `json:"hostelId" db:"hostel_id"`
	RoomNumber       string   `json:"roomNumber" db:"room_number"` // Unique within the hostel, case-insensitive
	RoomType         RoomType `json:"roomType" db:"room_type"`
	Capacity         int      `json:"capacity" db:"capacity"`
	CurrentOccupancy int      `json:"currentOccupancy" db:"current_occupancy"`
	RentPerBed       float64  `json:"rentPerBed" db:"rent_per_bed"`
	Floor            *int     `json:"floor,omitempty" db:"floor"`
	IsAvailable      bool     `json:"isAvailable" db:"is_available"` // Requires at least one free bed
	Hostel           *Hostel  `json:"hostel,omitempty"`
}

// AvailableBeds returns the number of free beds in the room.
func (r *Room) AvailableBeds() int {
	free := r.Capacity - r.CurrentOccupancy
	if free < 0 {
		return 0
	}
	return free
}

// HostelManager represents the staff profile operationally responsible for one hostel
type HostelManager struct {
	ID                     int64      `json:"id" db:"id"`
	UserID                 int64      `json:"userId" db:"user_id"`
	InstituteID            int64      `json:"instituteId" db:"institute_id"`
	HostelID               *int64     `json:"hostelId,omitempty" db:"hostel_id"` // One manager per hostel
	Designation            string     `json:"designation" db:"designation"`
	ContactNumber          *string    `json:"contactNumber,omitempty" db:"contact_number"`
	AlternateContactNumber *string    `json:"alternateContactNumber,omitempty" db:"alternate_contact_number"`
	Address                string     `json:"address" db:"address"`
	City                   string     `json:"city" db:"city"`
	State                  string     `json:"state" db:"state"`
	Pincode                string     `json:"pincode" db:"pincode"`
	StartDate              time.Time  `json:"startDate" db:"start_date"`
	EndDate                *time.Time `json:"endDate,omitempty" db:"end_date"` // Null = active assignment
	User                   *User      `json:"user,omitempty"`
	Institute              *Institute `json:"institute,omitempty"`
	Hostel                 *Hostel    `json:"hostel,omitempty"`
}

// IsActive reports whether the manager assignment is still current.
func (m *HostelManager) IsActive() bool {
	return m.EndDate == nil
}

// HostelImage defines an uploaded photograph of a hostel
type HostelImage struct {
	ID        int64     `json:"id" db:"id"`
	HostelID  int64     `json:"hostelId" db:"hostel_id"`
	FilePath  string    `json:"filePath" db:"file_path"`
	FileURL   string    `json:"fileUrl" db:"file_url"`
	Caption   *string   `json:"caption,omitempty" db:"caption"`
	IsPrimary bool      `json:"isPrimary" db:"is_primary"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
