package dto

import (
	"time"

	"github.com/arjun/hostelmate/internal/app/models"
)

// CreateHostelRequest represents hostel creation data
type CreateHostelRequest struct {
	Name       string `json:"name" binding:"required"`
	HostelType string `json:"hostelType" binding:"required,oneof=boys girls mixed"`

	AddressLine1 string  `json:"addressLine1" binding:"required"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	City         string  `json:"city" binding:"required"`
	State        string  `json:"state" binding:"required"`
	Pincode      string  `json:"pincode" binding:"required,pincode"`

	ContactEmail  *string `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactNumber *string `json:"contactNumber,omitempty"`

	TotalRooms      int     `json:"totalRooms" binding:"required,min=0"`
	RentPerMonth    float64 `json:"rentPerMonth" binding:"required,min=0"`
	SecurityDeposit float64 `json:"securityDeposit" binding:"min=0"`

	Wifi             bool `json:"wifi"`
	Laundry          bool `json:"laundry"`
	Mess             bool `json:"mess"`
	Gym              bool `json:"gym"`
	Parking          bool `json:"parking"`
	ACRoomsAvailable bool `json:"acRoomsAvailable"`
}

// UpdateHostelRequest represents hostel update data. Available room count is
// maintained by the allocation engine and cannot be set here.
type UpdateHostelRequest struct {
	Name       string `json:"name" binding:"required"`
	HostelType string `json:"hostelType" binding:"required,oneof=boys girls mixed"`

	AddressLine1 string  `json:"addressLine1" binding:"required"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	City         string  `json:"city" binding:"required"`
	State        string  `json:"state" binding:"required"`
	Pincode      string  `json:"pincode" binding:"required,pincode"`

	ContactEmail  *string `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactNumber *string `json:"contactNumber,omitempty"`

	TotalRooms      int     `json:"totalRooms" binding:"required,min=0"`
	RentPerMonth    float64 `json:"rentPerMonth" binding:"required,min=0"`
	SecurityDeposit float64 `json:"securityDeposit" binding:"min=0"`

	Wifi             bool `json:"wifi"`
	Laundry          bool `json:"laundry"`
	Mess             bool `json:"mess"`
	Gym              bool `json:"gym"`
	Parking          bool `json:"parking"`
	ACRoomsAvailable bool `json:"acRoomsAvailable"`

	IsActive bool `json:"isActive"`
}

// HostelResponse represents hostel information
type HostelResponse struct {
	ID          int64  `json:"id"`
	InstituteID int64  `json:"instituteId"`
	DirectorID  *int64 `json:"directorId,omitempty"`
	Name        string `json:"name"`
	HostelType  string `json:"hostelType"`

	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Pincode      string  `json:"pincode"`

	ContactEmail  *string `json:"contactEmail,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`

	TotalRooms      int     `json:"totalRooms"`
	AvailableRooms  int     `json:"availableRooms"`
	RentPerMonth    float64 `json:"rentPerMonth"`
	SecurityDeposit float64 `json:"securityDeposit"`

	Wifi             bool `json:"wifi"`
	Laundry          bool `json:"laundry"`
	Mess             bool `json:"mess"`
	Gym              bool `json:"gym"`
	Parking          bool `json:"parking"`
	ACRoomsAvailable bool `json:"acRoomsAvailable"`

	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`

	Images []HostelImageResponse `json:"images,omitempty"`
}

// FromHostel converts a models.Hostel to a HostelResponse
func FromHostel(hostel *models.Hostel) HostelResponse {
	if hostel == nil {
		return HostelResponse{}
	}
	return HostelResponse{
		ID:               hostel.ID,
		InstituteID:      hostel.InstituteID,
		DirectorID:       hostel.DirectorID,
		Name:             hostel.Name,
		HostelType:       string(hostel.HostelType),
		AddressLine1:     hostel.AddressLine1,
		AddressLine2:     hostel.AddressLine2,
		City:             hostel.City,
		State:            hostel.State,
		Pincode:          hostel.Pincode,
		ContactEmail:     hostel.ContactEmail,
		ContactNumber:    hostel.ContactNumber,
		TotalRooms:       hostel.TotalRooms,
		AvailableRooms:   hostel.AvailableRooms,
		RentPerMonth:     hostel.RentPerMonth,
		SecurityDeposit:  hostel.SecurityDeposit,
		Wifi:             hostel.Wifi,
		Laundry:          hostel.Laundry,
		Mess:             hostel.Mess,
		Gym:              hostel.Gym,
		Parking:          hostel.Parking,
		ACRoomsAvailable: hostel.ACRoomsAvailable,
		IsActive:         hostel.IsActive,
		CreatedAt:        hostel.CreatedAt,
	}
}

// HostelListResponse represents a paginated list of hostels
type HostelListResponse struct {
	Hostels    []HostelResponse `json:"hostels"`
	Pagination PaginationInfo   `json:"pagination"`
}

// HostelImageResponse represents an uploaded hostel photograph
type HostelImageResponse struct {
	ID        int64     `json:"id"`
	HostelID  int64     `json:"hostelId"`
	FileURL   string    `json:"fileUrl"`
	Caption   *string   `json:"caption,omitempty"`
	IsPrimary bool      `json:"isPrimary"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromHostelImage converts a models.HostelImage to a HostelImageResponse
func FromHostelImage(image *models.HostelImage) HostelImageResponse {
	if image == nil {
		return HostelImageResponse{}
	}
	return HostelImageResponse{
		ID:        image.ID,
		HostelID:  image.HostelID,
		FileURL:   image.FileURL,
		Caption:   image.Caption,
		IsPrimary: image.IsPrimary,
		CreatedAt: image.CreatedAt,
	}
}

// CreateRoomRequest represents room creation data
type CreateRoomRequest struct {
	RoomNumber string  `json:"roomNumber" binding:"required"`
	RoomType   string  `json:"roomType" binding:"required,oneof=single double triple dormitory"`
	Capacity   int     `json:"capacity" binding:"required,min=1"`
	RentPerBed float64 `json:"rentPerBed" binding:"required,min=0"`
	Floor      *int    `json:"floor,omitempty"`
}

// UpdateRoomRequest represents room update data. Occupancy is maintained by
// the allocation engine and cannot be set here.
type UpdateRoomRequest struct {
	RoomNumber string  `json:"roomNumber" binding:"required"`
	RoomType   string  `json:"roomType" binding:"required,oneof=single double triple dormitory"`
	Capacity   int     `json:"capacity" binding:"required,min=1"`
	RentPerBed float64 `json:"rentPerBed" binding:"required,min=0"`
	Floor      *int    `json:"floor,omitempty"`
}

// RoomResponse represents room information
type RoomResponse struct {
	ID               int64   `json:"id"`
	HostelID         int64   `json:"hostelId"`
	RoomNumber       string  `json:"roomNumber"`
	RoomType         string  `json:"roomType"`
	Capacity         int     `json:"capacity"`
	CurrentOccupancy int     `json:"currentOccupancy"`
	AvailableBeds    int     `json:"availableBeds"`
	RentPerBed       float64 `json:"rentPerBed"`
	Floor            *int    `json:"floor,omitempty"`
	IsAvailable      bool    `json:"isAvailable"`
}

// FromRoom converts a models.Room to a RoomResponse
func FromRoom(room *models.Room) RoomResponse {
	if room == nil {
		return RoomResponse{}
	}
	return RoomResponse{
		ID:               room.ID,
		HostelID:         room.HostelID,
		RoomNumber:       room.RoomNumber,
		RoomType:         string(room.RoomType),
		Capacity:         room.Capacity,
		CurrentOccupancy: room.CurrentOccupancy,
		AvailableBeds:    room.AvailableBeds(),
		RentPerBed:       room.RentPerBed,
		Floor:            room.Floor,
		IsAvailable:      room.IsAvailable,
	}
}

// RoomListResponse represents a paginated list of rooms
type RoomListResponse struct {
	Rooms      []RoomResponse `json:"rooms"`
	Pagination PaginationInfo `json:"pagination"`
}

// CreateManagerRequest creates a manager account for a hostel
type CreateManagerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`

	HostelID               *int64  `json:"hostelId,omitempty"`
	Designation            string  `json:"designation" binding:"required"`
	ContactNumber          *string `json:"contactNumber,omitempty"`
	AlternateContactNumber *string `json:"alternateContactNumber,omitempty"`
	Address                string  `json:"address" binding:"required"`
	City                   string  `json:"city" binding:"required"`
	State                  string  `json:"state" binding:"required"`
	Pincode                string  `json:"pincode" binding:"required,pincode"`
}

// AssignManagerRequest moves a manager to a hostel (or unassigns with null)
type AssignManagerRequest struct {
	HostelID *int64 `json:"hostelId"`
}

// ManagerResponse represents manager profile information
type ManagerResponse struct {
	ID                     int64      `json:"id"`
	UserID                 int64      `json:"userId"`
	InstituteID            int64      `json:"instituteId"`
	HostelID               *int64     `json:"hostelId,omitempty"`
	Designation            string     `json:"designation"`
	ContactNumber          *string    `json:"contactNumber,omitempty"`
	AlternateContactNumber *string    `json:"alternateContactNumber,omitempty"`
	Address                string     `json:"address"`
	City                   string     `json:"city"`
	State                  string     `json:"state"`
	Pincode                string     `json:"pincode"`
	StartDate              time.Time  `json:"startDate"`
	EndDate                *time.Time `json:"endDate,omitempty"`
	IsActive               bool       `json:"isActive"`

	User   *UserResponse   `json:"user,omitempty"`
	Hostel *HostelResponse `json:"hostel,omitempty"`
}

// FromManager converts a models.HostelManager to a ManagerResponse
func FromManager(manager *models.HostelManager) ManagerResponse {
	if manager == nil {
		return ManagerResponse{}
	}
	resp := ManagerResponse{
		ID:                     manager.ID,
		UserID:                 manager.UserID,
		InstituteID:            manager.InstituteID,
		HostelID:               manager.HostelID,
		Designation:            manager.Designation,
		ContactNumber:          manager.ContactNumber,
		AlternateContactNumber: manager.AlternateContactNumber,
		Address:                manager.Address,
		City:                   manager.City,
		State:                  manager.State,
		Pincode:                manager.Pincode,
		StartDate:              manager.StartDate,
		EndDate:                manager.EndDate,
		IsActive:               manager.IsActive(),
	}
	if manager.User != nil {
		user := FromUser(manager.User)
		resp.User = &user
	}
	if manager.Hostel != nil {
		hostel := FromHostel(manager.Hostel)
		resp.Hostel = &hostel
	}
	return resp
}
