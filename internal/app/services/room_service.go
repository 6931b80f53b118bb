package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/repositories"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
)

// RoomService handles room inventory within hostels
type RoomService struct {
	roomRepo   *repositories.RoomRepository
	hostelRepo *repositories.HostelRepository
	userRepo   *repositories.UserRepository
	logger     zerolog.Logger
}

// NewRoomService creates a new RoomService instance
func NewRoomService(
	roomRepo *repositories.RoomRepository,
	hostelRepo *repositories.HostelRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *RoomService {
	return &RoomService{
		roomRepo:   roomRepo,
		hostelRepo: hostelRepo,
		userRepo:   userRepo,
		logger:     logger.With().Str("service", "room").Logger(),
	}
}

// checkRoomWrite verifies the actor may modify rooms of the hostel's
// institute. Managers may maintain room inventory, students may not.
func (s *RoomService) checkRoomWrite(ctx context.Context, actor Actor, instituteID int64) error {
	if actor.Role == models.RoleStudent {
		return apperrors.ErrPermissionDenied
	}
	return checkInstituteScope(ctx, s.userRepo, actor, instituteID)
}

// CreateRoom adds a room to a hostel. New rooms start empty and available.
func (s *RoomService) CreateRoom(ctx context.Context, actor Actor, hostelID int64, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	hostel, err := s.hostelRepo.GetByID(ctx, hostelID)
	if err != nil {
		return nil, err
	}
	if err := s.checkRoomWrite(ctx, actor, hostel.InstituteID); err != nil {
		return nil, err
	}

	room := &models.Room{
		HostelID:         hostelID,
		RoomNumber:       strings.ToUpper(strings.TrimSpace(req.RoomNumber)),
		RoomType:         models.RoomType(req.RoomType),
		Capacity:         req.Capacity,
		CurrentOccupancy: 0,
		RentPerBed:       req.RentPerBed,
		Floor:            req.Floor,
		IsAvailable:      true,
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("room_id", room.ID).
		Int64("hostel_id", hostelID).
		Str("room_number", room.RoomNumber).
		Msg("Room created")

	resp := dto.FromRoom(room)
	return &resp, nil
}

// GetRoomByID returns one room.
func (s *RoomService) GetRoomByID(ctx context.Context, id int64) (*dto.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromRoom(room)
	return &resp, nil
}

// ListRooms returns rooms matching the filter, paginated.
func (s *RoomService) ListRooms(ctx context.Context, filter repositories.RoomFilter) (*dto.RoomListResponse, error) {
	rooms, total, err := s.roomRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.RoomListResponse{
		Rooms:      make([]dto.RoomResponse, 0, len(rooms)),
		Pagination: dto.NewPaginationInfo(filter.Page, filter.PageSize, total),
	}
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, dto.FromRoom(room))
	}
	return resp, nil
}

// UpdateRoom updates a room's descriptive fields. Capacity cannot drop below
// the current occupancy; occupancy itself belongs to the allocation engine.
func (s *RoomService) UpdateRoom(ctx context.Context, actor Actor, id int64, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	hostel, err := s.hostelRepo.GetByID(ctx, room.HostelID)
	if err != nil {
		return nil, err
	}
	if err := s.checkRoomWrite(ctx, actor, hostel.InstituteID); err != nil {
		return nil, err
	}
	if req.Capacity < room.CurrentOccupancy {
		return nil, apperrors.NewInvalidStateError("capacity cannot be lower than the current occupancy")
	}

	room.RoomNumber = strings.ToUpper(strings.TrimSpace(req.RoomNumber))
	room.RoomType = models.RoomType(req.RoomType)
	room.Capacity = req.Capacity
	room.RentPerBed = req.RentPerBed
	room.Floor = req.Floor

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}
	room.IsAvailable = room.CurrentOccupancy < room.Capacity

	resp := dto.FromRoom(room)
	return &resp, nil
}

// DeleteRoom removes a room that has never been allocated. Rooms referenced
// by allocations are kept for history and the delete is rejected.
func (s *RoomService) DeleteRoom(ctx context.Context, actor Actor, id int64) error {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	hostel, err := s.hostelRepo.GetByID(ctx, room.HostelID)
	if err != nil {
		return err
	}
	if err := s.checkRoomWrite(ctx, actor, hostel.InstituteID); err != nil {
		return err
	}
	if room.CurrentOccupancy > 0 {
		return apperrors.NewInvalidStateError("room has active allocations")
	}
	return s.roomRepo.Delete(ctx, id)
}
