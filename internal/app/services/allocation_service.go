package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/repositories"
	"github.com/arjun/hostelmate/internal/db"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
)

// AllocationService runs the room allocation engine. Allocate and Deallocate
// are the only writers of room occupancy and hostel available room counts.
type AllocationService struct {
	allocationRepo  *repositories.AllocationRepository
	applicationRepo *repositories.ApplicationRepository
	roomRepo        *repositories.RoomRepository
	hostelRepo      *repositories.HostelRepository
	userRepo        *repositories.UserRepository
	database        *db.PostgresDB
	logger          zerolog.Logger
}

// NewAllocationService creates a new AllocationService instance
func NewAllocationService(
	allocationRepo *repositories.AllocationRepository,
	applicationRepo *repositories.ApplicationRepository,
	roomRepo *repositories.RoomRepository,
	hostelRepo *repositories.HostelRepository,
	userRepo *repositories.UserRepository,
	database *db.PostgresDB,
	logger zerolog.Logger,
) *AllocationService {
	return &AllocationService{
		allocationRepo:  allocationRepo,
		applicationRepo: applicationRepo,
		roomRepo:        roomRepo,
		hostelRepo:      hostelRepo,
		userRepo:        userRepo,
		database:        database,
		logger:          logger.With().Str("service", "allocation").Logger(),
	}
}

// Allocate assigns a student to a room. The whole check-and-write sequence
// runs in one transaction with the room row locked, so two concurrent
// allocations for the last bed cannot both succeed.
func (s *AllocationService) Allocate(ctx context.Context, actor Actor, req *dto.CreateAllocationRequest) (*dto.AllocationResponse, error) {
	if actor.Role == models.RoleStudent {
		return nil, apperrors.ErrPermissionDenied
	}

	student, err := s.userRepo.GetStudentByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if err := checkInstituteScope(ctx, s.userRepo, actor, student.InstituteID); err != nil {
		return nil, err
	}

	startDate := time.Now()
	if req.StartDate != nil {
		parsed, err := parseOptionalDate(req.StartDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("invalid start date, expected YYYY-MM-DD")
		}
		startDate = *parsed
	}

	allocation := &models.RoomAllocation{
		StudentID:     req.StudentID,
		RoomID:        req.RoomID,
		ApplicationID: req.ApplicationID,
		StartDate:     startDate,
		Notes:         req.Notes,
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		room, err := s.roomRepo.GetByIDForUpdate(ctx, tx, req.RoomID)
		if err != nil {
			return err
		}

		hostel, err := s.hostelRepo.GetByID(ctx, room.HostelID)
		if err != nil {
			return err
		}
		if hostel.InstituteID != student.InstituteID {
			return apperrors.NewBadRequestError("room belongs to another institute")
		}
		if !hostel.IsActive {
			return apperrors.NewInvalidStateError("hostel is not active")
		}
		allocation.HostelID = room.HostelID

		occupied, err := s.allocationRepo.CountActiveByRoomTx(ctx, tx, room.ID)
		if err != nil {
			return err
		}
		if occupied >= room.Capacity {
			return apperrors.ErrRoomFull
		}

		allocated, err := s.allocationRepo.StudentHasActiveAllocationTx(ctx, tx, req.StudentID)
		if err != nil {
			return err
		}
		if allocated {
			return apperrors.ErrStudentAlreadyAllocated
		}

		if req.ApplicationID != nil {
			application, err := s.applicationRepo.GetByIDForUpdate(ctx, tx, *req.ApplicationID)
			if err != nil {
				return err
			}
			if application.StudentID != req.StudentID {
				return apperrors.NewBadRequestError("application belongs to another student")
			}
			if application.Status != models.ApplicationApproved {
				return apperrors.ErrApplicationNotApproved
			}
			linked, err := s.allocationRepo.ApplicationIsLinkedTx(ctx, tx, *req.ApplicationID)
			if err != nil {
				return err
			}
			if linked {
				return apperrors.ErrApplicationLinked
			}
		}

		if err := s.allocationRepo.CreateTx(ctx, tx, allocation); err != nil {
			return err
		}

		newOccupancy := occupied + 1
		if err := s.roomRepo.SetOccupancyTx(ctx, tx, room.ID, newOccupancy); err != nil {
			return err
		}
		if newOccupancy >= room.Capacity {
			// The room just filled up, one fewer hostel room with free beds.
			if err := s.roomRepo.AdjustHostelAvailableRoomsTx(ctx, tx, room.HostelID, -1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("allocation_id", allocation.ID).
		Int64("student_id", req.StudentID).
		Int64("room_id", req.RoomID).
		Msg("Room allocated")

	resp := dto.FromAllocation(allocation)
	return &resp, nil
}

// Deallocate closes an allocation by setting its end date. The room keeps
// its history; occupancy and hostel availability are recomputed under the
// same transaction.
func (s *AllocationService) Deallocate(ctx context.Context, actor Actor, allocationID int64, req *dto.DeallocateRequest) (*dto.AllocationResponse, error) {
	if actor.Role == models.RoleStudent {
		return nil, apperrors.ErrPermissionDenied
	}

	endDate := time.Now()
	if req.EndDate != nil {
		parsed, err := parseOptionalDate(req.EndDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("invalid end date, expected YYYY-MM-DD")
		}
		endDate = *parsed
	}

	var allocation *models.RoomAllocation
	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		allocation, err = s.allocationRepo.GetByIDForUpdate(ctx, tx, allocationID)
		if err != nil {
			return err
		}

		hostel, err := s.hostelRepo.GetByID(ctx, allocation.HostelID)
		if err != nil {
			return err
		}
		if err := checkInstituteScope(ctx, s.userRepo, actor, hostel.InstituteID); err != nil {
			return err
		}

		if allocation.IsClosed() {
			return apperrors.ErrAllocationClosed
		}
		if endDate.Before(allocation.StartDate) {
			return apperrors.NewInvalidStateError("end date cannot precede the start date")
		}

		room, err := s.roomRepo.GetByIDForUpdate(ctx, tx, allocation.RoomID)
		if err != nil {
			return err
		}

		if err := s.allocationRepo.CloseTx(ctx, tx, allocationID, endDate, req.Notes); err != nil {
			return err
		}

		// A future-dated end date keeps the bed occupied until it passes.
		today := time.Now().Truncate(24 * time.Hour)
		if endDate.Truncate(24 * time.Hour).Before(today) || endDate.Truncate(24*time.Hour).Equal(today) {
			wasFull := room.CurrentOccupancy >= room.Capacity
			newOccupancy := room.CurrentOccupancy - 1
			if newOccupancy < 0 {
				newOccupancy = 0
			}
			if err := s.roomRepo.SetOccupancyTx(ctx, tx, room.ID, newOccupancy); err != nil {
				return err
			}
			if wasFull && newOccupancy < room.Capacity {
				if err := s.roomRepo.AdjustHostelAvailableRoomsTx(ctx, tx, room.HostelID, 1); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("allocation_id", allocationID).
		Time("end_date", endDate).
		Msg("Room deallocated")

	allocation.EndDate = &endDate
	if req.Notes != nil {
		allocation.Notes = req.Notes
	}
	resp := dto.FromAllocation(allocation)
	return &resp, nil
}

// GetAllocationByID returns one allocation. Students see only their own.
func (s *AllocationService) GetAllocationByID(ctx context.Context, actor Actor, id int64) (*dto.AllocationResponse, error) {
	allocation, err := s.allocationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.Role == models.RoleStudent {
		student, err := s.userRepo.GetStudentByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if allocation.StudentID != student.ID {
			return nil, apperrors.ErrAllocationNotFound
		}
	} else {
		hostel, err := s.hostelRepo.GetByID(ctx, allocation.HostelID)
		if err != nil {
			return nil, err
		}
		if err := checkInstituteScope(ctx, s.userRepo, actor, hostel.InstituteID); err != nil {
			return nil, err
		}
	}

	resp := dto.FromAllocation(allocation)
	return &resp, nil
}

// ListAllocations returns allocations matching the filter, paginated.
// Students get their own history regardless of the requested filter.
func (s *AllocationService) ListAllocations(ctx context.Context, actor Actor, filter repositories.AllocationFilter) (*dto.AllocationListResponse, error) {
	if actor.Role == models.RoleStudent {
		student, err := s.userRepo.GetStudentByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		filter.StudentID = student.ID
	}

	allocations, total, err := s.allocationRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.AllocationListResponse{
		Allocations: make([]dto.AllocationResponse, 0, len(allocations)),
		Pagination:  dto.NewPaginationInfo(filter.Page, filter.PageSize, total),
	}
	for _, allocation := range allocations {
		resp.Allocations = append(resp.Allocations, dto.FromAllocation(allocation))
	}
	return resp, nil
}
