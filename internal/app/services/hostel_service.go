package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/repositories"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
	"github.com/arjun/hostelmate/internal/pkg/filestorage"
	"github.com/arjun/hostelmate/internal/pkg/validation"
)

// HostelService handles hostel inventory and hostel image operations
type HostelService struct {
	hostelRepo *repositories.HostelRepository
	userRepo   *repositories.UserRepository
	storage    filestorage.FileStorage
	logger     zerolog.Logger
}

// NewHostelService creates a new HostelService instance
func NewHostelService(
	hostelRepo *repositories.HostelRepository,
	userRepo *repositories.UserRepository,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *HostelService {
	return &HostelService{
		hostelRepo: hostelRepo,
		userRepo:   userRepo,
		storage:    storage,
		logger:     logger.With().Str("service", "hostel").Logger(),
	}
}

// checkHostelWrite verifies the actor may create or modify hostels. Managers
// run day-to-day operations but do not own the hostel inventory.
func (s *HostelService) checkHostelWrite(ctx context.Context, actor Actor, instituteID int64) error {
	if actor.Role == models.RoleManager || actor.Role == models.RoleStudent {
		return apperrors.ErrPermissionDenied
	}
	return checkInstituteScope(ctx, s.userRepo, actor, instituteID)
}

// CreateHostel creates a hostel within the actor's institute.
func (s *HostelService) CreateHostel(ctx context.Context, actor Actor, instituteID int64, req *dto.CreateHostelRequest) (*dto.HostelResponse, error) {
	instituteID, err := resolveInstituteID(ctx, s.userRepo, actor, instituteID)
	if err != nil {
		return nil, err
	}
	if err := s.checkHostelWrite(ctx, actor, instituteID); err != nil {
		return nil, err
	}
	if !validation.IsValidPincode(req.Pincode) {
		return nil, apperrors.NewBadRequestError("invalid pincode format")
	}

	hostel := &models.Hostel{
		InstituteID:      instituteID,
		Name:             strings.TrimSpace(req.Name),
		HostelType:       models.HostelType(req.HostelType),
		AddressLine1:     req.AddressLine1,
		AddressLine2:     req.AddressLine2,
		City:             req.City,
		State:            req.State,
		Pincode:          req.Pincode,
		ContactEmail:     req.ContactEmail,
		ContactNumber:    req.ContactNumber,
		TotalRooms:       req.TotalRooms,
		AvailableRooms:   req.TotalRooms,
		RentPerMonth:     req.RentPerMonth,
		SecurityDeposit:  req.SecurityDeposit,
		Wifi:             req.Wifi,
		Laundry:          req.Laundry,
		Mess:             req.Mess,
		Gym:              req.Gym,
		Parking:          req.Parking,
		ACRoomsAvailable: req.ACRoomsAvailable,
		IsActive:         true,
	}

	if actor.Role == models.RoleDirector {
		director, err := s.userRepo.GetDirectorByUserID(ctx, actor.UserID)
		if err == nil {
			hostel.DirectorID = &director.ID
		}
	}

	if err := s.hostelRepo.Create(ctx, hostel); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("hostel_id", hostel.ID).
		Int64("institute_id", instituteID).
		Str("name", hostel.Name).
		Msg("Hostel created")

	resp := dto.FromHostel(hostel)
	return &resp, nil
}

// GetHostelByID returns one hostel with its images attached.
func (s *HostelService) GetHostelByID(ctx context.Context, id int64) (*dto.HostelResponse, error) {
	hostel, err := s.hostelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromHostel(hostel)

	images, err := s.hostelRepo.GetImages(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, image := range images {
		resp.Images = append(resp.Images, dto.FromHostelImage(image))
	}
	return &resp, nil
}

// ListHostels returns hostels matching the filter, paginated.
func (s *HostelService) ListHostels(ctx context.Context, filter repositories.HostelFilter) (*dto.HostelListResponse, error) {
	hostels, total, err := s.hostelRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.HostelListResponse{
		Hostels:    make([]dto.HostelResponse, 0, len(hostels)),
		Pagination: dto.NewPaginationInfo(filter.Page, filter.PageSize, total),
	}
	for _, hostel := range hostels {
		resp.Hostels = append(resp.Hostels, dto.FromHostel(hostel))
	}
	return resp, nil
}

// UpdateHostel updates a hostel's descriptive fields. AvailableRooms is left
// to the allocation engine.
func (s *HostelService) UpdateHostel(ctx context.Context, actor Actor, id int64, req *dto.UpdateHostelRequest) (*dto.HostelResponse, error) {
	hostel, err := s.hostelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkHostelWrite(ctx, actor, hostel.InstituteID); err != nil {
		return nil, err
	}
	if !validation.IsValidPincode(req.Pincode) {
		return nil, apperrors.NewBadRequestError("invalid pincode format")
	}

	hostel.Name = strings.TrimSpace(req.Name)
	hostel.HostelType = models.HostelType(req.HostelType)
	hostel.AddressLine1 = req.AddressLine1
	hostel.AddressLine2 = req.AddressLine2
	hostel.City = req.City
	hostel.State = req.State
	hostel.Pincode = req.Pincode
	hostel.ContactEmail = req.ContactEmail
	hostel.ContactNumber = req.ContactNumber
	hostel.TotalRooms = req.TotalRooms
	hostel.RentPerMonth = req.RentPerMonth
	hostel.SecurityDeposit = req.SecurityDeposit
	hostel.Wifi = req.Wifi
	hostel.Laundry = req.Laundry
	hostel.Mess = req.Mess
	hostel.Gym = req.Gym
	hostel.Parking = req.Parking
	hostel.ACRoomsAvailable = req.ACRoomsAvailable
	hostel.IsActive = req.IsActive

	if err := s.hostelRepo.Update(ctx, hostel); err != nil {
		return nil, err
	}

	resp := dto.FromHostel(hostel)
	return &resp, nil
}

// AddHostelImage stores an uploaded image on disk and records it against the
// hostel. The first image of a hostel becomes primary automatically.
func (s *HostelService) AddHostelImage(ctx context.Context, actor Actor, hostelID int64, fileHeader *multipart.FileHeader, caption *string, isPrimary bool) (*dto.HostelImageResponse, error) {
	hostel, err := s.hostelRepo.GetByID(ctx, hostelID)
	if err != nil {
		return nil, err
	}
	if actor.Role == models.RoleStudent {
		return nil, apperrors.ErrPermissionDenied
	}
	if err := checkInstituteScope(ctx, s.userRepo, actor, hostel.InstituteID); err != nil {
		return nil, err
	}

	existing, err := s.hostelRepo.GetImages(ctx, hostelID)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		isPrimary = true
	}

	stored, err := s.storage.SaveFile(fileHeader, fmt.Sprintf("hostels/%d", hostelID))
	if err != nil {
		return nil, err
	}

	image := &models.HostelImage{
		HostelID:  hostelID,
		FilePath:  stored.Path,
		FileURL:   stored.URL,
		Caption:   caption,
		IsPrimary: isPrimary,
	}
	if err := s.hostelRepo.AddImage(ctx, image); err != nil {
		// Keep disk and database consistent when the insert fails.
		if removeErr := s.storage.DeleteFile(stored.Path); removeErr != nil {
			s.logger.Warn().Err(removeErr).Str("path", stored.Path).Msg("Failed to remove orphaned image file")
		}
		return nil, err
	}

	s.logger.Info().
		Int64("hostel_id", hostelID).
		Int64("image_id", image.ID).
		Msg("Hostel image uploaded")

	resp := dto.FromHostelImage(image)
	return &resp, nil
}

// DeleteHostelImage removes an image record and its file.
func (s *HostelService) DeleteHostelImage(ctx context.Context, actor Actor, hostelID, imageID int64) error {
	hostel, err := s.hostelRepo.GetByID(ctx, hostelID)
	if err != nil {
		return err
	}
	if actor.Role == models.RoleStudent {
		return apperrors.ErrPermissionDenied
	}
	if err := checkInstituteScope(ctx, s.userRepo, actor, hostel.InstituteID); err != nil {
		return err
	}

	image, err := s.hostelRepo.GetImageByID(ctx, imageID)
	if err != nil {
		return err
	}
	if image.HostelID != hostelID {
		return apperrors.ErrResourceNotFound
	}

	if err := s.hostelRepo.DeleteImage(ctx, imageID); err != nil {
		return err
	}
	if err := s.storage.DeleteFile(image.FilePath); err != nil {
		s.logger.Warn().Err(err).Str("path", image.FilePath).Msg("Failed to delete image file")
	}
	return nil
}
