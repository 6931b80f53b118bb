package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/repositories"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
	"github.com/arjun/hostelmate/internal/pkg/validation"
)

// InstituteService handles institute reference data. Reads are public, writes
// require the owning director or an admin.
type InstituteService struct {
	instituteRepo *repositories.InstituteRepository
	userRepo      *repositories.UserRepository
	logger        zerolog.Logger
}

// NewInstituteService creates a new InstituteService
func NewInstituteService(
	instituteRepo *repositories.InstituteRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *InstituteService {
	return &InstituteService{
		instituteRepo: instituteRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

// GetAllInstitutes lists every institute
func (s *InstituteService) GetAllInstitutes(ctx context.Context) ([]*models.Institute, error) {
	return s.instituteRepo.GetAll(ctx)
}

// GetInstituteByID retrieves one institute
func (s *InstituteService) GetInstituteByID(ctx context.Context, id int64) (*models.Institute, error) {
	return s.instituteRepo.GetByID(ctx, id)
}

// CreateInstitute creates an institute. Only admins create institutes
// directly; directors found theirs via director registration.
func (s *InstituteService) CreateInstitute(ctx context.Context, actor Actor, req *dto.CreateInstituteRequest) (*models.Institute, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	if !validation.IsValidPincode(req.Pincode) {
		return nil, apperrors.NewBadRequestError("pincode must be 6 digits")
	}

	institute := &models.Institute{
		Name:          req.Name,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Pincode:       req.Pincode,
		ContactEmail:  req.ContactEmail,
		ContactNumber: req.ContactNumber,
		Website:       req.Website,
	}

	if err := s.instituteRepo.Create(ctx, institute); err != nil {
		return nil, err
	}

	return institute, nil
}

// UpdateInstitute updates an institute owned by the actor
func (s *InstituteService) UpdateInstitute(ctx context.Context, actor Actor, id int64, req *dto.UpdateInstituteRequest) (*models.Institute, error) {
	if err := checkInstituteScope(ctx, s.userRepo, actor, id); err != nil {
		return nil, err
	}
	if actor.Role == models.RoleManager {
		return nil, apperrors.ErrPermissionDenied
	}
	if !validation.IsValidPincode(req.Pincode) {
		return nil, apperrors.NewBadRequestError("pincode must be 6 digits")
	}

	institute, err := s.instituteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	institute.Name = req.Name
	institute.Address = req.Address
	institute.City = req.City
	institute.State = req.State
	institute.Pincode = req.Pincode
	institute.ContactEmail = req.ContactEmail
	institute.ContactNumber = req.ContactNumber
	institute.Website = req.Website

	if err := s.instituteRepo.Update(ctx, institute); err != nil {
		return nil, err
	}

	return institute, nil
}
